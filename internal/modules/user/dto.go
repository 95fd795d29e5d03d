package user

import "starcatalog/internal/domain"

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
	}
}

func ToUserListResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
