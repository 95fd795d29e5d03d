package favorite

import "starcatalog/internal/domain"

// FavoriteResponse is the wire shape of one favorite link: the link id,
// the linked item's name and the owning user.
type FavoriteResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

func ToCharacterFavoriteResponse(f *domain.FavoriteCharacter) FavoriteResponse {
	resp := FavoriteResponse{
		ID:     f.ID,
		UserID: f.UserID,
	}
	if f.Character != nil {
		resp.Name = f.Character.Name
	}
	return resp
}

func ToPlanetFavoriteResponse(f *domain.FavoritePlanet) FavoriteResponse {
	resp := FavoriteResponse{
		ID:     f.ID,
		UserID: f.UserID,
	}
	if f.Planet != nil {
		resp.Name = f.Planet.Name
	}
	return resp
}

func ToFavoriteListResponse(characters []domain.FavoriteCharacter, planets []domain.FavoritePlanet) []FavoriteResponse {
	out := make([]FavoriteResponse, 0, len(characters)+len(planets))
	for i := range characters {
		out = append(out, ToCharacterFavoriteResponse(&characters[i]))
	}
	for i := range planets {
		out = append(out, ToPlanetFavoriteResponse(&planets[i]))
	}
	return out
}
