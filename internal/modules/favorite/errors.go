package favorite

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAlreadyFavorite  = errors.New("already in favorites")
	ErrFavoriteNotFound = errors.New("favorite not found")
)
