package domain

// FavoriteCharacter links a user to one character at most once.
type FavoriteCharacter struct {
	ID          int64 `json:"id" gorm:"primaryKey"`
	UserID      int64 `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_character"`
	CharacterID int64 `json:"character_id" gorm:"not null;index;uniqueIndex:idx_user_character"`

	// Virtual field for preload
	Character *Character `json:"character,omitempty" gorm:"foreignKey:CharacterID"`
}

func (FavoriteCharacter) TableName() string { return "favorite_people" }

// FavoritePlanet links a user to one planet at most once.
type FavoritePlanet struct {
	ID       int64 `json:"id" gorm:"primaryKey"`
	UserID   int64 `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_planet"`
	PlanetID int64 `json:"planet_id" gorm:"not null;index;uniqueIndex:idx_user_planet"`

	Planet *Planet `json:"planet,omitempty" gorm:"foreignKey:PlanetID"`
}

func (FavoritePlanet) TableName() string { return "favorite_planets" }
