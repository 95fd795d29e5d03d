package domain

// User owns favorite links to catalog items. Accounts are provisioned
// out of band (seed command or admin tooling), never via the API.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Email    string `json:"email" gorm:"size:120;uniqueIndex;not null"`
	Password string `json:"-" gorm:"size:255;not null"`
	IsActive bool   `json:"is_active" gorm:"not null;default:true"`

	FavoriteCharacters []FavoriteCharacter `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	FavoritePlanets    []FavoritePlanet    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "users" }
