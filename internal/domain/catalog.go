package domain

// Catalog entities are read-only reference data: rows are seeded by
// cmd/seed and never mutated through the API.

type Character struct {
	ID        int64  `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Gender    string `json:"gender" gorm:"size:10;not null"`
	HairColor string `json:"hair_color" gorm:"size:20;not null"`
	EyeColor  string `json:"eye_color" gorm:"size:20;not null"`
}

func (Character) TableName() string { return "people" }

type Planet struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	Name       string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Terrain    string `json:"terrain" gorm:"size:120;not null"`
	Population int64  `json:"population" gorm:"not null"`
	Diameter   int64  `json:"diameter" gorm:"not null"`
}

func (Planet) TableName() string { return "planets" }

// Vehicle is stored and seeded but has no routes yet.
type Vehicle struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Model        string `json:"model" gorm:"size:120;not null"`
	Manufacturer string `json:"manufacturer" gorm:"size:120;not null"`
	Crew         int    `json:"crew" gorm:"not null"`
}

func (Vehicle) TableName() string { return "vehicles" }
