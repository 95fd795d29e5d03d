package catalog

import "starcatalog/internal/domain"

// Responses are explicit projections of persisted fields; rows are
// never handed to the encoder directly.

type PersonResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	HairColor string `json:"hair_color"`
	EyeColor  string `json:"eye_color"`
}

func ToPersonResponse(c *domain.Character) PersonResponse {
	return PersonResponse{
		ID:        c.ID,
		Name:      c.Name,
		Gender:    c.Gender,
		HairColor: c.HairColor,
		EyeColor:  c.EyeColor,
	}
}

func ToPersonListResponse(people []domain.Character) []PersonResponse {
	out := make([]PersonResponse, 0, len(people))
	for i := range people {
		out = append(out, ToPersonResponse(&people[i]))
	}
	return out
}

type PlanetResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Terrain    string `json:"terrain"`
	Population int64  `json:"population"`
	Diameter   int64  `json:"diameter"`
}

func ToPlanetResponse(p *domain.Planet) PlanetResponse {
	return PlanetResponse{
		ID:         p.ID,
		Name:       p.Name,
		Terrain:    p.Terrain,
		Population: p.Population,
		Diameter:   p.Diameter,
	}
}

func ToPlanetListResponse(planets []domain.Planet) []PlanetResponse {
	out := make([]PlanetResponse, 0, len(planets))
	for i := range planets {
		out = append(out, ToPlanetResponse(&planets[i]))
	}
	return out
}
