package main

import (
	"log"

	"starcatalog/internal/config"
	"starcatalog/internal/database"
	"starcatalog/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Character{},
		&domain.Planet{},
		&domain.Vehicle{},
		&domain.FavoriteCharacter{},
		&domain.FavoritePlanet{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorite_people")
	db.Exec("DELETE FROM favorite_planets")
	db.Exec("DELETE FROM people")
	db.Exec("DELETE FROM planets")
	db.Exec("DELETE FROM vehicles")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := domain.User{
		Email:    "demo@starcatalog.local",
		Password: string(hash),
		IsActive: true,
	}
	db.Create(&demo)
	log.Printf("Demo user created: %s (id=%d)", demo.Email, demo.ID)

	log.Println("Creating people...")
	people := []domain.Character{
		{Name: "Luke Skywalker", Gender: "male", HairColor: "blond", EyeColor: "blue"},
		{Name: "Leia Organa", Gender: "female", HairColor: "brown", EyeColor: "brown"},
		{Name: "Han Solo", Gender: "male", HairColor: "brown", EyeColor: "hazel"},
		{Name: "Darth Vader", Gender: "male", HairColor: "none", EyeColor: "yellow"},
		{Name: "Obi-Wan Kenobi", Gender: "male", HairColor: "auburn", EyeColor: "blue-gray"},
	}
	for i := range people {
		db.Create(&people[i])
	}

	log.Println("Creating planets...")
	planets := []domain.Planet{
		{Name: "Tatooine", Terrain: "desert", Population: 200000, Diameter: 10465},
		{Name: "Alderaan", Terrain: "grasslands, mountains", Population: 2000000000, Diameter: 12500},
		{Name: "Hoth", Terrain: "tundra, ice caves", Population: 0, Diameter: 7200},
		{Name: "Dagobah", Terrain: "swamp, jungles", Population: 0, Diameter: 8900},
	}
	for i := range planets {
		db.Create(&planets[i])
	}

	log.Println("Creating vehicles...")
	vehicles := []domain.Vehicle{
		{Name: "Snowspeeder", Model: "t-47 airspeeder", Manufacturer: "Incom corporation", Crew: 2},
		{Name: "X-34 landspeeder", Model: "X-34 landspeeder", Manufacturer: "SoroSuub Corporation", Crew: 1},
		{Name: "Sand Crawler", Model: "Digger Crawler", Manufacturer: "Corellia Mining Corporation", Crew: 46},
	}
	for i := range vehicles {
		db.Create(&vehicles[i])
	}

	log.Printf("Seed complete: %d people, %d planets, %d vehicles", len(people), len(planets), len(vehicles))
}
