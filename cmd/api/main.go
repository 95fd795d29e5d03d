package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"starcatalog/internal/config"
	"starcatalog/internal/database"
	"starcatalog/internal/middleware"
	"starcatalog/internal/modules/catalog"
	"starcatalog/internal/modules/favorite"
	"starcatalog/internal/modules/user"
	jwtsvc "starcatalog/internal/pkg/jwt"
	"starcatalog/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	// Token auth is optional: with no JWT_SECRET every request runs as
	// the configured current user.
	var j *jwtsvc.Service
	if cfg.JWTSecret != "" {
		j = jwtsvc.New(cfg.JWTSecret, 24*time.Hour)
	}

	catalogService := catalog.NewService(characterRepo, planetRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	userHandler := user.NewHandler(user.NewService(userRepo))

	favoriteService := favorite.NewService(favoriteRepo, userRepo, characterRepo, planetRepo)
	favoriteHandler := favorite.NewHandler(favoriteService)

	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())

	root := r.Group("/")
	root.Use(middleware.Identity(cfg.CurrentUserID, j))
	{
		userHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root)
		favoriteHandler.RegisterRoutes(root)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
