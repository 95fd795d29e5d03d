package repository

import (
	"context"
	"testing"

	"starcatalog/internal/database"
	"starcatalog/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Character{},
		&domain.Planet{},
		&domain.FavoriteCharacter{},
		&domain.FavoritePlanet{},
	))
	return db
}

func TestDeleteUserCascadesFavorites(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	favoriteRepo := NewFavoriteRepository(db)

	u := domain.User{Email: "demo@starcatalog.local", Password: "hash", IsActive: true}
	require.NoError(t, userRepo.Create(ctx, &u))

	person := domain.Character{Name: "Luke Skywalker", Gender: "male", HairColor: "blond", EyeColor: "blue"}
	require.NoError(t, db.Create(&person).Error)
	planet := domain.Planet{Name: "Tatooine", Terrain: "desert", Population: 200000, Diameter: 10465}
	require.NoError(t, db.Create(&planet).Error)

	_, err := favoriteRepo.AddCharacter(ctx, u.ID, person.ID)
	require.NoError(t, err)
	_, err = favoriteRepo.AddPlanet(ctx, u.ID, planet.ID)
	require.NoError(t, err)

	require.NoError(t, userRepo.Delete(ctx, u.ID))

	var characterLinks, planetLinks int64
	require.NoError(t, db.Model(&domain.FavoriteCharacter{}).Where("user_id = ?", u.ID).Count(&characterLinks).Error)
	require.NoError(t, db.Model(&domain.FavoritePlanet{}).Where("user_id = ?", u.ID).Count(&planetLinks).Error)
	require.Zero(t, characterLinks)
	require.Zero(t, planetLinks)

	_, err = userRepo.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteMissingUser(t *testing.T) {
	db := setupDB(t)

	userRepo := NewUserRepository(db)
	err := userRepo.Delete(context.Background(), 99)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreateUserNormalizesEmail(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	userRepo := NewUserRepository(db)
	u := domain.User{Email: "  Demo@StarCatalog.Local ", Password: "hash", IsActive: true}
	require.NoError(t, userRepo.Create(ctx, &u))

	got, err := userRepo.GetByEmail(ctx, "demo@starcatalog.local")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}
