package database

import (
	"testing"

	"starcatalog/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestConnectSQLite(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.Planet{}))

	planet := domain.Planet{Name: "Tatooine", Terrain: "desert", Population: 200000, Diameter: 10465}
	require.NoError(t, db.Create(&planet).Error)

	var got domain.Planet
	require.NoError(t, db.First(&got, planet.ID).Error)
	require.Equal(t, "Tatooine", got.Name)
}

func TestConnectSQLiteEnforcesForeignKeys(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	require.Equal(t, 1, enabled)
}
