package e2e

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"starcatalog/internal/database"
	"starcatalog/internal/domain"
	"starcatalog/internal/middleware"
	"starcatalog/internal/modules/catalog"
	"starcatalog/internal/modules/favorite"
	"starcatalog/internal/modules/user"
	jwtsvc "starcatalog/internal/pkg/jwt"
	"starcatalog/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type favoriteBody struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	UserID int64  `json:"user_id"`
}

type msgBody struct {
	Msg string `json:"msg"`
}

func setupTestSuite(t *testing.T, currentUserID int64, jwt *jwtsvc.Service) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Character{},
		&domain.Planet{},
		&domain.Vehicle{},
		&domain.FavoriteCharacter{},
		&domain.FavoritePlanet{},
	))

	userRepo := repository.NewUserRepository(db)
	characterRepo := repository.NewCharacterRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(characterRepo, planetRepo))
	userHandler := user.NewHandler(user.NewService(userRepo))
	favoriteHandler := favorite.NewHandler(
		favorite.NewService(favoriteRepo, userRepo, characterRepo, planetRepo),
	)

	r := gin.New()
	r.Use(middleware.Recovery())

	root := r.Group("/")
	root.Use(middleware.Identity(currentUserID, jwt))
	{
		userHandler.RegisterRoutes(root)
		catalogHandler.RegisterRoutes(root)
		favoriteHandler.RegisterRoutes(root)
	}

	return r, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	u := domain.User{Email: "demo@starcatalog.local", Password: "hash", IsActive: true}
	require.NoError(t, db.Create(&u).Error)

	planet := domain.Planet{Name: "Tatooine", Terrain: "desert", Population: 200000, Diameter: 10465}
	require.NoError(t, db.Create(&planet).Error)

	person := domain.Character{Name: "Luke Skywalker", Gender: "male", HairColor: "blond", EyeColor: "blue"}
	require.NoError(t, db.Create(&person).Error)
}

func do(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// TestFavoritePlanetLifecycle walks the documented scenario: favorite
// Tatooine, see it listed, remove it, see the list drain.
func TestFavoritePlanetLifecycle(t *testing.T) {
	router, db := setupTestSuite(t, 1, nil)
	seedCatalog(t, db)

	resp := do(router, http.MethodPost, "/favorite/planet/1", "")
	require.Equal(t, http.StatusCreated, resp.Code)

	var created favoriteBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "Tatooine", created.Name)
	assert.Equal(t, int64(1), created.UserID)

	resp = do(router, http.MethodGet, "/user/favorites", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var favorites []favoriteBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "Tatooine", favorites[0].Name)

	resp = do(router, http.MethodDelete, "/favorite/planet/1", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var msg msgBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "Planet deleted", msg.Msg)

	resp = do(router, http.MethodGet, "/user/favorites", "")
	require.Equal(t, http.StatusOK, resp.Code)

	favorites = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&favorites))
	assert.Empty(t, favorites)
}

func TestCatalogBrowsing(t *testing.T) {
	router, db := setupTestSuite(t, 1, nil)
	seedCatalog(t, db)

	resp := do(router, http.MethodGet, "/people", "")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(router, http.MethodGet, "/people/1", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var person map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&person))
	assert.Equal(t, "Luke Skywalker", person["name"])
	assert.Equal(t, "blond", person["hair_color"])

	resp = do(router, http.MethodGet, "/planets/1", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var planet map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&planet))
	assert.Equal(t, "Tatooine", planet["name"])
	assert.Equal(t, float64(200000), planet["population"])
	assert.Equal(t, float64(10465), planet["diameter"])

	resp = do(router, http.MethodGet, "/users", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var users []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&users))
	require.Len(t, users, 1)
	assert.Equal(t, "demo@starcatalog.local", users[0]["email"])
	_, hasPassword := users[0]["password"]
	assert.False(t, hasPassword)
}

func TestMissingLookupsNeverFault(t *testing.T) {
	router, db := setupTestSuite(t, 1, nil)
	seedCatalog(t, db)

	for _, path := range []string{"/people/404", "/planets/404"} {
		resp := do(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusNotFound, resp.Code, path)
	}

	resp := do(router, http.MethodPost, "/favorite/people/404", "")
	require.Equal(t, http.StatusNotFound, resp.Code)

	resp = do(router, http.MethodDelete, "/favorite/people/1", "")
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestEmptyCollections(t *testing.T) {
	router, _ := setupTestSuite(t, 1, nil)

	for path, want := range map[string]string{
		"/people":  "No people found",
		"/planets": "Planets not found",
		"/users":   "No users found",
	} {
		resp := do(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusNotFound, resp.Code, path)

		var msg msgBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
		assert.Equal(t, want, msg.Msg, path)
	}
}

// TestBearerTokenIdentity proves a signed token reroutes favorite
// operations to the token's user without any handler changes.
func TestBearerTokenIdentity(t *testing.T) {
	jwt := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	router, db := setupTestSuite(t, 1, jwt)
	seedCatalog(t, db)

	second := domain.User{Email: "leia@starcatalog.local", Password: "hash", IsActive: true}
	require.NoError(t, db.Create(&second).Error)

	token, err := jwt.GenerateToken(second.ID)
	require.NoError(t, err)

	resp := do(router, http.MethodPost, "/favorite/planet/1", token)
	require.Equal(t, http.StatusCreated, resp.Code)

	var created favoriteBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, second.ID, created.UserID)

	// The default user's list stays empty.
	resp = do(router, http.MethodGet, "/user/favorites", "")
	require.Equal(t, http.StatusOK, resp.Code)

	var favorites []favoriteBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&favorites))
	assert.Empty(t, favorites)
}
