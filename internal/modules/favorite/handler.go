package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"starcatalog/internal/middleware"
	"starcatalog/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the favorite routes. All of them act on the
// identity set by the identity middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/user/favorites", h.GetFavorites)
	rg.POST("/favorite/people/:id", h.AddFavoritePerson)
	rg.DELETE("/favorite/people/:id", h.RemoveFavoritePerson)
	rg.POST("/favorite/planet/:id", h.AddFavoritePlanet)
	rg.DELETE("/favorite/planet/:id", h.RemoveFavoritePlanet)
}

// GetFavorites handles GET /user/favorites. An empty list is a normal
// 200; only a missing user is an error.
func (h *Handler) GetFavorites(c *gin.Context) {
	userID := middleware.CurrentUserID(c)

	characters, planets, err := h.service.ListForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "No user found")
			return
		}
		response.Msg(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, ToFavoriteListResponse(characters, planets))
}

// AddFavoritePerson handles POST /favorite/people/:id.
func (h *Handler) AddFavoritePerson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid person id")
		return
	}

	fav, err := h.service.AddCharacter(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Msg(c, http.StatusNotFound, "No user found")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Msg(c, http.StatusNotFound, "No person found")
		case errors.Is(err, ErrAlreadyFavorite):
			response.Msg(c, http.StatusBadRequest, "Person already in favorites")
		default:
			response.Msg(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, ToCharacterFavoriteResponse(fav))
}

// RemoveFavoritePerson handles DELETE /favorite/people/:id.
func (h *Handler) RemoveFavoritePerson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid person id")
		return
	}

	if err := h.service.RemoveCharacter(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			response.Msg(c, http.StatusNotFound, "Favorite not found")
			return
		}
		response.Msg(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Msg(c, http.StatusOK, "Person deleted")
}

// AddFavoritePlanet handles POST /favorite/planet/:id.
func (h *Handler) AddFavoritePlanet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid planet id")
		return
	}

	fav, err := h.service.AddPlanet(c.Request.Context(), middleware.CurrentUserID(c), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Msg(c, http.StatusNotFound, "No user found")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Msg(c, http.StatusNotFound, "No planet found")
		case errors.Is(err, ErrAlreadyFavorite):
			response.Msg(c, http.StatusBadRequest, "Planet already in favorites")
		default:
			response.Msg(c, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, ToPlanetFavoriteResponse(fav))
}

// RemoveFavoritePlanet handles DELETE /favorite/planet/:id.
func (h *Handler) RemoveFavoritePlanet(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid planet id")
		return
	}

	if err := h.service.RemovePlanet(c.Request.Context(), middleware.CurrentUserID(c), id); err != nil {
		if errors.Is(err, ErrFavoriteNotFound) {
			response.Msg(c, http.StatusNotFound, "Favorite not found")
			return
		}
		response.Msg(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.Msg(c, http.StatusOK, "Planet deleted")
}
