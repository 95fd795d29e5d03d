package catalog

import (
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes registers the read-only catalog routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/people", h.GetPeople)
	rg.GET("/people/:id", h.GetPersonByID)
	rg.GET("/planets", h.GetPlanets)
	rg.GET("/planets/:id", h.GetPlanetByID)
}

// GetPeople handles GET /people.
// An empty catalog is reported as 404, matching the historical
// behavior clients already depend on.
func (h *Handler) GetPeople(c *gin.Context) {
	people, err := h.service.ListPeople(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	if len(people) == 0 {
		response.Msg(c, http.StatusNotFound, "No people found")
		return
	}
	c.JSON(http.StatusOK, ToPersonListResponse(people))
}

// GetPersonByID handles GET /people/:id.
func (h *Handler) GetPersonByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid person id")
		return
	}

	person, err := h.service.GetPerson(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Msg(c, http.StatusNotFound, "No person found")
			return
		}
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToPersonResponse(person))
}

// GetPlanets handles GET /planets.
func (h *Handler) GetPlanets(c *gin.Context) {
	planets, err := h.service.ListPlanets(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	if len(planets) == 0 {
		response.Msg(c, http.StatusNotFound, "Planets not found")
		return
	}
	c.JSON(http.StatusOK, ToPlanetListResponse(planets))
}

// GetPlanetByID handles GET /planets/:id.
func (h *Handler) GetPlanetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Msg(c, http.StatusBadRequest, "Invalid planet id")
		return
	}

	planet, err := h.service.GetPlanet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Msg(c, http.StatusNotFound, "No planet found")
			return
		}
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToPlanetResponse(planet))
}

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.Msg(c, http.StatusNotFound, "Resource not found")
		return
	}
	response.Msg(c, http.StatusInternalServerError, "Internal server error")
}
