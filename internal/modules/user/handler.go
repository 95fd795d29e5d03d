package user

import (
	"net/http"

	"starcatalog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.GetUsers)
}

// GetUsers handles GET /users. Only id and email are exposed;
// credentials never leave the storage layer.
func (h *Handler) GetUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Msg(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(users) == 0 {
		response.Msg(c, http.StatusNotFound, "No users found")
		return
	}
	c.JSON(http.StatusOK, ToUserListResponse(users))
}
