package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
)

// userHandler handles HTTP requests about the authenticated user.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(userService portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: userService}
}

// UserResponse defines the data returned for a user profile.
type UserResponse struct {
	UserID       string    `json:"userID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AuthProvider string    `json:"authProvider"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
	}
}

// getMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce  json
// @Success 200 {object} UserResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *userHandler) getMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// registerUserRoutes registers user profile routes.
func registerUserRoutes(group *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := group.Group("/users")
	users.GET("/me", h.getMe)
}
