package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/ledgerpad/ledgerpad_app/internal/core/ports/services"
	"github.com/ledgerpad/ledgerpad_app/internal/dto"
)

// UserHandler exposes user profile endpoints.
type UserHandler struct {
	userSvc portssvc.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc portssvc.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	user, err := h.userSvc.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {object} dto.ListUsersResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := dto.ListUsersResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		resp.Users = append(resp.Users, dto.ToUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.userSvc.UpdateUser(c.Request.Context(), userID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteMe godoc
// @Summary Delete the authenticated user's account
// @Tags users
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.userSvc.DeleteUser(c.Request.Context(), userID, userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
