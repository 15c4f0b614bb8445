package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docsim/backend/internal/model"
	"github.com/docsim/backend/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Signup godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.UserCreateRequest true "Username, email, and password"
// @Success 201 {object} model.UserResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 409 {object} model.ErrorResponse
// @Router /api/v1/user/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req model.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.svc.Signup(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponse())
}

// Login godoc
// @Summary Login with email and password
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.UserLoginRequest true "Email and password"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/user/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req model.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Message: "Invalid request body"})
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Refresh godoc
// @Summary Issue a new access token from a refresh token
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.RefreshResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/user/refresh [get]
func (h *UserHandler) Refresh(c *gin.Context) {
	claims := GetTokenClaims(c)

	accessToken, err := h.svc.Refresh(c.Request.Context(), claims)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.RefreshResponse{AccessToken: accessToken})
}

// Logout godoc
// @Summary Revoke the presented access token
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/user/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	claims := GetTokenClaims(c)

	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: "Logged out successfully"})
}

// Me godoc
// @Summary Get the current authenticated user
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/user/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	claims := GetTokenClaims(c)

	user, err := h.svc.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponse())
}

// GetAll godoc
// @Summary List all users (admin only)
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/user [get]
func (h *UserHandler) GetAll(c *gin.Context) {
	claims := GetTokenClaims(c)

	current, err := h.svc.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		writeError(c, err)
		return
	}
	if current.Role != model.RoleAdmin {
		writeError(c, service.ErrForbidden)
		return
	}

	users, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// GetByEmail godoc
// @Summary Get a user by email
// @Tags user
// @Produce json
// @Security BearerAuth
// @Param email path string true "User email"
// @Success 200 {object} model.UserResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/user/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponse())
}
