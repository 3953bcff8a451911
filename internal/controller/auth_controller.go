package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account and return a token pair
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body SignupRequest true "Signup payload"
// @Success 201 {object} object "Created"
// @Failure 400 {object} util.ErrorResponse "Validation error"
// @Failure 409 {object} util.ErrorResponse "Email already registered"
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Signup(req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidEmail),
			errors.Is(err, util.ErrWeakPassword),
			errors.Is(err, util.ErrShortName):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	access, refresh, err := c.AuthService.IssueTokens(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"message":      "Account created",
		"accessToken":  access,
		"refreshToken": refresh,
		"user":         user.ToDict(),
	})
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return a token pair
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "Login payload"
// @Success 200 {object} object "Token pair"
// @Failure 401 {object} util.ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, util.ErrInvalidCredentials.Error())
		return
	}

	access, refresh, err := c.AuthService.IssueTokens(user)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"accessToken":  access,
		"refreshToken": refresh,
		"user":         user.ToDict(),
	})
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// Refresh godoc
// @Summary Refresh the access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   body body RefreshRequest true "Refresh payload"
// @Success 200 {object} object "New access token"
// @Failure 401 {object} util.ErrorResponse "Invalid refresh token"
// @Router /api/auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	access, err := c.AuthService.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		util.Error(ctx, 401, util.ErrInvalidRefreshToken.Error())
		return
	}

	util.Success(ctx, gin.H{"accessToken": access})
}

// Logout godoc
// @Summary Log out
// @Description Revoke the presented access token until it expires
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "Logged out"
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rawToken := ctx.GetString("rawToken")
	if err := c.AuthService.Logout(ctx.Request.Context(), rawToken, claims); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Logged out"})
}

// Verify godoc
// @Summary Verify the current token
// @Description Return the identity bound to the presented token
// @Tags auth
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "Identity"
// @Failure 401 {object} util.ErrorResponse "Unauthorized"
// @Router /api/auth/verify [get]
func (c *AuthController) Verify(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetUser(claims.Email())
	if err != nil {
		util.NotFound(ctx, util.ErrUserNotFound.Error())
		return
	}

	util.Success(ctx, gin.H{"valid": true, "user": user.ToDict()})
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ChangePassword godoc
// @Summary Change the account password
// @Tags auth
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ChangePasswordRequest true "Password change payload"
// @Success 200 {object} object "Password changed"
// @Failure 400 {object} util.ErrorResponse "Weak password"
// @Failure 401 {object} util.ErrorResponse "Wrong current password"
// @Router /api/auth/change-password [post]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.AuthService.ChangePassword(claims.Email(), req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Error(ctx, 401, err.Error())
		case errors.Is(err, util.ErrWeakPassword):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Password changed"})
}
