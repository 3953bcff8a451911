package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// Setup godoc
// @Summary Save the user's profile
// @Description Merge-write the profile fields of the caller's document
// @Tags profile
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body model.Profile true "Profile payload"
// @Success 200 {object} model.Profile "Saved profile"
// @Failure 400 {object} util.ErrorResponse "Missing required fields"
// @Router /api/profile/setup [post]
func (c *ProfileController) Setup(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req model.Profile
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Setup(claims.Email(), req)
	if err != nil {
		if errors.Is(err, util.ErrMissingProfile) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Profile saved", "profile": profile})
}

// Get godoc
// @Summary Fetch the user's profile
// @Tags profile
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.Profile "Profile"
// @Failure 404 {object} util.ErrorResponse "User not found"
// @Router /api/profile [get]
func (c *ProfileController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.ProfileService.Get(claims.Email())
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}
