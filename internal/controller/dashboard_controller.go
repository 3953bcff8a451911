package controller

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

// maxResumeSize caps resume uploads at 10 MB.
const maxResumeSize = 10 << 20

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

type SaveSkillsRequest struct {
	Skills []model.Skill `json:"skills"`
}

// SaveSkills godoc
// @Summary Replace the user's skill list
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SaveSkillsRequest true "Skill list"
// @Success 200 {object} object "Saved skills with count"
// @Failure 400 {object} util.ErrorResponse "Skills must be a list"
// @Router /api/dashboard/skills [post]
func (c *DashboardController) SaveSkills(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SaveSkillsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "skills must be a list")
		return
	}

	skills, err := c.DashboardService.SaveSkills(claims.Email(), req.Skills)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Skills saved", "count": len(skills), "skills": skills})
}

type AddRepoRequest struct {
	URL string `json:"url" binding:"required"`
}

// AddRepo godoc
// @Summary Attach a GitHub repository
// @Description Fetch public metadata for the URL and prepend it to the repo list
// @Tags dashboard
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body AddRepoRequest true "Repository URL"
// @Success 200 {object} model.RepoSummary "Repo summary"
// @Failure 400 {object} util.ErrorResponse "Invalid GitHub URL"
// @Router /api/dashboard/repo [post]
func (c *DashboardController) AddRepo(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AddRepoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrInvalidRepoURL.Error())
		return
	}

	summary, err := c.DashboardService.AddRepo(ctx.Request.Context(), claims.Email(), req.URL)
	if err != nil {
		if errors.Is(err, util.ErrInvalidRepoURL) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Repo added", "repo": summary})
}

// UploadResume godoc
// @Summary Upload a PDF resume
// @Description Parse the resume into structured data and store it
// @Tags dashboard
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   resume formData file true "PDF resume"
// @Success 200 {object} model.ResumeRecord "Parsed resume"
// @Failure 400 {object} util.ErrorResponse "Missing or non-PDF file"
// @Router /api/dashboard/resume [post]
func (c *DashboardController) UploadResume(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		util.BadRequest(ctx, util.ErrNoResumeFile.Error())
		return
	}
	if fileHeader.Size > maxResumeSize {
		util.BadRequest(ctx, "resume exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	record, err := c.DashboardService.UploadResume(ctx.Request.Context(), claims.Email(), fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNotPDF), errors.Is(err, util.ErrNoResumeFile):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "Resume uploaded", "resume": record})
}

// Get godoc
// @Summary Fetch the dashboard
// @Description Aggregate skills, repos and resume for the caller
// @Tags dashboard
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.Dashboard "Dashboard"
// @Router /api/dashboard [get]
func (c *DashboardController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dash, err := c.DashboardService.Get(claims.Email())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dash)
}
