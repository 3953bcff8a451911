package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

// AnalysisController serves the four derived artifacts. Each GET recomputes
// from current data, persists the result and returns it.
type AnalysisController struct {
	GapService     *service.GapService
	SwotService    *service.SwotService
	CareerService  *service.CareerService
	RoadmapService *service.RoadmapService
}

func NewAnalysisController(gap *service.GapService, swot *service.SwotService, career *service.CareerService, roadmap *service.RoadmapService) *AnalysisController {
	return &AnalysisController{
		GapService:     gap,
		SwotService:    swot,
		CareerService:  career,
		RoadmapService: roadmap,
	}
}

// Gap godoc
// @Summary Run the skill gap analysis
// @Description Compare user skills against the industry benchmark for their career interest
// @Tags analysis
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.GapAnalysis "Gap analysis"
// @Failure 404 {object} util.ErrorResponse "User not found"
// @Router /api/gap-analysis [get]
func (c *AnalysisController) Gap(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.GapService.Analyze(ctx.Request.Context(), claims.Email())
	if err != nil {
		respondAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Swot godoc
// @Summary Run the SWOT analysis
// @Tags analysis
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.SwotResult "SWOT"
// @Failure 404 {object} util.ErrorResponse "User not found"
// @Router /api/swot [get]
func (c *AnalysisController) Swot(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.SwotService.Analyze(ctx.Request.Context(), claims.Email())
	if err != nil {
		respondAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Career godoc
// @Summary Match careers against the user's skills
// @Description Score every candidate career and return the top three with guidance
// @Tags analysis
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.CareerMatchResult "Career matches"
// @Failure 404 {object} util.ErrorResponse "User not found"
// @Router /api/career-match [get]
func (c *AnalysisController) Career(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.CareerService.Match(ctx.Request.Context(), claims.Email())
	if err != nil {
		respondAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Roadmap godoc
// @Summary Build a 12-week learning roadmap
// @Tags analysis
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.Roadmap "Roadmap"
// @Failure 404 {object} util.ErrorResponse "User not found"
// @Router /api/roadmap [get]
func (c *AnalysisController) Roadmap(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.RoadmapService.Build(ctx.Request.Context(), claims.Email())
	if err != nil {
		respondAnalysisError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

func respondAnalysisError(ctx *gin.Context, err error) {
	if errors.Is(err, util.ErrUserNotFound) {
		util.NotFound(ctx, err.Error())
		return
	}
	util.LogInternalError(ctx, err)
}
