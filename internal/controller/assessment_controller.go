package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"skillbridge_backend/internal/service"
	"skillbridge_backend/internal/util"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

type GenerateAssessmentRequest struct {
	Skill string `json:"skill"`
}

// Generate godoc
// @Summary Generate a skill assessment
// @Description Produce 5 MCQ plus 2 code questions for the given skill
// @Tags assessment
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body GenerateAssessmentRequest true "Target skill"
// @Success 200 {object} object "Assessment with questions"
// @Router /api/assessment/generate [post]
func (c *AssessmentController) Generate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	// A missing or empty body is fine, the skill just defaults.
	var req GenerateAssessmentRequest
	_ = ctx.ShouldBindJSON(&req)

	a, err := c.AssessmentService.Generate(ctx.Request.Context(), claims.Email(), req.Skill)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"assessmentId": a.ID,
		"skill":        a.Skill,
		"questions":    a.QuestionList(),
	})
}

type SubmitAssessmentRequest struct {
	AssessmentID string                 `json:"assessmentId"`
	Answers      map[string]interface{} `json:"answers"`
	Terminated   bool                   `json:"terminated"`
}

// Submit godoc
// @Summary Submit assessment answers
// @Description Grade MCQ answers against the stored question set
// @Tags assessment
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitAssessmentRequest true "Answers keyed by question id"
// @Success 200 {object} service.SubmissionResult "Grading result"
// @Failure 400 {object} util.ErrorResponse "assessmentId is required"
// @Failure 404 {object} util.ErrorResponse "Assessment not found"
// @Failure 409 {object} util.ErrorResponse "Already submitted"
// @Router /api/assessment/submit [post]
func (c *AssessmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.AssessmentID == "" {
		util.BadRequest(ctx, "assessmentId is required")
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]interface{}{}
	}

	result, err := c.AssessmentService.Submit(claims.Email(), req.AssessmentID, req.Answers, req.Terminated)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAssessmentNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrAlreadySubmitted):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// History godoc
// @Summary List past assessments
// @Tags assessment
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "Assessment list"
// @Router /api/assessment/history [get]
func (c *AssessmentController) History(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	list, err := c.AssessmentService.History(claims.Email(), 20)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"assessments": list})
}
