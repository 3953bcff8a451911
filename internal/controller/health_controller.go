package controller

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"skillbridge_backend/internal/util"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

var apiModules = []string{
	"auth", "profile", "dashboard", "assessment",
	"gap", "swot", "career", "roadmap",
}

// Health godoc
// @Summary Service health check
// @Produce  json
// @Success 200 {object} object "Status and module list"
// @Router /api/health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	status := "ok"
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
		}
	}

	util.Success(ctx, gin.H{
		"status":  status,
		"service": "SkillBridge API",
		"modules": apiModules,
	})
}
