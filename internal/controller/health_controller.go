package controller

import (
	"learning_progress_backend/internal/repository"
	"learning_progress_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	ModuleRepo *repository.ModuleRepository
}

func NewHealthController(moduleRepo *repository.ModuleRepository) *HealthController {
	return &HealthController{ModuleRepo: moduleRepo}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	// 模块存储为空说明种子数据未加载
	count := c.ModuleRepo.Count()
	if count == 0 {
		util.Error(ctx, http.StatusServiceUnavailable, "Module store empty")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"moduleStore": "up",
		},
		"modules": count,
	})
}
