package controller

import (
	"learning_progress_backend/internal/service"
	"learning_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ModuleService *service.ModuleService
}

func NewProgressController(moduleService *service.ModuleService) *ProgressController {
	return &ProgressController{ModuleService: moduleService}
}

// @Summary 获取学习进度
// @Description 统计全部模块的完成数量与百分比
// @Tags 学习进度
// @Produce json
// @Success 200 {object} util.Response{data=model.ProgressStats}
// @Router /api/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	util.Success(ctx, c.ModuleService.GetProgress(ctx.Request.Context()))
}

// @Summary 按分类获取学习进度
// @Tags 学习进度
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CategoryProgress}
// @Router /api/progress/categories [get]
func (c *ProgressController) GetCategoryProgress(ctx *gin.Context) {
	util.Success(ctx, c.ModuleService.GetCategoryProgress(ctx.Request.Context()))
}
