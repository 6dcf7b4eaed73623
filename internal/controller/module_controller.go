package controller

import (
	"learning_progress_backend/internal/service"
	"learning_progress_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	ModuleService *service.ModuleService
}

func NewModuleController(moduleService *service.ModuleService) *ModuleController {
	return &ModuleController{ModuleService: moduleService}
}

type ToggleCompletionRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// @Summary 获取学习模块列表
// @Description 获取全部学习模块，可按分类过滤；未识别的分类返回空列表
// @Tags 学习模块
// @Produce json
// @Param category query string false "分类 (AI, Sustainability, DigitalSkills)"
// @Success 200 {object} util.Response{data=[]model.LearningModule}
// @Router /api/modules [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
	modules := c.ModuleService.ListModules(ctx.Request.Context(), ctx.Query("category"))
	util.Success(ctx, modules)
}

// @Summary 获取单个学习模块
// @Tags 学习模块
// @Produce json
// @Param id path string true "模块ID"
// @Success 200 {object} util.Response{data=model.LearningModule}
// @Failure 404 {object} util.Response
// @Router /api/modules/{id} [get]
func (c *ModuleController) GetModule(ctx *gin.Context) {
	module, err := c.ModuleService.GetModule(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, module)
}

// @Summary 设置模块完成状态
// @Description 将指定模块标记为已完成或未完成
// @Tags 学习模块
// @Accept json
// @Produce json
// @Param id path string true "模块ID"
// @Param body body ToggleCompletionRequest true "完成状态"
// @Success 200 {object} util.Response{data=model.LearningModule}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/modules/{id}/completion [put]
func (c *ModuleController) ToggleCompletion(ctx *gin.Context) {
	var req ToggleCompletionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ModuleService.ToggleCompletion(ctx.Request.Context(), ctx.Param("id"), *req.Completed)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, module)
}

// @Summary 重置模块数据
// @Description 恢复种子数据，需在配置中开启 server.enable_reset
// @Tags 管理
// @Produce json
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/admin/reset [post]
func (c *ModuleController) Reset(ctx *gin.Context) {
	if err := c.ModuleService.Reset(ctx.Request.Context()); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Modules reset"})
}
