package service

import (
	"context"
	"learning_progress_backend/internal/model"
	"learning_progress_backend/internal/repository"
	"learning_progress_backend/internal/util"
	"learning_progress_backend/pkg/logger"
	"learning_progress_backend/pkg/monitoring"
	"learning_progress_backend/pkg/tracing"
	"sync/atomic"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ModuleService 组合模块存储与进度计算，供 REST 和 GraphQL 共用
type ModuleService struct {
	ModuleRepo      *repository.ModuleRepository
	ProgressService *ProgressService

	resetEnabled atomic.Bool
}

func NewModuleService(moduleRepo *repository.ModuleRepository, progressService *ProgressService) *ModuleService {
	return &ModuleService{
		ModuleRepo:      moduleRepo,
		ProgressService: progressService,
	}
}

func (s *ModuleService) SetResetEnabled(enabled bool) {
	s.resetEnabled.Store(enabled)
}

func (s *ModuleService) ResetEnabled() bool {
	return s.resetEnabled.Load()
}

func (s *ModuleService) ListModules(ctx context.Context, category string) []model.LearningModule {
	_, span := tracing.Start(ctx, "ModuleService.ListModules", attribute.String("module.category", category))
	defer span.End()

	modules := s.ModuleRepo.FindAll(category)
	span.SetAttributes(attribute.Int("module.count", len(modules)))
	return modules
}

func (s *ModuleService) GetModule(ctx context.Context, id string) (model.LearningModule, error) {
	_, span := tracing.Start(ctx, "ModuleService.GetModule", attribute.String("module.id", id))
	defer span.End()

	m, ok := s.ModuleRepo.FindByID(id)
	if !ok {
		err := util.NewModuleNotFoundError(id)
		tracing.RecordError(span, err)
		return model.LearningModule{}, err
	}
	return m, nil
}

func (s *ModuleService) ToggleCompletion(ctx context.Context, id string, completed bool) (model.LearningModule, error) {
	ctx, span := tracing.Start(ctx, "ModuleService.ToggleCompletion",
		attribute.String("module.id", id),
		attribute.Bool("module.completed", completed),
	)
	defer span.End()

	m, err := s.ModuleRepo.UpdateCompletion(id, completed)
	monitoring.ObserveCompletionUpdate(completed, err)
	if err != nil {
		tracing.RecordError(span, err)
		logger.Log.Warn("Toggle completion failed", zap.String("module_id", id), zap.Error(err))
		return model.LearningModule{}, err
	}

	logger.Log.Info("Module completion updated",
		zap.String("module_id", id),
		zap.Bool("completed", completed),
	)
	s.GetProgress(ctx)
	return m, nil
}

func (s *ModuleService) GetProgress(ctx context.Context) model.ProgressStats {
	_, span := tracing.Start(ctx, "ModuleService.GetProgress")
	defer span.End()

	stats := s.ProgressService.CalculateProgress(s.ModuleRepo.FindAll(""))
	monitoring.ObserveProgress(stats)
	span.SetAttributes(
		attribute.Int("progress.total", stats.Total),
		attribute.Int("progress.completed", stats.Completed),
	)
	return stats
}

func (s *ModuleService) GetCategoryProgress(ctx context.Context) []model.CategoryProgress {
	_, span := tracing.Start(ctx, "ModuleService.GetCategoryProgress")
	defer span.End()

	return s.ProgressService.CalculateByCategory(s.ModuleRepo.FindAll(""))
}

// Reset 恢复种子数据；配置未开启时返回 ErrResetDisabled
func (s *ModuleService) Reset(ctx context.Context) error {
	_, span := tracing.Start(ctx, "ModuleService.Reset")
	defer span.End()

	if !s.ResetEnabled() {
		tracing.RecordError(span, util.ErrResetDisabled)
		return util.ErrResetDisabled
	}

	s.ModuleRepo.Reset()
	monitoring.ObserveProgress(s.ProgressService.CalculateProgress(s.ModuleRepo.FindAll("")))
	logger.Log.Info("Module store reset to seed data")
	return nil
}
