package service

import (
	"learning_progress_backend/internal/model"
	"math"
)

// ProgressService 纯计算，无状态，不依赖任何存储
type ProgressService struct{}

func NewProgressService() *ProgressService {
	return &ProgressService{}
}

// CalculateProgress 只看 Completed 字段；百分比四舍五入（0.5 远离零）
func (s *ProgressService) CalculateProgress(modules []model.LearningModule) model.ProgressStats {
	total := len(modules)
	if total == 0 {
		return model.ProgressStats{}
	}

	completed := 0
	for _, m := range modules {
		if m.Completed {
			completed++
		}
	}

	return model.ProgressStats{
		Total:      total,
		Completed:  completed,
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
	}
}

// CalculateByCategory 按固定分类顺序返回，每个分类都会出现（即使没有模块）
func (s *ProgressService) CalculateByCategory(modules []model.LearningModule) []model.CategoryProgress {
	grouped := make(map[model.ModuleCategory][]model.LearningModule)
	for _, m := range modules {
		grouped[m.Category] = append(grouped[m.Category], m)
	}

	categories := model.ModuleCategories()
	result := make([]model.CategoryProgress, 0, len(categories))
	for _, c := range categories {
		result = append(result, model.CategoryProgress{
			Category:      c,
			ProgressStats: s.CalculateProgress(grouped[c]),
		})
	}
	return result
}
