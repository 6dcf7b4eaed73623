package repository

import (
	"learning_progress_backend/internal/model"
	"learning_progress_backend/internal/util"
	"sync"
)

// ModuleRepository 内存中的学习模块存储，是模块集合的唯一持有者
type ModuleRepository struct {
	mu      sync.RWMutex
	modules []model.LearningModule
	seed    func() []model.LearningModule
}

func NewModuleRepository() *ModuleRepository {
	return NewModuleRepositoryWithSeed(SeedModules)
}

// NewModuleRepositoryWithSeed 使用自定义种子数据，Reset 时同样回到该数据
func NewModuleRepositoryWithSeed(seed func() []model.LearningModule) *ModuleRepository {
	return &ModuleRepository{
		modules: seed(),
		seed:    seed,
	}
}

// FindAll category 为空时返回全部模块；未识别的分类返回空列表而不是错误
func (r *ModuleRepository) FindAll(category string) []model.LearningModule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if category == "" {
		result := make([]model.LearningModule, len(r.modules))
		copy(result, r.modules)
		return result
	}

	c, ok := model.ParseModuleCategory(category)
	if !ok {
		return []model.LearningModule{}
	}

	result := make([]model.LearningModule, 0, len(r.modules))
	for _, m := range r.modules {
		if m.Category == c {
			result = append(result, m)
		}
	}
	return result
}

func (r *ModuleRepository) FindByID(id string) (model.LearningModule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(id); i >= 0 {
		return r.modules[i], true
	}
	return model.LearningModule{}, false
}

// UpdateCompletion 只修改 Completed 字段，返回更新后的副本
func (r *ModuleRepository) UpdateCompletion(id string, completed bool) (model.LearningModule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.LearningModule{}, util.NewModuleNotFoundError(id)
	}

	updated := r.modules[i]
	updated.Completed = completed
	r.modules[i] = updated

	return updated, nil
}

// Reset 丢弃所有修改，恢复种子数据
func (r *ModuleRepository) Reset() {
	fresh := r.seed()

	r.mu.Lock()
	r.modules = fresh
	r.mu.Unlock()
}

func (r *ModuleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}

// indexOf 调用方需持有锁
func (r *ModuleRepository) indexOf(id string) int {
	for i := range r.modules {
		if r.modules[i].ID == id {
			return i
		}
	}
	return -1
}
