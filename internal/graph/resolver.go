package graph

import (
	"errors"
	"learning_progress_backend/internal/model"
	"learning_progress_backend/internal/service"
	"learning_progress_backend/internal/util"

	"github.com/graphql-go/graphql"
)

type resolver struct {
	svc *service.ModuleService
}

// category 为 null 或空字符串时不过滤
func (r *resolver) modules(p graphql.ResolveParams) (interface{}, error) {
	category, _ := p.Args["category"].(string)
	return r.svc.ListModules(p.Context, category), nil
}

func (r *resolver) module(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	m, err := r.svc.GetModule(p.Context, id)
	if errors.Is(err, util.ErrModuleNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *resolver) progress(p graphql.ResolveParams) (interface{}, error) {
	return r.svc.GetProgress(p.Context), nil
}

func (r *resolver) categoryProgress(p graphql.ResolveParams) (interface{}, error) {
	stats := r.svc.GetCategoryProgress(p.Context)
	result := make([]map[string]interface{}, 0, len(stats))
	for _, s := range stats {
		result = append(result, categoryProgressMap(s))
	}
	return result, nil
}

func (r *resolver) toggleModuleCompletion(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	id, _ := input["id"].(string)
	completed, _ := input["completed"].(bool)

	m, err := r.svc.ToggleCompletion(p.Context, id, completed)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *resolver) resetModules(p graphql.ResolveParams) (interface{}, error) {
	if err := r.svc.Reset(p.Context); err != nil {
		return nil, err
	}
	return true, nil
}

func categoryProgressMap(s model.CategoryProgress) map[string]interface{} {
	return map[string]interface{}{
		"category":   s.Category,
		"total":      s.Total,
		"completed":  s.Completed,
		"percentage": s.Percentage,
	}
}
