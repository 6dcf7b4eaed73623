// Package graph 提供与前端约定一致的 GraphQL schema：
// modules / progress 查询与 toggleModuleCompletion 变更。
package graph

import (
	"learning_progress_backend/internal/model"
	"learning_progress_backend/internal/service"

	"github.com/graphql-go/graphql"
)

func categoryEnum() *graphql.Enum {
	values := graphql.EnumValueConfigMap{}
	for _, c := range model.ModuleCategories() {
		values[string(c)] = &graphql.EnumValueConfig{Value: c}
	}
	return graphql.NewEnum(graphql.EnumConfig{
		Name:        "ModuleCategory",
		Description: "The category of a learning module",
		Values:      values,
	})
}

// NewSchema 每次调用构建新的 schema，resolver 直接持有 ModuleService
func NewSchema(svc *service.ModuleService) (graphql.Schema, error) {
	category := categoryEnum()

	moduleType := graphql.NewObject(graphql.ObjectConfig{
		Name: "LearningModule",
		Fields: graphql.Fields{
			"id":               &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":            &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"category":         &graphql.Field{Type: graphql.NewNonNull(category)},
			"estimatedMinutes": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"completed":        &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	progressFields := graphql.Fields{
		"total":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"completed":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"percentage": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	}

	progressType := graphql.NewObject(graphql.ObjectConfig{
		Name:   "ProgressStats",
		Fields: progressFields,
	})

	categoryProgressFields := graphql.Fields{
		"category": &graphql.Field{Type: graphql.NewNonNull(category)},
	}
	for name, f := range progressFields {
		categoryProgressFields[name] = &graphql.Field{Type: f.Type}
	}
	categoryProgressType := graphql.NewObject(graphql.ObjectConfig{
		Name:   "CategoryProgress",
		Fields: categoryProgressFields,
	})

	toggleInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ToggleCompletionInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"id":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.ID)},
			"completed": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	r := &resolver{svc: svc}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"modules": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(moduleType))),
				Description: "Fetches all learning modules, optionally filtered by category",
				Args: graphql.FieldConfigArgument{
					"category": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.modules,
			},
			"module": &graphql.Field{
				Type: moduleType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: r.module,
			},
			"progress": &graphql.Field{
				Type:    graphql.NewNonNull(progressType),
				Resolve: r.progress,
			},
			"categoryProgress": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(categoryProgressType))),
				Resolve: r.categoryProgress,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"toggleModuleCompletion": &graphql.Field{
				Type: graphql.NewNonNull(moduleType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(toggleInput)},
				},
				Resolve: r.toggleModuleCompletion,
			},
			"resetModules": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Resolve: r.resetModules,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
