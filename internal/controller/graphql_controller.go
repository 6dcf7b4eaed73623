package controller

import (
	"encoding/json"
	"learning_progress_backend/internal/util"
	"learning_progress_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"
)

type GraphQLController struct {
	Schema graphql.Schema
}

func NewGraphQLController(schema graphql.Schema) *GraphQLController {
	return &GraphQLController{Schema: schema}
}

type GraphQLRequest struct {
	Query         string                 `json:"query" form:"query"`
	OperationName string                 `json:"operationName" form:"operationName"`
	Variables     map[string]interface{} `json:"variables" form:"-"`
}

// @Summary GraphQL 入口
// @Description 支持 modules、module、progress、categoryProgress 查询与 toggleModuleCompletion、resetModules 变更
// @Tags GraphQL
// @Accept json
// @Produce json
// @Param request body GraphQLRequest true "GraphQL 请求"
// @Success 200 {object} graphql.Result
// @Router /graphql [post]
func (c *GraphQLController) Handle(ctx *gin.Context) {
	var req GraphQLRequest
	if ctx.Request.Method == http.MethodGet {
		if err := ctx.ShouldBindQuery(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		if raw := ctx.Query("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				util.BadRequest(ctx, "invalid variables: "+err.Error())
				return
			}
		}
	} else if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Query == "" {
		util.BadRequest(ctx, "query is required")
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         c.Schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx.Request.Context(),
	})

	if result.HasErrors() {
		logger.Log.Debug("GraphQL request returned errors",
			zap.String("operation", req.OperationName),
			zap.Any("errors", result.Errors),
		)
	}

	ctx.JSON(http.StatusOK, result)
}
