// @title Learning Progress API
// @version 1.0
// @description 学习模块完成进度服务，提供 REST 与 GraphQL 接口。

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:4000
// @BasePath /

package main

import (
	"learning_progress_backend/cmd"
	"os"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
