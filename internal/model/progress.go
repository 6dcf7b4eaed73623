package model

// ProgressStats 学习进度统计
type ProgressStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"` // 0-100
}

// CategoryProgress 单个分类的进度
type CategoryProgress struct {
	Category ModuleCategory `json:"category"`
	ProgressStats
}
