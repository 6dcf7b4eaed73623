package model

// ModuleCategory 学习模块分类
type ModuleCategory string

const (
	CategoryAI             ModuleCategory = "AI"
	CategorySustainability ModuleCategory = "Sustainability"
	CategoryDigitalSkills  ModuleCategory = "DigitalSkills"
)

// ModuleCategories 按固定顺序返回全部分类
func ModuleCategories() []ModuleCategory {
	return []ModuleCategory{CategoryAI, CategorySustainability, CategoryDigitalSkills}
}

func (c ModuleCategory) IsValid() bool {
	switch c {
	case CategoryAI, CategorySustainability, CategoryDigitalSkills:
		return true
	}
	return false
}

// ParseModuleCategory 区分大小写，未识别的值返回 false
func ParseModuleCategory(s string) (ModuleCategory, bool) {
	c := ModuleCategory(s)
	if !c.IsValid() {
		return "", false
	}
	return c, true
}

// LearningModule 学习模块，Completed 是唯一可变字段
type LearningModule struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Category         ModuleCategory `json:"category"`
	EstimatedMinutes int            `json:"estimatedMinutes"`
	Completed        bool           `json:"completed"`
}
