package repository

import "learning_progress_backend/internal/model"

// SeedModules 每次调用返回新的种子数据切片
func SeedModules() []model.LearningModule {
	return []model.LearningModule{
		{ID: "1", Title: "Introduction to Machine Learning", Category: model.CategoryAI, EstimatedMinutes: 45},
		{ID: "2", Title: "Neural Networks Fundamentals", Category: model.CategoryAI, EstimatedMinutes: 60},
		{ID: "3", Title: "Sustainable Energy Solutions", Category: model.CategorySustainability, EstimatedMinutes: 30},
		{ID: "4", Title: "Carbon Footprint Reduction", Category: model.CategorySustainability, EstimatedMinutes: 40},
		{ID: "5", Title: "Circular Economy Principles", Category: model.CategorySustainability, EstimatedMinutes: 35},
		{ID: "6", Title: "Cloud Computing Essentials", Category: model.CategoryDigitalSkills, EstimatedMinutes: 50},
		{ID: "7", Title: "Cybersecurity Basics", Category: model.CategoryDigitalSkills, EstimatedMinutes: 55},
		{ID: "8", Title: "Data Analytics with Python", Category: model.CategoryDigitalSkills, EstimatedMinutes: 65},
	}
}
