package cmd

import (
	"context"
	"encoding/json"
	"learning_progress_backend/internal/model"
	"learning_progress_backend/internal/repository"
	"learning_progress_backend/internal/service"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the seeded module catalog and its progress as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		return printCatalog(cmd, category)
	},
}

func init() {
	catalogCmd.Flags().String("category", "", "Only list modules in this category (AI, Sustainability, DigitalSkills)")
}

type catalogOutput struct {
	Modules    []model.LearningModule   `json:"modules"`
	Progress   model.ProgressStats      `json:"progress"`
	Categories []model.CategoryProgress `json:"categories"`
}

func printCatalog(cmd *cobra.Command, category string) error {
	svc := service.NewModuleService(repository.NewModuleRepository(), service.NewProgressService())
	ctx := context.Background()

	out := catalogOutput{
		Modules:    svc.ListModules(ctx, category),
		Progress:   svc.GetProgress(ctx),
		Categories: svc.GetCategoryProgress(ctx),
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
