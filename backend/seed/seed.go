package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"codeclimb/backend/models"

	"gorm.io/gorm"
)

// datasetProblem mirrors one entry of the template dataset file.
type datasetProblem struct {
	Neet250ID    int    `json:"neet250Id"`
	Title        string `json:"title"`
	LeetcodeSlug string `json:"leetcodeSlug"`
	Category     string `json:"category"`
	Difficulty   string `json:"difficulty"`
	OrderIndex   int    `json:"orderIndex"`
}

// EnsureTemplate seeds the problem catalog for templateVersion from the
// JSON dataset at path. Seeding happens once: a template that already has
// problems is left untouched, the catalog being immutable per version.
func EnsureTemplate(db *gorm.DB, templateVersion, path string) error {
	var count int64
	if err := db.Model(&models.Problem{}).Where("template_version = ?", templateVersion).Count(&count).Error; err != nil {
		return fmt.Errorf("count problems: %w", err)
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read dataset %s: %w", path, err)
	}

	var dataset []datasetProblem
	if err := json.Unmarshal(raw, &dataset); err != nil {
		return fmt.Errorf("parse dataset %s: %w", path, err)
	}
	if len(dataset) == 0 {
		return fmt.Errorf("dataset %s is empty", path)
	}

	problems := make([]models.Problem, 0, len(dataset))
	for _, entry := range dataset {
		difficulty := models.Difficulty(entry.Difficulty)
		switch difficulty {
		case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		default:
			return fmt.Errorf("problem %d: unknown difficulty %q", entry.Neet250ID, entry.Difficulty)
		}
		problems = append(problems, models.Problem{
			TemplateVersion: templateVersion,
			Neet250ID:       entry.Neet250ID,
			Title:           entry.Title,
			LeetcodeSlug:    entry.LeetcodeSlug,
			Category:        entry.Category,
			Difficulty:      difficulty,
			OrderIndex:      entry.OrderIndex,
		})
	}

	return db.CreateInBatches(problems, 100).Error
}
