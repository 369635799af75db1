package models

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Problem is one entry of an immutable problem template. Seeded once per
// template version, never written by user action.
type Problem struct {
	ID              uint       `gorm:"primaryKey" json:"-"`
	TemplateVersion string     `gorm:"not null;uniqueIndex:uq_problems_template_neet;uniqueIndex:uq_problems_template_order;uniqueIndex:uq_problems_template_slug" json:"templateVersion"`
	Neet250ID       int        `gorm:"column:neet250_id;not null;uniqueIndex:uq_problems_template_neet" json:"neet250Id"`
	Title           string     `gorm:"not null" json:"title"`
	LeetcodeSlug    string     `gorm:"not null;uniqueIndex:uq_problems_template_slug" json:"leetcodeSlug"`
	Category        string     `gorm:"not null" json:"category"`
	Difficulty      Difficulty `gorm:"not null" json:"difficulty"`
	// OrderIndex is the canonical solving order within the template, dense
	// starting at 1.
	OrderIndex int `gorm:"not null;uniqueIndex:uq_problems_template_order" json:"orderIndex"`
}
