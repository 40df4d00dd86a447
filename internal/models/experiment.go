package models

// ReagentAmount is one line of an experiment's reagent list, persisted
// inside the experiments.reagents JSON column in entry order.
type ReagentAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Experiment struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	UserID       uint            `gorm:"not null;index:idx_experiments_user_date" json:"-"`
	Title        string          `gorm:"not null" json:"title"`
	Aim          string          `gorm:"not null;default:''" json:"aim"`
	Date         string          `gorm:"not null;default:'';index:idx_experiments_user_date" json:"date"`
	Reagents     []ReagentAmount `gorm:"serializer:json" json:"reagents"`
	Procedure    []string        `gorm:"serializer:json" json:"procedure"`
	Observations string          `gorm:"not null;default:''" json:"observations"`
	Notes        string          `gorm:"not null;default:''" json:"notes"`
	Results      string          `gorm:"not null;default:''" json:"results"`
}
