package models

const (
	FrequencyOnce    = "once"
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Task due dates are calendar-date strings ("2006-01-02"); lexicographic
// order matches chronological order for that layout.
type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	UserID      uint   `gorm:"not null;index:idx_tasks_user_due" json:"-"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null;default:''" json:"description"`
	DueDate     string `gorm:"not null;default:'';index:idx_tasks_user_due" json:"due_date"`
	Frequency   string `gorm:"not null;default:once" json:"frequency"`
	Completed   bool   `gorm:"not null;default:false" json:"completed"`
}

func ValidFrequency(frequency string) bool {
	switch frequency {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

// Recurring reports whether acknowledging the task advances its due date
// instead of marking it completed.
func (task Task) Recurring() bool {
	return task.Frequency != FrequencyOnce
}
