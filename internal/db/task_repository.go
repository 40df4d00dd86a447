package db

import (
	"github.com/labassistantpro/labassistant/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	database *gorm.DB
}

func NewTaskRepository(database *gorm.DB) *TaskRepository {
	return &TaskRepository{database: database}
}

// TaskFilter narrows ListByUser. An empty Frequency leaves that
// dimension unfiltered.
type TaskFilter struct {
	Frequency        string
	IncludeCompleted bool
}

func (repo *TaskRepository) ListByUser(userID uint, filter TaskFilter) ([]models.Task, error) {
	query := repo.database.Where("user_id = ?", userID)
	if filter.Frequency != "" {
		query = query.Where("frequency = ?", filter.Frequency)
	}
	if !filter.IncludeCompleted {
		query = query.Where("completed = ?", false)
	}

	tasks := make([]models.Task, 0)
	if err := query.Order("due_date ASC, id ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListUpcoming returns open tasks that are either not yet due or recur;
// lexicographic comparison on the date string matches chronological
// order for the "2006-01-02" layout.
func (repo *TaskRepository) ListUpcoming(userID uint, today string, limit int) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	query := repo.database.
		Where("user_id = ? AND completed = ? AND (due_date >= ? OR frequency != ?)",
			userID, false, today, models.FrequencyOnce).
		Order("due_date ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) ListByUserAndDate(userID uint, dueDate string) ([]models.Task, error) {
	tasks := make([]models.Task, 0)
	if err := repo.database.
		Where("user_id = ? AND due_date = ? AND completed = ?", userID, dueDate, false).
		Order("id ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *TaskRepository) FindByIDForUser(taskID uint, userID uint) (models.Task, error) {
	var task models.Task
	if err := repo.database.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error; err != nil {
		return models.Task{}, translateNotFound(err)
	}
	return task, nil
}

func (repo *TaskRepository) Create(task *models.Task) error {
	return repo.database.Create(task).Error
}

func (repo *TaskRepository) UpdateForUser(taskID uint, userID uint, updates map[string]any) error {
	result := repo.database.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", taskID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *TaskRepository) DeleteForUser(taskID uint, userID uint) error {
	result := repo.database.Where("id = ? AND user_id = ?", taskID, userID).Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
