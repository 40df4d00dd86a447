package services

import (
	"errors"
	"time"

	"github.com/labassistantpro/labassistant/internal/db"
	"github.com/labassistantpro/labassistant/internal/models"
)

const (
	upcomingTaskLimit = 5

	// Monthly recurrence advances by a fixed 30 days rather than a
	// calendar month.
	monthlyAdvanceDays = 30
	weeklyAdvanceDays  = 7
	dailyAdvanceDays   = 1
)

var ErrTaskTitleRequired = errors.New("task title is required")
var ErrInvalidFrequency = errors.New("invalid task frequency")

type TaskRepository interface {
	ListByUser(userID uint, filter db.TaskFilter) ([]models.Task, error)
	ListUpcoming(userID uint, today string, limit int) ([]models.Task, error)
	ListByUserAndDate(userID uint, dueDate string) ([]models.Task, error)
	FindByIDForUser(taskID uint, userID uint) (models.Task, error)
	Create(task *models.Task) error
	UpdateForUser(taskID uint, userID uint, updates map[string]any) error
	DeleteForUser(taskID uint, userID uint) error
}

type TaskService struct {
	tasks    TaskRepository
	location *time.Location
}

func NewTaskService(tasks TaskRepository, location *time.Location) *TaskService {
	return &TaskService{tasks: tasks, location: location}
}

type TaskInput struct {
	Title       string
	Description string
	DueDate     string
	Frequency   string
}

func (service *TaskService) CreateTask(userID uint, input TaskInput) (models.Task, error) {
	if input.Title == "" {
		return models.Task{}, ErrTaskTitleRequired
	}
	if input.Frequency == "" {
		input.Frequency = models.FrequencyOnce
	}
	if !models.ValidFrequency(input.Frequency) {
		return models.Task{}, ErrInvalidFrequency
	}
	if input.DueDate == "" {
		input.DueDate = Today(service.location)
	}

	task := models.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Frequency:   input.Frequency,
	}
	if err := service.tasks.Create(&task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (service *TaskService) ListTasks(userID uint, frequency string, includeCompleted bool) ([]models.Task, error) {
	if frequency != "" && !models.ValidFrequency(frequency) {
		return nil, ErrInvalidFrequency
	}
	return service.tasks.ListByUser(userID, db.TaskFilter{
		Frequency:        frequency,
		IncludeCompleted: includeCompleted,
	})
}

func (service *TaskService) UpcomingTasks(userID uint) ([]models.Task, error) {
	return service.tasks.ListUpcoming(userID, Today(service.location), upcomingTaskLimit)
}

func (service *TaskService) TasksOn(userID uint, day string) ([]models.Task, error) {
	return service.tasks.ListByUserAndDate(userID, day)
}

func (service *TaskService) UpdateTask(userID uint, taskID uint, input TaskInput) error {
	if input.Title == "" {
		return ErrTaskTitleRequired
	}
	if !models.ValidFrequency(input.Frequency) {
		return ErrInvalidFrequency
	}
	return service.tasks.UpdateForUser(taskID, userID, map[string]any{
		"title":       input.Title,
		"description": input.Description,
		"due_date":    input.DueDate,
		"frequency":   input.Frequency,
	})
}

func (service *TaskService) DeleteTask(userID uint, taskID uint) error {
	return service.tasks.DeleteForUser(taskID, userID)
}

// Acknowledge completes a one-off task, or advances a recurring task's
// due date while leaving it open. Recurring tasks are never marked
// completed.
func (service *TaskService) Acknowledge(userID uint, taskID uint) (models.Task, error) {
	task, err := service.tasks.FindByIDForUser(taskID, userID)
	if err != nil {
		return models.Task{}, err
	}

	updates := AcknowledgeUpdates(task)
	if err := service.tasks.UpdateForUser(taskID, userID, updates); err != nil {
		return models.Task{}, err
	}
	return service.tasks.FindByIDForUser(taskID, userID)
}

// AcknowledgeUpdates computes the column changes for acknowledging a
// task, kept separate from storage for direct testing.
func AcknowledgeUpdates(task models.Task) map[string]any {
	switch task.Frequency {
	case models.FrequencyDaily:
		return map[string]any{"due_date": AddDays(task.DueDate, dailyAdvanceDays)}
	case models.FrequencyWeekly:
		return map[string]any{"due_date": AddDays(task.DueDate, weeklyAdvanceDays)}
	case models.FrequencyMonthly:
		return map[string]any{"due_date": AddDays(task.DueDate, monthlyAdvanceDays)}
	default:
		return map[string]any{"completed": true}
	}
}
