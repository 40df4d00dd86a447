package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/services"
)

type taskInput struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	DueDate     string `json:"due_date" form:"due_date"`
	Frequency   string `json:"frequency" form:"frequency"`
}

func (handler *Handler) CreateTask(c *fiber.Ctx) error {
	input := taskInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.DueDate != "" && !services.ValidDay(input.DueDate) {
		return apiError(c, fiber.StatusBadRequest, "invalid due date")
	}

	user := currentUser(c)
	task, err := handler.taskService.CreateTask(user.ID, services.TaskInput{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Frequency:   input.Frequency,
	})
	if err != nil {
		if errors.Is(err, services.ErrTaskTitleRequired) || errors.Is(err, services.ErrInvalidFrequency) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create task")
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	user := currentUser(c)
	frequency := c.Query("frequency")
	includeCompleted := c.QueryBool("include_completed", false)

	tasks, err := handler.taskService.ListTasks(user.ID, frequency, includeCompleted)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFrequency) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to list tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) UpcomingTasks(c *fiber.Ctx) error {
	user := currentUser(c)
	tasks, err := handler.taskService.UpcomingTasks(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) TasksOnDate(c *fiber.Ctx) error {
	day := c.Params("date")
	if !services.ValidDay(day) {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	user := currentUser(c)
	tasks, err := handler.taskService.TasksOn(user.ID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list tasks")
	}
	return c.JSON(tasks)
}

func (handler *Handler) UpdateTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	input := taskInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.DueDate != "" && !services.ValidDay(input.DueDate) {
		return apiError(c, fiber.StatusBadRequest, "invalid due date")
	}

	user := currentUser(c)
	if err := handler.taskService.UpdateTask(user.ID, taskID, services.TaskInput{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Frequency:   input.Frequency,
	}); err != nil {
		if errors.Is(err, services.ErrTaskTitleRequired) || errors.Is(err, services.ErrInvalidFrequency) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return repositoryError(c, err, "failed to update task")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user := currentUser(c)
	if err := handler.taskService.DeleteTask(user.ID, taskID); err != nil {
		return repositoryError(c, err, "failed to delete task")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AcknowledgeTask(c *fiber.Ctx) error {
	taskID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user := currentUser(c)
	task, err := handler.taskService.Acknowledge(user.ID, taskID)
	if err != nil {
		return repositoryError(c, err, "failed to acknowledge task")
	}
	return c.JSON(task)
}
