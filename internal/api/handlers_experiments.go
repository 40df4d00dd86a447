package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/models"
	"github.com/labassistantpro/labassistant/internal/services"
)

type experimentInput struct {
	Title        string                 `json:"title" form:"title"`
	Aim          string                 `json:"aim" form:"aim"`
	Date         string                 `json:"date" form:"date"`
	Reagents     []models.ReagentAmount `json:"reagents"`
	Procedure    []string               `json:"procedure"`
	Observations string                 `json:"observations" form:"observations"`
	Notes        string                 `json:"notes" form:"notes"`
	Results      string                 `json:"results" form:"results"`
}

func (input experimentInput) toService() services.ExperimentInput {
	return services.ExperimentInput{
		Title:        input.Title,
		Aim:          input.Aim,
		Date:         input.Date,
		Reagents:     input.Reagents,
		Procedure:    input.Procedure,
		Observations: input.Observations,
		Notes:        input.Notes,
		Results:      input.Results,
	}
}

func experimentValidationError(err error) bool {
	return errors.Is(err, services.ErrExperimentTitleRequired) ||
		errors.Is(err, services.ErrExperimentAimRequired)
}

func (handler *Handler) CreateExperiment(c *fiber.Ctx) error {
	input := experimentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Date != "" && !services.ValidDay(input.Date) {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	user := currentUser(c)
	experiment, err := handler.experimentService.CreateExperiment(user.ID, input.toService())
	if err != nil {
		if experimentValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save protocol")
	}
	return c.Status(fiber.StatusCreated).JSON(experiment)
}

func (handler *Handler) ListExperiments(c *fiber.Ctx) error {
	user := currentUser(c)
	experiments, err := handler.experimentService.ListExperiments(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list experiments")
	}
	return c.JSON(experiments)
}

func (handler *Handler) RecentExperiments(c *fiber.Ctx) error {
	user := currentUser(c)
	experiments, err := handler.experimentService.RecentExperiments(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list experiments")
	}
	return c.JSON(experiments)
}

func (handler *Handler) UpdateExperiment(c *fiber.Ctx) error {
	experimentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	input := experimentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if input.Date != "" && !services.ValidDay(input.Date) {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	user := currentUser(c)
	experiment, err := handler.experimentService.UpdateExperiment(user.ID, experimentID, input.toService())
	if err != nil {
		if experimentValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return repositoryError(c, err, "failed to update experiment")
	}
	return c.JSON(experiment)
}
