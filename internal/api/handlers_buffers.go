package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/models"
	"github.com/labassistantpro/labassistant/internal/services"
)

type customBufferInput struct {
	Name        string                   `json:"name" form:"name"`
	PH          float64                  `json:"ph" form:"ph"`
	Components  []models.BufferComponent `json:"components"`
	Preparation string                   `json:"preparation" form:"preparation"`
}

type trisBufferInput struct {
	TargetPH      float64 `json:"target_ph" form:"target_ph"`
	Concentration float64 `json:"concentration" form:"concentration"`
	VolumeLiters  float64 `json:"volume_liters" form:"volume_liters"`
	AdjustWith    string  `json:"adjust_with" form:"adjust_with"`
}

type phosphateBufferInput struct {
	TargetPH      float64 `json:"target_ph" form:"target_ph"`
	Concentration float64 `json:"concentration" form:"concentration"`
	VolumeLiters  float64 `json:"volume_liters" form:"volume_liters"`
	Pair          string  `json:"pair" form:"pair"`
}

func recipeValidationError(err error) bool {
	return errors.Is(err, services.ErrPHOutOfRange) ||
		errors.Is(err, services.ErrInvalidVolume) ||
		errors.Is(err, services.ErrInvalidConcentration) ||
		errors.Is(err, services.ErrUnknownPhosphatePair)
}

func (handler *Handler) ListBuffers(c *fiber.Ctx) error {
	user := currentUser(c)
	buffers, err := handler.bufferService.ListBuffers(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list buffers")
	}
	return c.JSON(buffers)
}

func (handler *Handler) CreateCustomBuffer(c *fiber.Ctx) error {
	input := customBufferInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	buffer, err := handler.bufferService.SaveCustomBuffer(user.ID, services.CustomBufferInput{
		Name:        input.Name,
		PH:          input.PH,
		Components:  input.Components,
		Preparation: input.Preparation,
	})
	if err != nil {
		if errors.Is(err, services.ErrBufferNameRequired) || errors.Is(err, services.ErrBufferPHOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save buffer")
	}
	return c.Status(fiber.StatusCreated).JSON(buffer)
}

func (handler *Handler) CreateTrisBuffer(c *fiber.Ctx) error {
	input := trisBufferInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	recipe, err := services.TrisRecipe(input.TargetPH, input.Concentration, input.VolumeLiters, input.AdjustWith)
	if err != nil {
		if recipeValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build recipe")
	}

	user := currentUser(c)
	buffer, err := handler.bufferService.SaveRecipe(user.ID, recipe)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save buffer")
	}
	return c.Status(fiber.StatusCreated).JSON(buffer)
}

func (handler *Handler) CreatePhosphateBuffer(c *fiber.Ctx) error {
	input := phosphateBufferInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	recipe, err := services.PhosphateRecipe(input.TargetPH, input.Concentration, input.VolumeLiters, input.Pair)
	if err != nil {
		if recipeValidationError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build recipe")
	}

	user := currentUser(c)
	buffer, err := handler.bufferService.SaveRecipe(user.ID, recipe)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save buffer")
	}
	return c.Status(fiber.StatusCreated).JSON(buffer)
}

func (handler *Handler) DeleteBuffer(c *fiber.Ctx) error {
	bufferID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user := currentUser(c)
	if err := handler.bufferService.DeleteBuffer(user.ID, bufferID); err != nil {
		return repositoryError(c, err, "failed to delete buffer")
	}
	return c.JSON(fiber.Map{"ok": true})
}
