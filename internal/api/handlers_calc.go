package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/services"
)

type dilutionInput struct {
	StockConcentration float64 `json:"c1" form:"c1"`
	FinalConcentration float64 `json:"c2" form:"c2"`
	FinalVolume        float64 `json:"v2" form:"v2"`
	AvailableStock     float64 `json:"available_stock" form:"available_stock"`
}

type solutionInput struct {
	Concentration   float64 `json:"concentration" form:"concentration"`
	Unit            string  `json:"unit" form:"unit"`
	MolecularWeight float64 `json:"molecular_weight" form:"molecular_weight"`
	Volume          float64 `json:"volume" form:"volume"`
	VolumeUnit      string  `json:"volume_unit" form:"volume_unit"`
}

type molarInput struct {
	Molarity        float64 `json:"molarity" form:"molarity"`
	MolecularWeight float64 `json:"molecular_weight" form:"molecular_weight"`
	VolumeLiters    float64 `json:"volume_liters" form:"volume_liters"`
}

func (handler *Handler) CalcDilution(c *fiber.Ctx) error {
	input := dilutionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	var stockVolume float64
	var err error
	if input.AvailableStock > 0 {
		stockVolume, err = services.DilutionWithStock(
			input.StockConcentration, input.FinalConcentration, input.FinalVolume, input.AvailableStock)
	} else {
		stockVolume, err = services.Dilution(
			input.StockConcentration, input.FinalConcentration, input.FinalVolume)
	}
	if err != nil {
		if errors.Is(err, services.ErrZeroConcentration) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		if errors.Is(err, services.ErrInsufficientStock) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":           err.Error(),
				"required_volume": stockVolume,
			})
		}
		return apiError(c, fiber.StatusInternalServerError, "calculation failed")
	}

	return c.JSON(fiber.Map{"stock_volume": stockVolume})
}

func (handler *Handler) CalcSolution(c *fiber.Ctx) error {
	input := solutionInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	mass, err := services.MassForSolution(
		input.Concentration, input.Unit, input.MolecularWeight, input.Volume, input.VolumeUnit)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(fiber.Map{"mass_grams": mass})
}

func (handler *Handler) CalcMolar(c *fiber.Ctx) error {
	input := molarInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	mass := services.MolarMass(input.Molarity, input.MolecularWeight, input.VolumeLiters)
	return c.JSON(fiber.Map{"mass_grams": mass})
}
