package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/services"
)

type dataPointInput struct {
	Sample string  `json:"sample" form:"sample"`
	Value1 float64 `json:"value1" form:"value1"`
	Value2 float64 `json:"value2" form:"value2"`
}

func (handler *Handler) AddDataPoint(c *fiber.Ctx) error {
	input := dataPointInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user := currentUser(c)
	point, err := handler.dataService.AddPoint(user.ID, input.Sample, input.Value1, input.Value2)
	if err != nil {
		if errors.Is(err, services.ErrSampleRequired) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to add data point")
	}
	return c.Status(fiber.StatusCreated).JSON(point)
}

func (handler *Handler) ListDataPoints(c *fiber.Ctx) error {
	user := currentUser(c)
	points, err := handler.dataService.ListPoints(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list data points")
	}
	return c.JSON(points)
}

func (handler *Handler) ClearDataPoints(c *fiber.Ctx) error {
	user := currentUser(c)
	if err := handler.dataService.ClearPoints(user.ID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to clear data points")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ExportDataPointsCSV(c *fiber.Ctx) error {
	user := currentUser(c)
	rows, err := handler.exportService.DataPointRows(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	output, err := writeCSV(services.DataPointCSVHeaders, rows)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", buildExportFilename("data", now))
	return c.Send(output)
}
