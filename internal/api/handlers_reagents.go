package api

import (
	"bytes"
	"encoding/csv"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/services"
)

type reagentInput struct {
	Name          string  `json:"name" form:"name"`
	Quantity      float64 `json:"quantity" form:"quantity"`
	Unit          string  `json:"unit" form:"unit"`
	Location      string  `json:"location" form:"location"`
	Supplier      string  `json:"supplier" form:"supplier"`
	CatalogNumber string  `json:"catalog_number" form:"catalog_number"`
	ExpiryDate    string  `json:"expiry_date" form:"expiry_date"`
	Notes         string  `json:"notes" form:"notes"`
}

func (input reagentInput) toService() services.ReagentInput {
	return services.ReagentInput{
		Name:          input.Name,
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		Location:      input.Location,
		Supplier:      input.Supplier,
		CatalogNumber: input.CatalogNumber,
		ExpiryDate:    input.ExpiryDate,
		Notes:         input.Notes,
	}
}

func validateReagentInput(input reagentInput) string {
	if input.ExpiryDate != "" && !services.ValidDay(input.ExpiryDate) {
		return "invalid expiry date"
	}
	return ""
}

func (handler *Handler) CreateReagent(c *fiber.Ctx) error {
	input := reagentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateReagentInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user := currentUser(c)
	reagent, err := handler.reagentService.CreateReagent(user.ID, input.toService())
	if err != nil {
		if errors.Is(err, services.ErrReagentNameRequired) || errors.Is(err, services.ErrNegativeQuantity) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create reagent")
	}
	return c.Status(fiber.StatusCreated).JSON(reagent)
}

func (handler *Handler) ListReagents(c *fiber.Ctx) error {
	user := currentUser(c)
	reagents, err := handler.reagentService.ListReagents(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list reagents")
	}
	return c.JSON(reagents)
}

func (handler *Handler) LowReagents(c *fiber.Ctx) error {
	user := currentUser(c)
	reagents, err := handler.reagentService.LowStock(user.ID, c.QueryInt("limit", 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list reagents")
	}
	return c.JSON(reagents)
}

func (handler *Handler) ExpiringReagents(c *fiber.Ctx) error {
	user := currentUser(c)
	reagents, err := handler.reagentService.ExpiringSoon(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list reagents")
	}
	return c.JSON(reagents)
}

func (handler *Handler) UpdateReagent(c *fiber.Ctx) error {
	reagentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	input := reagentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if message := validateReagentInput(input); message != "" {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	user := currentUser(c)
	if err := handler.reagentService.UpdateReagent(user.ID, reagentID, input.toService()); err != nil {
		if errors.Is(err, services.ErrReagentNameRequired) || errors.Is(err, services.ErrNegativeQuantity) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		return repositoryError(c, err, "failed to update reagent")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteReagent(c *fiber.Ctx) error {
	reagentID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}

	user := currentUser(c)
	if err := handler.reagentService.DeleteReagent(user.ID, reagentID); err != nil {
		return repositoryError(c, err, "failed to delete reagent")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ExportReagentsCSV(c *fiber.Ctx) error {
	user := currentUser(c)
	rows, err := handler.exportService.ReagentRows(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	output, err := writeCSV(services.ReagentCSVHeaders, rows)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "text/csv; charset=utf-8", buildExportFilename("reagents", now))
	return c.Send(output)
}

func writeCSV(headers []string, rows [][]string) ([]byte, error) {
	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(headers); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return output.Bytes(), nil
}
