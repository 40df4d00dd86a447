package api

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/db"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// repositoryError maps ErrNotFound to 404 and everything else to an
// opaque 500, keeping storage failures out of the response body.
func repositoryError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, db.ErrNotFound) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}
	return apiError(c, fiber.StatusInternalServerError, fallback)
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, fmt.Errorf("invalid %s parameter", name)
	}
	return uint(value), nil
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", "attachment; filename="+filename)
}

func buildExportFilename(kind string, now time.Time) string {
	return fmt.Sprintf("labassistant-%s-%s.csv", kind, now.Format("2006-01-02"))
}
