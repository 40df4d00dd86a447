package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	user := currentUser(c)
	dashboard, err := handler.dashboardService.Build(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build dashboard")
	}
	return c.JSON(dashboard)
}
