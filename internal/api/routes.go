package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)
	auth.Delete("/account", handler.AuthRequired, handler.DeleteAccount)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.ListTasks)
	tasks.Post("", handler.CreateTask)
	tasks.Get("/upcoming", handler.UpcomingTasks)
	tasks.Get("/on/:date", handler.TasksOnDate)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)
	tasks.Post("/:id/ack", handler.AcknowledgeTask)

	reagents := api.Group("/reagents", handler.AuthRequired)
	reagents.Get("", handler.ListReagents)
	reagents.Post("", handler.CreateReagent)
	reagents.Get("/low", handler.LowReagents)
	reagents.Get("/expiring", handler.ExpiringReagents)
	reagents.Get("/export/csv", handler.ExportReagentsCSV)
	reagents.Put("/:id", handler.UpdateReagent)
	reagents.Delete("/:id", handler.DeleteReagent)

	experiments := api.Group("/experiments", handler.AuthRequired)
	experiments.Get("", handler.ListExperiments)
	experiments.Post("", handler.CreateExperiment)
	experiments.Get("/recent", handler.RecentExperiments)
	experiments.Put("/:id", handler.UpdateExperiment)

	buffers := api.Group("/buffers", handler.AuthRequired)
	buffers.Get("", handler.ListBuffers)
	buffers.Post("", handler.CreateCustomBuffer)
	buffers.Post("/tris", handler.CreateTrisBuffer)
	buffers.Post("/phosphate", handler.CreatePhosphateBuffer)
	buffers.Delete("/:id", handler.DeleteBuffer)

	calc := api.Group("/calc", handler.AuthRequired)
	calc.Post("/dilution", handler.CalcDilution)
	calc.Post("/solution", handler.CalcSolution)
	calc.Post("/molar", handler.CalcMolar)

	data := api.Group("/data", handler.AuthRequired)
	data.Get("", handler.ListDataPoints)
	data.Post("", handler.AddDataPoint)
	data.Delete("", handler.ClearDataPoints)
	data.Get("/export/csv", handler.ExportDataPointsCSV)

	api.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
}
