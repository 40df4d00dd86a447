package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/labassistantpro/labassistant/internal/db"
	"github.com/labassistantpro/labassistant/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	authService       *services.AuthService
	taskService       *services.TaskService
	reagentService    *services.ReagentService
	experimentService *services.ExperimentService
	bufferService     *services.BufferService
	dataService       *services.DataService
	exportService     *services.ExportService
	dashboardService  *services.DashboardService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}

	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users, location)
	handler.taskService = services.NewTaskService(handler.repositories.Tasks, location)
	handler.reagentService = services.NewReagentService(handler.repositories.Reagents, location)
	handler.experimentService = services.NewExperimentService(handler.repositories.Experiments, location)
	handler.bufferService = services.NewBufferService(handler.repositories.Buffers)
	handler.dataService = services.NewDataService(handler.repositories.DataPoints)
	handler.exportService = services.NewExportService(handler.repositories.Reagents, handler.repositories.DataPoints)
	handler.dashboardService = services.NewDashboardService(handler.taskService, handler.experimentService, handler.reagentService)

	return handler
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
