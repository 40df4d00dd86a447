package services

import "github.com/labassistantpro/labassistant/internal/models"

// Dashboard is the read-only landing view: the few most pressing tasks,
// the latest experiments, and inventory running low.
type Dashboard struct {
	UpcomingTasks     []models.Task       `json:"upcoming_tasks"`
	RecentExperiments []models.Experiment `json:"recent_experiments"`
	LowReagents       []models.Reagent    `json:"low_reagents"`
}

type DashboardService struct {
	tasks       *TaskService
	experiments *ExperimentService
	reagents    *ReagentService
}

func NewDashboardService(tasks *TaskService, experiments *ExperimentService, reagents *ReagentService) *DashboardService {
	return &DashboardService{
		tasks:       tasks,
		experiments: experiments,
		reagents:    reagents,
	}
}

func (service *DashboardService) Build(userID uint) (Dashboard, error) {
	upcoming, err := service.tasks.UpcomingTasks(userID)
	if err != nil {
		return Dashboard{}, err
	}

	recent, err := service.experiments.RecentExperiments(userID)
	if err != nil {
		return Dashboard{}, err
	}

	low, err := service.reagents.LowStock(userID, dashboardLowStockLimit)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{
		UpcomingTasks:     upcoming,
		RecentExperiments: recent,
		LowReagents:       low,
	}, nil
}
