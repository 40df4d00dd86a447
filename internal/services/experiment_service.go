package services

import (
	"errors"
	"time"

	"github.com/labassistantpro/labassistant/internal/models"
)

const dashboardRecentExperiments = 3

var ErrExperimentTitleRequired = errors.New("experiment title is required")
var ErrExperimentAimRequired = errors.New("experiment aim is required")

type ExperimentRepository interface {
	ListByUser(userID uint) ([]models.Experiment, error)
	ListRecent(userID uint, limit int) ([]models.Experiment, error)
	FindByIDForUser(experimentID uint, userID uint) (models.Experiment, error)
	Create(experiment *models.Experiment) error
	SaveForUser(experiment *models.Experiment) error
}

type ExperimentService struct {
	experiments ExperimentRepository
	location    *time.Location
}

func NewExperimentService(experiments ExperimentRepository, location *time.Location) *ExperimentService {
	return &ExperimentService{experiments: experiments, location: location}
}

type ExperimentInput struct {
	Title        string
	Aim          string
	Date         string
	Reagents     []models.ReagentAmount
	Procedure    []string
	Observations string
	Notes        string
	Results      string
}

func (service *ExperimentService) CreateExperiment(userID uint, input ExperimentInput) (models.Experiment, error) {
	if input.Title == "" {
		return models.Experiment{}, ErrExperimentTitleRequired
	}
	if input.Aim == "" {
		return models.Experiment{}, ErrExperimentAimRequired
	}
	if input.Date == "" {
		input.Date = Today(service.location)
	}
	if input.Reagents == nil {
		input.Reagents = []models.ReagentAmount{}
	}
	if input.Procedure == nil {
		input.Procedure = []string{}
	}

	experiment := models.Experiment{
		UserID:       userID,
		Title:        input.Title,
		Aim:          input.Aim,
		Date:         input.Date,
		Reagents:     input.Reagents,
		Procedure:    input.Procedure,
		Observations: input.Observations,
		Notes:        input.Notes,
		Results:      input.Results,
	}
	if err := service.experiments.Create(&experiment); err != nil {
		return models.Experiment{}, err
	}
	return experiment, nil
}

func (service *ExperimentService) ListExperiments(userID uint) ([]models.Experiment, error) {
	return service.experiments.ListByUser(userID)
}

func (service *ExperimentService) RecentExperiments(userID uint) ([]models.Experiment, error) {
	return service.experiments.ListRecent(userID, dashboardRecentExperiments)
}

// UpdateExperiment completes an experiment record in place, typically to
// fill observations and results after the run.
func (service *ExperimentService) UpdateExperiment(userID uint, experimentID uint, input ExperimentInput) (models.Experiment, error) {
	if input.Title == "" {
		return models.Experiment{}, ErrExperimentTitleRequired
	}
	if input.Aim == "" {
		return models.Experiment{}, ErrExperimentAimRequired
	}

	experiment, err := service.experiments.FindByIDForUser(experimentID, userID)
	if err != nil {
		return models.Experiment{}, err
	}

	experiment.Title = input.Title
	experiment.Aim = input.Aim
	if input.Date != "" {
		experiment.Date = input.Date
	}
	if input.Reagents != nil {
		experiment.Reagents = input.Reagents
	}
	if input.Procedure != nil {
		experiment.Procedure = input.Procedure
	}
	experiment.Observations = input.Observations
	experiment.Notes = input.Notes
	experiment.Results = input.Results

	if err := service.experiments.SaveForUser(&experiment); err != nil {
		return models.Experiment{}, err
	}
	return experiment, nil
}
