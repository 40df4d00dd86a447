package db

import (
	"github.com/labassistantpro/labassistant/internal/models"
	"gorm.io/gorm"
)

type ExperimentRepository struct {
	database *gorm.DB
}

func NewExperimentRepository(database *gorm.DB) *ExperimentRepository {
	return &ExperimentRepository{database: database}
}

func (repo *ExperimentRepository) ListByUser(userID uint) ([]models.Experiment, error) {
	experiments := make([]models.Experiment, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&experiments).Error; err != nil {
		return nil, err
	}
	return experiments, nil
}

func (repo *ExperimentRepository) ListRecent(userID uint, limit int) ([]models.Experiment, error) {
	experiments := make([]models.Experiment, 0)
	query := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&experiments).Error; err != nil {
		return nil, err
	}
	return experiments, nil
}

func (repo *ExperimentRepository) FindByIDForUser(experimentID uint, userID uint) (models.Experiment, error) {
	var experiment models.Experiment
	if err := repo.database.Where("id = ? AND user_id = ?", experimentID, userID).First(&experiment).Error; err != nil {
		return models.Experiment{}, translateNotFound(err)
	}
	return experiment, nil
}

func (repo *ExperimentRepository) Create(experiment *models.Experiment) error {
	return repo.database.Create(experiment).Error
}

// SaveForUser overwrites the full experiment row after an ownership
// check; partial updates are not needed because the protocol form always
// submits every field.
func (repo *ExperimentRepository) SaveForUser(experiment *models.Experiment) error {
	var existing models.Experiment
	if err := repo.database.
		Where("id = ? AND user_id = ?", experiment.ID, experiment.UserID).
		First(&existing).Error; err != nil {
		return translateNotFound(err)
	}
	return repo.database.Save(experiment).Error
}
