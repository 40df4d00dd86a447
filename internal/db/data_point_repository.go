package db

import (
	"github.com/labassistantpro/labassistant/internal/models"
	"gorm.io/gorm"
)

type DataPointRepository struct {
	database *gorm.DB
}

func NewDataPointRepository(database *gorm.DB) *DataPointRepository {
	return &DataPointRepository{database: database}
}

func (repo *DataPointRepository) ListByUser(userID uint) ([]models.DataPoint, error) {
	points := make([]models.DataPoint, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (repo *DataPointRepository) Create(point *models.DataPoint) error {
	return repo.database.Create(point).Error
}

func (repo *DataPointRepository) DeleteAllForUser(userID uint) error {
	return repo.database.Where("user_id = ?", userID).Delete(&models.DataPoint{}).Error
}
