package services

import (
	"errors"

	"github.com/labassistantpro/labassistant/internal/models"
)

var ErrSampleRequired = errors.New("sample id is required")

type DataPointRepository interface {
	ListByUser(userID uint) ([]models.DataPoint, error)
	Create(point *models.DataPoint) error
	DeleteAllForUser(userID uint) error
}

type DataService struct {
	points DataPointRepository
}

func NewDataService(points DataPointRepository) *DataService {
	return &DataService{points: points}
}

func (service *DataService) AddPoint(userID uint, sample string, value1 float64, value2 float64) (models.DataPoint, error) {
	if sample == "" {
		return models.DataPoint{}, ErrSampleRequired
	}
	point := models.DataPoint{
		UserID: userID,
		Sample: sample,
		Value1: value1,
		Value2: value2,
	}
	if err := service.points.Create(&point); err != nil {
		return models.DataPoint{}, err
	}
	return point, nil
}

func (service *DataService) ListPoints(userID uint) ([]models.DataPoint, error) {
	return service.points.ListByUser(userID)
}

func (service *DataService) ClearPoints(userID uint) error {
	return service.points.DeleteAllForUser(userID)
}
