package services

import (
	"errors"

	"github.com/labassistantpro/labassistant/internal/models"
)

var ErrBufferNameRequired = errors.New("buffer name is required")
var ErrBufferPHOutOfRange = errors.New("pH must be between 0 and 14")

type BufferRepository interface {
	ListByUser(userID uint) ([]models.Buffer, error)
	FindByIDForUser(bufferID uint, userID uint) (models.Buffer, error)
	Create(buffer *models.Buffer) error
	DeleteForUser(bufferID uint, userID uint) error
}

type BufferService struct {
	buffers BufferRepository
}

func NewBufferService(buffers BufferRepository) *BufferService {
	return &BufferService{buffers: buffers}
}

type CustomBufferInput struct {
	Name        string
	PH          float64
	Components  []models.BufferComponent
	Preparation string
}

// SaveCustomBuffer persists a free-form buffer entry. Custom entries
// still get a sanity bound on pH at the physical scale.
func (service *BufferService) SaveCustomBuffer(userID uint, input CustomBufferInput) (models.Buffer, error) {
	if input.Name == "" {
		return models.Buffer{}, ErrBufferNameRequired
	}
	if input.PH < 0 || input.PH > 14 {
		return models.Buffer{}, ErrBufferPHOutOfRange
	}
	if input.Components == nil {
		input.Components = []models.BufferComponent{}
	}

	buffer := models.Buffer{
		UserID:      userID,
		Name:        input.Name,
		PH:          input.PH,
		Components:  input.Components,
		Preparation: input.Preparation,
	}
	if err := service.buffers.Create(&buffer); err != nil {
		return models.Buffer{}, err
	}
	return buffer, nil
}

// SaveRecipe persists the result of a guided recipe calculation.
func (service *BufferService) SaveRecipe(userID uint, recipe BufferRecipe) (models.Buffer, error) {
	buffer := models.Buffer{
		UserID:      userID,
		Name:        recipe.Name,
		PH:          recipe.PH,
		Components:  recipe.Components,
		Preparation: recipe.Preparation,
	}
	if err := service.buffers.Create(&buffer); err != nil {
		return models.Buffer{}, err
	}
	return buffer, nil
}

func (service *BufferService) ListBuffers(userID uint) ([]models.Buffer, error) {
	return service.buffers.ListByUser(userID)
}

func (service *BufferService) DeleteBuffer(userID uint, bufferID uint) error {
	return service.buffers.DeleteForUser(bufferID, userID)
}
