package db

import (
	"github.com/labassistantpro/labassistant/internal/models"
	"gorm.io/gorm"
)

type BufferRepository struct {
	database *gorm.DB
}

func NewBufferRepository(database *gorm.DB) *BufferRepository {
	return &BufferRepository{database: database}
}

func (repo *BufferRepository) ListByUser(userID uint) ([]models.Buffer, error) {
	buffers := make([]models.Buffer, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&buffers).Error; err != nil {
		return nil, err
	}
	return buffers, nil
}

func (repo *BufferRepository) FindByIDForUser(bufferID uint, userID uint) (models.Buffer, error) {
	var buffer models.Buffer
	if err := repo.database.Where("id = ? AND user_id = ?", bufferID, userID).First(&buffer).Error; err != nil {
		return models.Buffer{}, translateNotFound(err)
	}
	return buffer, nil
}

func (repo *BufferRepository) Create(buffer *models.Buffer) error {
	return repo.database.Create(buffer).Error
}

func (repo *BufferRepository) DeleteForUser(bufferID uint, userID uint) error {
	result := repo.database.Where("id = ? AND user_id = ?", bufferID, userID).Delete(&models.Buffer{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
