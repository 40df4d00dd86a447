package db

import (
	"github.com/labassistantpro/labassistant/internal/models"
	"gorm.io/gorm"
)

type ReagentRepository struct {
	database *gorm.DB
}

func NewReagentRepository(database *gorm.DB) *ReagentRepository {
	return &ReagentRepository{database: database}
}

func (repo *ReagentRepository) ListByUser(userID uint) ([]models.Reagent, error) {
	reagents := make([]models.Reagent, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("name ASC, id ASC").
		Find(&reagents).Error; err != nil {
		return nil, err
	}
	return reagents, nil
}

func (repo *ReagentRepository) ListLowStock(userID uint, limit int) ([]models.Reagent, error) {
	reagents := make([]models.Reagent, 0)
	query := repo.database.
		Where("user_id = ? AND quantity < ?", userID, models.LowStockThreshold).
		Order("quantity ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reagents).Error; err != nil {
		return nil, err
	}
	return reagents, nil
}

// ListExpiringBefore returns reagents whose expiry date is set and falls
// strictly before the cutoff date string.
func (repo *ReagentRepository) ListExpiringBefore(userID uint, cutoff string) ([]models.Reagent, error) {
	reagents := make([]models.Reagent, 0)
	if err := repo.database.
		Where("user_id = ? AND expiry_date != '' AND expiry_date < ?", userID, cutoff).
		Order("expiry_date ASC, id ASC").
		Find(&reagents).Error; err != nil {
		return nil, err
	}
	return reagents, nil
}

func (repo *ReagentRepository) FindByIDForUser(reagentID uint, userID uint) (models.Reagent, error) {
	var reagent models.Reagent
	if err := repo.database.Where("id = ? AND user_id = ?", reagentID, userID).First(&reagent).Error; err != nil {
		return models.Reagent{}, translateNotFound(err)
	}
	return reagent, nil
}

func (repo *ReagentRepository) Create(reagent *models.Reagent) error {
	return repo.database.Create(reagent).Error
}

func (repo *ReagentRepository) UpdateForUser(reagentID uint, userID uint, updates map[string]any) error {
	result := repo.database.Model(&models.Reagent{}).
		Where("id = ? AND user_id = ?", reagentID, userID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (repo *ReagentRepository) DeleteForUser(reagentID uint, userID uint) error {
	result := repo.database.Where("id = ? AND user_id = ?", reagentID, userID).Delete(&models.Reagent{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
