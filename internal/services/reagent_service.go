package services

import (
	"errors"
	"time"

	"github.com/labassistantpro/labassistant/internal/models"
)

const (
	dashboardLowStockLimit = 3
	expiryWarningDays      = 30
)

var ErrReagentNameRequired = errors.New("reagent name is required")
var ErrNegativeQuantity = errors.New("quantity must be non-negative")

type ReagentRepository interface {
	ListByUser(userID uint) ([]models.Reagent, error)
	ListLowStock(userID uint, limit int) ([]models.Reagent, error)
	ListExpiringBefore(userID uint, cutoff string) ([]models.Reagent, error)
	FindByIDForUser(reagentID uint, userID uint) (models.Reagent, error)
	Create(reagent *models.Reagent) error
	UpdateForUser(reagentID uint, userID uint, updates map[string]any) error
	DeleteForUser(reagentID uint, userID uint) error
}

type ReagentService struct {
	reagents ReagentRepository
	location *time.Location
}

func NewReagentService(reagents ReagentRepository, location *time.Location) *ReagentService {
	return &ReagentService{reagents: reagents, location: location}
}

type ReagentInput struct {
	Name          string
	Quantity      float64
	Unit          string
	Location      string
	Supplier      string
	CatalogNumber string
	ExpiryDate    string
	Notes         string
}

func (service *ReagentService) CreateReagent(userID uint, input ReagentInput) (models.Reagent, error) {
	if input.Name == "" {
		return models.Reagent{}, ErrReagentNameRequired
	}
	if input.Quantity < 0 {
		return models.Reagent{}, ErrNegativeQuantity
	}

	reagent := models.Reagent{
		UserID:        userID,
		Name:          input.Name,
		Quantity:      input.Quantity,
		Unit:          input.Unit,
		Location:      input.Location,
		Supplier:      input.Supplier,
		CatalogNumber: input.CatalogNumber,
		DateAdded:     Today(service.location),
		ExpiryDate:    input.ExpiryDate,
		Notes:         input.Notes,
	}
	if err := service.reagents.Create(&reagent); err != nil {
		return models.Reagent{}, err
	}
	return reagent, nil
}

func (service *ReagentService) ListReagents(userID uint) ([]models.Reagent, error) {
	return service.reagents.ListByUser(userID)
}

// LowStock lists reagents under the fixed threshold; limit 0 returns the
// full alert list, the dashboard passes dashboardLowStockLimit.
func (service *ReagentService) LowStock(userID uint, limit int) ([]models.Reagent, error) {
	return service.reagents.ListLowStock(userID, limit)
}

func (service *ReagentService) ExpiringSoon(userID uint) ([]models.Reagent, error) {
	cutoff := AddDays(Today(service.location), expiryWarningDays)
	return service.reagents.ListExpiringBefore(userID, cutoff)
}

func (service *ReagentService) UpdateReagent(userID uint, reagentID uint, input ReagentInput) error {
	if input.Name == "" {
		return ErrReagentNameRequired
	}
	if input.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return service.reagents.UpdateForUser(reagentID, userID, map[string]any{
		"name":           input.Name,
		"quantity":       input.Quantity,
		"unit":           input.Unit,
		"location":       input.Location,
		"supplier":       input.Supplier,
		"catalog_number": input.CatalogNumber,
		"expiry_date":    input.ExpiryDate,
		"notes":          input.Notes,
	})
}

func (service *ReagentService) DeleteReagent(userID uint, reagentID uint) error {
	return service.reagents.DeleteForUser(reagentID, userID)
}
