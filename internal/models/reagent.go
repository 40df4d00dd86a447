package models

// LowStockThreshold is the fixed quantity below which a reagent is
// reported as running low, regardless of unit.
const LowStockThreshold = 10.0

type Reagent struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UserID        uint    `gorm:"not null;index:idx_reagents_user_name" json:"-"`
	Name          string  `gorm:"not null;index:idx_reagents_user_name" json:"name"`
	Quantity      float64 `gorm:"not null;default:0" json:"quantity"`
	Unit          string  `gorm:"not null;default:''" json:"unit"`
	Location      string  `gorm:"not null;default:''" json:"location"`
	Supplier      string  `gorm:"not null;default:''" json:"supplier"`
	CatalogNumber string  `gorm:"not null;default:''" json:"catalog_number"`
	DateAdded     string  `gorm:"not null;default:''" json:"date_added"`
	ExpiryDate    string  `gorm:"not null;default:''" json:"expiry_date"`
	Notes         string  `gorm:"not null;default:''" json:"notes"`
}

func (reagent Reagent) LowStock() bool {
	return reagent.Quantity < LowStockThreshold
}
