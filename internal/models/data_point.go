package models

import "time"

// DataPoint is a manually entered measurement row for tabular export.
type DataPoint struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Sample    string    `gorm:"not null" json:"sample"`
	Value1    float64   `gorm:"not null;default:0" json:"value1"`
	Value2    float64   `gorm:"not null;default:0" json:"value2"`
	CreatedAt time.Time `json:"created_at"`
}
