package models

// BufferComponent is one ingredient of a buffer recipe, persisted inside
// the buffers.components JSON column in entry order.
type BufferComponent struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

type Buffer struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	UserID      uint              `gorm:"not null;index:idx_buffers_user_name" json:"-"`
	Name        string            `gorm:"not null;index:idx_buffers_user_name" json:"name"`
	PH          float64           `gorm:"column:ph;not null;default:7" json:"ph"`
	Components  []BufferComponent `gorm:"serializer:json" json:"components"`
	Preparation string            `gorm:"not null;default:''" json:"preparation"`
}
