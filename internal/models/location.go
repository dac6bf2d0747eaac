package models

import (
	"time"
)

type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:256;not null" json:"name"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}
