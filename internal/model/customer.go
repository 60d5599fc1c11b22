package model

import "time"

// Customer is a buyer. Customers are deduplicated by case-insensitive name
// when sales arrive without an explicit customer id (batch import, webhook).
type Customer struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"index;not null"`
	Email     string
	Source    string
	CreatedAt time.Time
}
