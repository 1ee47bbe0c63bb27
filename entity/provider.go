package entity

import "github.com/google/uuid"

type Provider struct {
	ID    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name  string    `json:"name" binding:"required" gorm:"not null;uniqueIndex"`
	Phone string    `json:"phone" binding:"required,len=9,numeric" gorm:"not null"`
}
