package entity

import "github.com/google/uuid"

type Course struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name string    `json:"name" binding:"required" gorm:"not null;uniqueIndex"`
}
