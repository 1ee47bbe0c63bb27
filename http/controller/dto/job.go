package dto

import "github.com/google/uuid"

type JobRequestDTO struct {
	ClientName   string     `json:"client_name"`
	ProviderID   *uuid.UUID `json:"provider_id"`
	CourseID     *uuid.UUID `json:"course_id"`
	PeriodID     *uuid.UUID `json:"period_id"`
	Category     string     `json:"category" binding:"required,oneof=PA-01 PA-02 PA-03 EF ES"`
	WorkMode     string     `json:"work_mode" binding:"required,oneof='Trabajo Individual' 'Trabajo Grupal'"`
	RegisteredAt string     `json:"registered_at" binding:"omitempty,datetime=2006-01-02"`
	DeliveredAt  string     `json:"delivered_at" binding:"omitempty,datetime=2006-01-02"`
	Price        float64    `json:"price" binding:"gte=0"`
	URL          string     `json:"url"`
	Status       string     `json:"status" binding:"omitempty,oneof=Pendiente Cancelado Terminado"`
}
