package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/entity"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(job *entity.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) FindByID(id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.
		Preload("Course").
		Preload("Provider").
		Preload("Period").
		Where("id = ?", id).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) FindAll() ([]entity.Job, error) {
	var jobs []entity.Job
	err := r.db.
		Preload("Course").
		Preload("Provider").
		Preload("Period").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update replaces every mutable field of the stored record.
func (r *JobRepository) Update(job *entity.Job) error {
	return r.db.Model(&entity.Job{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"client_name":   job.ClientName,
		"provider_id":   job.ProviderID,
		"course_id":     job.CourseID,
		"period_id":     job.PeriodID,
		"category":      job.Category,
		"work_mode":     job.WorkMode,
		"registered_at": job.RegisteredAt,
		"delivered_at":  job.DeliveredAt,
		"price":         job.Price,
		"url":           job.URL,
		"status":        job.Status,
	}).Error
}

// UpdateStatus is the narrow write used by the toggle-completion operation.
func (r *JobRepository) UpdateStatus(id uuid.UUID, status, deliveredAt string) error {
	return r.db.Model(&entity.Job{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       status,
		"delivered_at": deliveredAt,
	}).Error
}

func (r *JobRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.Job{}, "id = ?", id).Error
}
