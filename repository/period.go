package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/entity"
)

type PeriodRepository struct {
	db *gorm.DB
}

func NewPeriodRepository(db *gorm.DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

func (r *PeriodRepository) Create(period *entity.Period) error {
	return r.db.Create(period).Error
}

func (r *PeriodRepository) FindByID(id uuid.UUID) (*entity.Period, error) {
	var period entity.Period
	err := r.db.Where("id = ?", id).First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *PeriodRepository) FindAll() ([]entity.Period, error) {
	var periods []entity.Period
	err := r.db.Order("name").Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *PeriodRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Period{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PeriodRepository) Update(period *entity.Period) error {
	return r.db.Model(&entity.Period{}).Where("id = ?", period.ID).Update("name", period.Name).Error
}

func (r *PeriodRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.Period{}, "id = ?", id).Error
}
