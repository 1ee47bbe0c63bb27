package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/entity"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

func (r *ProviderRepository) Create(provider *entity.Provider) error {
	return r.db.Create(provider).Error
}

func (r *ProviderRepository) FindByID(id uuid.UUID) (*entity.Provider, error) {
	var provider entity.Provider
	err := r.db.Where("id = ?", id).First(&provider).Error
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepository) FindAll() ([]entity.Provider, error) {
	var providers []entity.Provider
	err := r.db.Order("name").Find(&providers).Error
	if err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *ProviderRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Provider{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProviderRepository) Update(provider *entity.Provider) error {
	return r.db.Model(&entity.Provider{}).Where("id = ?", provider.ID).Updates(map[string]interface{}{
		"name":  provider.Name,
		"phone": provider.Phone,
	}).Error
}

func (r *ProviderRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.Provider{}, "id = ?", id).Error
}
