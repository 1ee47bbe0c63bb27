package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/entity"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(course *entity.Course) error {
	return r.db.Create(course).Error
}

func (r *CourseRepository) FindByID(id uuid.UUID) (*entity.Course, error) {
	var course entity.Course
	err := r.db.Where("id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) FindAll() ([]entity.Course, error) {
	var courses []entity.Course
	err := r.db.Order("name").Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *CourseRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Course{}).Where("name = ?", name).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CourseRepository) Update(course *entity.Course) error {
	return r.db.Model(&entity.Course{}).Where("id = ?", course.ID).Update("name", course.Name).Error
}

func (r *CourseRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&entity.Course{}, "id = ?", id).Error
}
