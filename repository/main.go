package repository

import (
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/infra"
)

type Repository struct {
	UserRepo     *UserRepository
	JobRepo      *JobRepository
	CourseRepo   *CourseRepository
	ProviderRepo *ProviderRepository
	PeriodRepo   *PeriodRepository
}

func InitRepository(infra *infra.Infra) *Repository {
	return &Repository{
		UserRepo:     NewUserRepository(infra.Postgres.DB),
		JobRepo:      NewJobRepository(infra.Postgres.DB),
		CourseRepo:   NewCourseRepository(infra.Postgres.DB),
		ProviderRepo: NewProviderRepository(infra.Postgres.DB),
		PeriodRepo:   NewPeriodRepository(infra.Postgres.DB),
	}
}

// WithTransaction rebinds every repo to the given transaction handle so a
// multi-statement sequence commits or rolls back as one unit.
func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return &Repository{
		UserRepo:     NewUserRepository(tx),
		JobRepo:      NewJobRepository(tx),
		CourseRepo:   NewCourseRepository(tx),
		ProviderRepo: NewProviderRepository(tx),
		PeriodRepo:   NewPeriodRepository(tx),
	}
}
