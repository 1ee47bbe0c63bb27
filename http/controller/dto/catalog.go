package dto

type CourseRequestDTO struct {
	Name string `json:"name" binding:"required"`
}

type ProviderRequestDTO struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required,len=9,numeric"`
}

type PeriodRequestDTO struct {
	Name string `json:"name" binding:"required"`
}
