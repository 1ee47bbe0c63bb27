package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghrc19/Hed-System/entity"
	"github.com/ghrc19/Hed-System/http/controller/dto"
	"github.com/ghrc19/Hed-System/utils"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestExportCriteriaAppliesYear(t *testing.T) {
	now := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	c := testContext(t, "/api/v1/jobs/export?anio=2025&proveedor=Ana")
	criteria := exportCriteria(c, now)

	assert.Equal(t, 2025, criteria.Year)
	assert.Equal(t, "Ana", criteria.Provider)
}

func TestExportCriteriaDefaultsToCurrentYear(t *testing.T) {
	now := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		target string
	}{
		{"missing", "/api/v1/jobs/export"},
		{"malformed", "/api/v1/jobs/export?anio=abc"},
		{"non-positive", "/api/v1/jobs/export?anio=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria := exportCriteria(testContext(t, tt.target), now)
			assert.Equal(t, 2026, criteria.Year)
		})
	}
}

func TestExportCriteriaParsesCategorySet(t *testing.T) {
	c := testContext(t, "/api/v1/jobs/export?tipos=PA-01,EF")
	criteria := exportCriteria(c, time.Now())

	assert.Equal(t, []string{"PA-01", "EF"}, criteria.Categories)
}

func TestListCriteriaHasNoYearFilter(t *testing.T) {
	c := testContext(t, "/api/v1/jobs?anio=2025")
	criteria := listCriteria(c)

	assert.Zero(t, criteria.Year)
}

func TestApplyJobDefaultsFillsRegistrationDate(t *testing.T) {
	job := jobFromRequest(&dto.JobRequestDTO{
		ClientName: "Luis",
		Category:   entity.CategoryPA01,
		Status:     entity.StatusPending,
		Price:      50,
	})
	require.Empty(t, job.RegisteredAt)

	applyJobDefaults(job)

	assert.Equal(t, utils.Today(), job.RegisteredAt)
	assert.Equal(t, "Luis", job.ClientName)
	assert.Equal(t, entity.StatusPending, job.Status)
}

func TestApplyJobDefaultsKeepsProvidedValues(t *testing.T) {
	job := &entity.Job{
		ClientName:   "Ana",
		RegisteredAt: "2025-01-15",
		Status:       entity.StatusCancelled,
	}

	applyJobDefaults(job)

	assert.Equal(t, "2025-01-15", job.RegisteredAt)
	assert.Equal(t, "Ana", job.ClientName)
	assert.Equal(t, entity.StatusCancelled, job.Status)
}

func TestApplyJobDefaultsEmptyRecord(t *testing.T) {
	job := &entity.Job{}

	applyJobDefaults(job)

	assert.Equal(t, entity.DefaultClientName, job.ClientName)
	assert.Equal(t, utils.Today(), job.RegisteredAt)
	assert.Equal(t, entity.StatusPending, job.Status)
}

func TestJobFromRequestClearsDeliveryDateUnlessCompleted(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   string
	}{
		{"pending clears", entity.StatusPending, ""},
		{"cancelled clears", entity.StatusCancelled, ""},
		{"completed keeps", entity.StatusCompleted, "2025-02-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := jobFromRequest(&dto.JobRequestDTO{
				Status:      tt.status,
				DeliveredAt: "2025-02-01",
			})
			assert.Equal(t, tt.want, job.DeliveredAt)
		})
	}
}
