package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/entity"
	"github.com/ghrc19/Hed-System/http/controller/dto"
	"github.com/ghrc19/Hed-System/listing"
	"github.com/ghrc19/Hed-System/utils"
)

// listCriteria maps the list-view query parameters onto filter criteria.
func listCriteria(c *gin.Context) listing.Criteria {
	return listing.Criteria{
		Category:  c.Query("tipo_pa"),
		Period:    c.Query("periodo"),
		Provider:  c.Query("proveedor"),
		Search:    c.Query("busqueda"),
		StartDate: c.Query("fecha_inicio"),
		EndDate:   c.Query("fecha_fin"),
		Month:     c.Query("mes"),
	}
}

// filteredJobs loads every job and runs it through the filter and ordering
// engines. Reads always hit the store, so the result reflects the latest
// committed write.
func (ctrl *Controller) filteredJobs(c *gin.Context, criteria listing.Criteria) ([]listing.Job, error) {
	records, err := ctrl.Repository.JobRepo.FindAll()
	if err != nil {
		return nil, err
	}

	filtered := listing.Filter(listing.FromEntities(records), criteria)

	sortField := c.Query("sort")
	if sortField == "" {
		return listing.SortByStatus(filtered), nil
	}
	return listing.Sort(filtered, sortField, c.Query("order")), nil
}

func (ctrl *Controller) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()

	ordered, err := ctrl.filteredJobs(c, listCriteria(c))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Job] Failed to list jobs: %v", err)
		utils.JSON500(c, "Failed to list jobs")
		return
	}

	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(listing.DefaultPageSize)))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	paginator := listing.NewPaginator(len(ordered), perPage)
	paginator.SetPage(page)

	utils.JSON200(c, gin.H{
		"jobs":        paginator.Slice(ordered),
		"total":       len(ordered),
		"page":        paginator.Current(),
		"per_page":    paginator.Size(),
		"total_pages": paginator.PageCount(),
	})
}

func (ctrl *Controller) CreateJob(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.JobRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	if msg := ctrl.checkCatalogRefs(&req); msg != "" {
		utils.JSON400(c, msg)
		return
	}

	job := jobFromRequest(&req)
	job.ID = uuid.New()
	applyJobDefaults(job)

	if err := ctrl.Repository.JobRepo.Create(job); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Job] Failed to create job: %v", err)
		utils.JSON500(c, "Failed to create job")
		return
	}

	created, err := ctrl.Repository.JobRepo.FindByID(job.ID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Job] Failed to reload created job: %v", err)
		utils.JSON500(c, "Failed to reload created job")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Job] Created job %s for client '%s'", created.ID, created.ClientName)
	utils.JSON201(c, gin.H{"job": listing.FromEntity(*created)})
}

func (ctrl *Controller) UpdateJob(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid job id")
		return
	}

	if _, err := ctrl.Repository.JobRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Job not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Job] Failed to load job %s: %v", id, err)
		utils.JSON500(c, "Failed to load job")
		return
	}

	var req dto.JobRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	if msg := ctrl.checkCatalogRefs(&req); msg != "" {
		utils.JSON400(c, msg)
		return
	}

	job := jobFromRequest(&req)
	job.ID = id
	applyJobDefaults(job)

	var updated *entity.Job
	txErr := ctrl.Infra.Postgres.DB.Transaction(func(tx *gorm.DB) error {
		repo := ctrl.Repository.WithTransaction(tx)
		if err := repo.JobRepo.Update(job); err != nil {
			return err
		}
		updated, err = repo.JobRepo.FindByID(id)
		return err
	})
	if txErr != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, txErr, "[Job] Failed to update job %s: %v", id, txErr)
		utils.JSON500(c, "Failed to update job")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Job] Updated job %s", id)
	utils.JSON200(c, gin.H{"job": listing.FromEntity(*updated)})
}

func (ctrl *Controller) DeleteJob(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid job id")
		return
	}

	if _, err := ctrl.Repository.JobRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Job not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Job] Failed to load job %s: %v", id, err)
		utils.JSON500(c, "Failed to load job")
		return
	}

	if err := ctrl.Repository.JobRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Job] Failed to delete job %s: %v", id, err)
		utils.JSON500(c, "Failed to delete job")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Job] Deleted job %s", id)
	utils.JSON200(c, gin.H{"message": "Job deleted"})
}

// ToggleJob flips a job between Pendiente and Terminado. Terminado jobs go
// back to Pendiente with the delivery date cleared; anything else becomes
// Terminado delivered today. Cancelado is only reachable via a full edit.
func (ctrl *Controller) ToggleJob(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid job id")
		return
	}

	job, err := ctrl.Repository.JobRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Job not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Job] Failed to load job %s: %v", id, err)
		utils.JSON500(c, "Failed to load job")
		return
	}

	status, deliveredAt := entity.ToggleStatus(job.Status, utils.Today())

	var updated *entity.Job
	txErr := ctrl.Infra.Postgres.DB.Transaction(func(tx *gorm.DB) error {
		repo := ctrl.Repository.WithTransaction(tx)
		if err := repo.JobRepo.UpdateStatus(id, status, deliveredAt); err != nil {
			return err
		}
		updated, err = repo.JobRepo.FindByID(id)
		return err
	})
	if txErr != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, txErr, "[Job] Failed to toggle job %s: %v", id, txErr)
		utils.JSON500(c, "Failed to update job status")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Job] Job %s is now %s", id, status)
	utils.JSON200(c, gin.H{"job": listing.FromEntity(*updated)})
}

// jobFromRequest builds the entity. The delivery date is cleared on every
// write path where the state is not Terminado, not just on toggle.
func jobFromRequest(req *dto.JobRequestDTO) *entity.Job {
	job := &entity.Job{
		ClientName:   req.ClientName,
		ProviderID:   req.ProviderID,
		CourseID:     req.CourseID,
		PeriodID:     req.PeriodID,
		Category:     req.Category,
		WorkMode:     req.WorkMode,
		RegisteredAt: req.RegisteredAt,
		DeliveredAt:  req.DeliveredAt,
		Price:        req.Price,
		URL:          req.URL,
		Status:       req.Status,
	}
	if job.Status != entity.StatusCompleted {
		job.DeliveredAt = ""
	}
	return job
}

// applyJobDefaults fills the fields every stored record must carry. Both
// write paths apply it, so a full update cannot blank out the registration
// date either.
func applyJobDefaults(job *entity.Job) {
	if job.ClientName == "" {
		job.ClientName = entity.DefaultClientName
	}
	if job.RegisteredAt == "" {
		job.RegisteredAt = utils.Today()
	}
	if job.Status == "" {
		job.Status = entity.StatusPending
	}
}

// checkCatalogRefs verifies every provided foreign key points at an existing
// catalog row. Returns an error message, or "" when everything resolves.
func (ctrl *Controller) checkCatalogRefs(req *dto.JobRequestDTO) string {
	if req.ProviderID != nil {
		if _, err := ctrl.Repository.ProviderRepo.FindByID(*req.ProviderID); err != nil {
			return "Unknown provider"
		}
	}
	if req.CourseID != nil {
		if _, err := ctrl.Repository.CourseRepo.FindByID(*req.CourseID); err != nil {
			return "Unknown course"
		}
	}
	if req.PeriodID != nil {
		if _, err := ctrl.Repository.PeriodRepo.FindByID(*req.PeriodID); err != nil {
			return "Unknown period"
		}
	}
	return ""
}
