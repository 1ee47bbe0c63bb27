package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/entity"
	"github.com/ghrc19/Hed-System/http/controller/dto"
	"github.com/ghrc19/Hed-System/utils"
)

// Catalog entities (courses, providers, periods) share the same CRUD shape.
// Deleting a catalog row never touches jobs: their foreign keys are set to
// NULL and resolve to an empty name at read time.

func (ctrl *Controller) CreateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CourseRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	exists, err := ctrl.Repository.CourseRepo.ExistsByName(req.Name)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to check course name: %v", err)
		utils.JSON500(c, "Failed to check course name")
		return
	}
	if exists {
		utils.JSON409(c, "Course with this name already exists")
		return
	}

	course := &entity.Course{ID: uuid.New(), Name: req.Name}
	if err := ctrl.Repository.CourseRepo.Create(course); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to create course: %v", err)
		utils.JSON500(c, "Failed to create course")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Catalog] Created course %s '%s'", course.ID, course.Name)
	utils.JSON201(c, gin.H{"course": course})
}

func (ctrl *Controller) ListCourses(c *gin.Context) {
	ctx := c.Request.Context()

	courses, err := ctrl.Repository.CourseRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to list courses: %v", err)
		utils.JSON500(c, "Failed to list courses")
		return
	}
	utils.JSON200(c, gin.H{"courses": courses})
}

func (ctrl *Controller) UpdateCourse(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid course id")
		return
	}

	var req dto.CourseRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	course, err := ctrl.Repository.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Course not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to load course %s: %v", id, err)
		utils.JSON500(c, "Failed to load course")
		return
	}

	course.Name = req.Name
	if err := ctrl.Repository.CourseRepo.Update(course); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to update course %s: %v", id, err)
		utils.JSON500(c, "Failed to update course")
		return
	}

	utils.JSON200(c, gin.H{"course": course})
}

func (ctrl *Controller) DeleteCourse(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid course id")
		return
	}

	if _, err := ctrl.Repository.CourseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Course not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to load course %s: %v", id, err)
		utils.JSON500(c, "Failed to load course")
		return
	}

	if err := ctrl.Repository.CourseRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to delete course %s: %v", id, err)
		utils.JSON500(c, "Failed to delete course")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Catalog] Deleted course %s", id)
	utils.JSON200(c, gin.H{"message": "Course deleted"})
}

func (ctrl *Controller) CreateProvider(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ProviderRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	exists, err := ctrl.Repository.ProviderRepo.ExistsByName(req.Name)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to check provider name: %v", err)
		utils.JSON500(c, "Failed to check provider name")
		return
	}
	if exists {
		utils.JSON409(c, "Provider with this name already exists")
		return
	}

	provider := &entity.Provider{ID: uuid.New(), Name: req.Name, Phone: req.Phone}
	if err := ctrl.Repository.ProviderRepo.Create(provider); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to create provider: %v", err)
		utils.JSON500(c, "Failed to create provider")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Catalog] Created provider %s '%s'", provider.ID, provider.Name)
	utils.JSON201(c, gin.H{"provider": provider})
}

func (ctrl *Controller) ListProviders(c *gin.Context) {
	ctx := c.Request.Context()

	providers, err := ctrl.Repository.ProviderRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to list providers: %v", err)
		utils.JSON500(c, "Failed to list providers")
		return
	}
	utils.JSON200(c, gin.H{"providers": providers})
}

func (ctrl *Controller) UpdateProvider(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid provider id")
		return
	}

	var req dto.ProviderRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	provider, err := ctrl.Repository.ProviderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Provider not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to load provider %s: %v", id, err)
		utils.JSON500(c, "Failed to load provider")
		return
	}

	provider.Name = req.Name
	provider.Phone = req.Phone
	if err := ctrl.Repository.ProviderRepo.Update(provider); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to update provider %s: %v", id, err)
		utils.JSON500(c, "Failed to update provider")
		return
	}

	utils.JSON200(c, gin.H{"provider": provider})
}

func (ctrl *Controller) DeleteProvider(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid provider id")
		return
	}

	if _, err := ctrl.Repository.ProviderRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Provider not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to load provider %s: %v", id, err)
		utils.JSON500(c, "Failed to load provider")
		return
	}

	if err := ctrl.Repository.ProviderRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to delete provider %s: %v", id, err)
		utils.JSON500(c, "Failed to delete provider")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Catalog] Deleted provider %s", id)
	utils.JSON200(c, gin.H{"message": "Provider deleted"})
}

func (ctrl *Controller) CreatePeriod(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.PeriodRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	exists, err := ctrl.Repository.PeriodRepo.ExistsByName(req.Name)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to check period name: %v", err)
		utils.JSON500(c, "Failed to check period name")
		return
	}
	if exists {
		utils.JSON409(c, "Period with this name already exists")
		return
	}

	period := &entity.Period{ID: uuid.New(), Name: req.Name}
	if err := ctrl.Repository.PeriodRepo.Create(period); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to create period: %v", err)
		utils.JSON500(c, "Failed to create period")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Catalog] Created period %s '%s'", period.ID, period.Name)
	utils.JSON201(c, gin.H{"period": period})
}

func (ctrl *Controller) ListPeriods(c *gin.Context) {
	ctx := c.Request.Context()

	periods, err := ctrl.Repository.PeriodRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to list periods: %v", err)
		utils.JSON500(c, "Failed to list periods")
		return
	}
	utils.JSON200(c, gin.H{"periods": periods})
}

func (ctrl *Controller) UpdatePeriod(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid period id")
		return
	}

	var req dto.PeriodRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	period, err := ctrl.Repository.PeriodRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Period not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to load period %s: %v", id, err)
		utils.JSON500(c, "Failed to load period")
		return
	}

	period.Name = req.Name
	if err := ctrl.Repository.PeriodRepo.Update(period); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to update period %s: %v", id, err)
		utils.JSON500(c, "Failed to update period")
		return
	}

	utils.JSON200(c, gin.H{"period": period})
}

func (ctrl *Controller) DeletePeriod(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid period id")
		return
	}

	if _, err := ctrl.Repository.PeriodRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Period not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to load period %s: %v", id, err)
		utils.JSON500(c, "Failed to load period")
		return
	}

	if err := ctrl.Repository.PeriodRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Catalog] Failed to delete period %s: %v", id, err)
		utils.JSON500(c, "Failed to delete period")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Catalog] Deleted period %s", id)
	utils.JSON200(c, gin.H{"message": "Period deleted"})
}
