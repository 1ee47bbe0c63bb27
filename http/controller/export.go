package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghrc19/Hed-System/export"
	"github.com/ghrc19/Hed-System/listing"
	"github.com/ghrc19/Hed-System/utils"
)

// exportCriteria extends the list-view criteria with the dashboard filters:
// the year always applies and defaults to the current year, and categories
// may arrive as a comma-separated set.
func exportCriteria(c *gin.Context, now time.Time) listing.Criteria {
	criteria := listCriteria(c)

	year, err := strconv.Atoi(c.Query("anio"))
	if err != nil || year <= 0 {
		year = now.Year()
	}
	criteria.Year = year

	if raw := c.Query("tipos"); raw != "" {
		criteria.Categories = strings.Split(raw, ",")
	}
	return criteria
}

// ExportJobs streams the filtered, ordered subset as a PDF or XLSX report
// and archives a copy when the report bucket is available.
func (ctrl *Controller) ExportJobs(c *gin.Context) {
	ctx := c.Request.Context()

	format := c.DefaultQuery("format", "pdf")
	if format != "pdf" && format != "xlsx" {
		utils.JSON400(c, "Unsupported export format")
		return
	}

	criteria := exportCriteria(c, time.Now())
	ordered, err := ctrl.filteredJobs(c, criteria)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Export] Failed to collect jobs: %v", err)
		utils.JSON500(c, "Failed to collect jobs for export")
		return
	}

	report := export.NewReport(ordered, export.Filters{
		Provider: criteria.Provider,
		Category: criteria.Category,
		Month:    criteria.Month,
		Year:     criteria.Year,
	})

	var data []byte
	switch format {
	case "xlsx":
		data, err = report.XLSX()
	default:
		data, err = report.PDF()
	}
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Export] Failed to render %s report: %v", format, err)
		utils.JSON500(c, "Failed to render report")
		return
	}

	fileName := export.FileName(criteria.Provider, format, time.Now())

	// Best effort: an archive failure must not break the download.
	if ctrl.Infra.Minio != nil {
		if err := ctrl.Infra.Minio.ArchiveReport(ctx, fileName, data, export.ContentType(format)); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Export] Failed to archive report %s: %v", fileName, err)
		}
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Export] Exported %d jobs as %s", len(ordered), fileName)
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(200, export.ContentType(format), data)
}
