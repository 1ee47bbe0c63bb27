package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ghrc19/Hed-System/listing"
	"github.com/ghrc19/Hed-System/stats"
	"github.com/ghrc19/Hed-System/utils"
)

const recentJobCount = 5

// Dashboard computes the summary cards, chart distributions and the recent
// activity list. Unlike the list view, the year filter always applies and
// defaults to the current year, and categories are a set.
func (ctrl *Controller) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	year, err := strconv.Atoi(c.Query("anio"))
	if err != nil || year <= 0 {
		year = time.Now().Year()
	}

	var categories []string
	if raw := c.Query("tipos"); raw != "" {
		categories = strings.Split(raw, ",")
	}

	criteria := listing.Criteria{
		Provider:   c.Query("proveedor"),
		Categories: categories,
		Period:     c.Query("periodo"),
		Month:      c.Query("mes"),
		Year:       year,
	}

	records, err := ctrl.Repository.JobRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Dashboard] Failed to load jobs: %v", err)
		utils.JSON500(c, "Failed to load jobs")
		return
	}

	filtered := listing.Filter(listing.FromEntities(records), criteria)
	summary := stats.Summarize(filtered)

	recent := listing.SortByStatus(filtered)
	if len(recent) > recentJobCount {
		recent = recent[:recentJobCount]
	}

	utils.JSON200(c, gin.H{
		"summary": summary,
		"recent":  recent,
		"year":    year,
	})
}
