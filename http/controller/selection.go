package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ghrc19/Hed-System/http/controller/dto"
	"github.com/ghrc19/Hed-System/utils"
)

// Active selections are the session-scoped defaults pre-filled into the new
// job form. They live in Redis for the duration of the session and never
// affect existing records.

func (ctrl *Controller) GetSelections(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	sel, err := ctrl.Infra.Redis.GetActiveSelection(ctx, userID.String())
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Selection] Failed to load active selections: %v", err)
		utils.JSON500(c, "Failed to load active selections")
		return
	}

	utils.JSON200(c, gin.H{"selection": sel})
}

func (ctrl *Controller) UpdateSelections(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	var req dto.SelectionRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload: "+err.Error())
		return
	}

	sel, err := ctrl.Infra.Redis.GetActiveSelection(ctx, userID.String())
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Selection] Failed to load active selections: %v", err)
		utils.JSON500(c, "Failed to load active selections")
		return
	}

	if req.PeriodID != nil {
		if *req.PeriodID != "" {
			periodID, err := uuid.Parse(*req.PeriodID)
			if err != nil {
				utils.JSON400(c, "Invalid period id")
				return
			}
			if _, err := ctrl.Repository.PeriodRepo.FindByID(periodID); err != nil {
				utils.JSON400(c, "Unknown period")
				return
			}
		}
		sel.PeriodID = *req.PeriodID
	}
	if req.Category != nil {
		sel.Category = *req.Category
	}

	if err := ctrl.Infra.Redis.SetActiveSelection(ctx, userID.String(), sel); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Selection] Failed to store active selections: %v", err)
		utils.JSON500(c, "Failed to store active selections")
		return
	}

	utils.JSON200(c, gin.H{"selection": sel})
}

func (ctrl *Controller) ClearSelections(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	if err := ctrl.Infra.Redis.ClearActiveSelection(ctx, userID.String()); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Selection] Failed to clear active selections: %v", err)
		utils.JSON500(c, "Failed to clear active selections")
		return
	}

	utils.JSON200(c, gin.H{"message": "Selections cleared"})
}
