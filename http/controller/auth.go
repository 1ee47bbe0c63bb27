package controller

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ghrc19/Hed-System/http/controller/dto"
	"github.com/ghrc19/Hed-System/utils"
)

func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Login attempt for unknown email: %s", req.Email)
			utils.JSON401(c, "Invalid email or password")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to look up user: %v", err)
		utils.JSON500(c, "Failed to look up user")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Wrong password for user: %s", req.Email)
		utils.JSON401(c, "Invalid email or password")
		return
	}

	token, sessionID, err := utils.GenerateToken(user.ID, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to sign token: %v", err)
		utils.JSON500(c, "Failed to create session")
		return
	}

	ttl := time.Duration(ctrl.Config.EnvConfig.JWT.Expire) * time.Second
	if err := ctrl.Infra.Redis.SetSession(ctx, sessionID, user.ID.String(), ttl); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to store session: %v", err)
		utils.JSON500(c, "Failed to create session")
		return
	}

	c.SetCookie("access_token", token, ctrl.Config.EnvConfig.JWT.Expire, "/", "", false, true)

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] User logged in: %s", user.ID)
	utils.JSON200(c, gin.H{
		"token": token,
		"user":  user,
	})
}

func (ctrl *Controller) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.GetString("session_id")
	if sessionID != "" {
		if err := ctrl.Infra.Redis.DeleteSession(ctx, sessionID); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to revoke session: %v", err)
			utils.JSON500(c, "Failed to log out")
			return
		}
	}

	// Active selections live for the session only.
	if userID, err := utils.GetUserIDFromContext(c); err == nil {
		if err := ctrl.Infra.Redis.ClearActiveSelection(ctx, userID.String()); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Failed to clear active selections: %v", err)
		}
	}

	c.SetCookie("access_token", "", -1, "/", "", false, true)
	utils.JSON200(c, gin.H{"message": "Logged out"})
}

func (ctrl *Controller) Me(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.JSON401(c, "Unauthorized")
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "User not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to load user: %v", err)
		utils.JSON500(c, "Failed to load user")
		return
	}

	utils.JSON200(c, gin.H{"user": user})
}
