package controller

import (
	"github.com/ghrc19/Hed-System/config"
	"github.com/ghrc19/Hed-System/infra"
	"github.com/ghrc19/Hed-System/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	return &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
	}
}
