package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ghrc19/Hed-System/http/controller"
	middlewares "github.com/ghrc19/Hed-System/http/middleware"
)

func SetupRouter(ctrl *controller.Controller) *gin.Engine {
	r := gin.Default()
	middles, err := middlewares.NewMiddlewares(ctrl)
	if err != nil {
		panic(err)
	}

	r.Use(middles.CORSMiddleware)

	apiRoutes := r.Group("/api/v1")
	{
		apiRoutes.POST("/auth/login", ctrl.Login)

		authRoutes := apiRoutes.Group("/")
		authRoutes.Use(middles.AuthMiddleware)
		{
			authRoutes.POST("/auth/logout", ctrl.Logout)
			authRoutes.GET("/auth/me", ctrl.Me)

			jobRoutes := authRoutes.Group("/jobs")
			{
				jobRoutes.GET("/", ctrl.ListJobs)
				jobRoutes.POST("/", ctrl.CreateJob)
				jobRoutes.GET("/export", ctrl.ExportJobs)
				jobRoutes.PUT("/:id", ctrl.UpdateJob)
				jobRoutes.DELETE("/:id", ctrl.DeleteJob)
				jobRoutes.PATCH("/:id/toggle", ctrl.ToggleJob)
			}

			courseRoutes := authRoutes.Group("/courses")
			{
				courseRoutes.GET("/", ctrl.ListCourses)
				courseRoutes.POST("/", ctrl.CreateCourse)
				courseRoutes.PUT("/:id", ctrl.UpdateCourse)
				courseRoutes.DELETE("/:id", ctrl.DeleteCourse)
			}

			providerRoutes := authRoutes.Group("/providers")
			{
				providerRoutes.GET("/", ctrl.ListProviders)
				providerRoutes.POST("/", ctrl.CreateProvider)
				providerRoutes.PUT("/:id", ctrl.UpdateProvider)
				providerRoutes.DELETE("/:id", ctrl.DeleteProvider)
			}

			periodRoutes := authRoutes.Group("/periods")
			{
				periodRoutes.GET("/", ctrl.ListPeriods)
				periodRoutes.POST("/", ctrl.CreatePeriod)
				periodRoutes.PUT("/:id", ctrl.UpdatePeriod)
				periodRoutes.DELETE("/:id", ctrl.DeletePeriod)
			}

			authRoutes.GET("/dashboard", ctrl.Dashboard)

			selectionRoutes := authRoutes.Group("/selections")
			{
				selectionRoutes.GET("/", ctrl.GetSelections)
				selectionRoutes.PUT("/", ctrl.UpdateSelections)
				selectionRoutes.DELETE("/", ctrl.ClearSelections)
			}
		}
	}
	return r
}
