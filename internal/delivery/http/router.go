package http

import (
	"github.com/gin-gonic/gin"
	"github.com/scholarmatch/scholarship-backend/internal/delivery/http/handler"
)

type Router struct {
	searchHandler  *handler.SearchHandler
	profileHandler *handler.ProfileHandler
	essayHandler   *handler.EssayHandler
	resumeHandler  *handler.ResumeHandler
	adminHandler   *handler.AdminHandler
}

func NewRouter(
	searchHandler *handler.SearchHandler,
	profileHandler *handler.ProfileHandler,
	essayHandler *handler.EssayHandler,
	resumeHandler *handler.ResumeHandler,
	adminHandler *handler.AdminHandler,
) *Router {
	return &Router{
		searchHandler:  searchHandler,
		profileHandler: profileHandler,
		essayHandler:   essayHandler,
		resumeHandler:  resumeHandler,
		adminHandler:   adminHandler,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")
	{
		api.POST("/search", r.searchHandler.Search)
		api.POST("/save-profile", r.profileHandler.SaveProfile)
		api.POST("/write-essay", r.essayHandler.WriteEssay)
		api.POST("/upload-resume", r.resumeHandler.UploadResume)

		admin := api.Group("/admin")
		{
			admin.GET("/users", r.adminHandler.ListUsers)
			admin.POST("/promote", r.adminHandler.PromoteUser)
		}
	}

	return router
}
