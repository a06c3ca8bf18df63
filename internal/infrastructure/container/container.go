package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/scholarmatch/scholarship-backend/internal/config"
	"github.com/scholarmatch/scholarship-backend/internal/delivery/http"
	"github.com/scholarmatch/scholarship-backend/internal/delivery/http/handler"
	"github.com/scholarmatch/scholarship-backend/internal/infrastructure/database"
	"github.com/scholarmatch/scholarship-backend/internal/infrastructure/perplexity"
	"github.com/scholarmatch/scholarship-backend/internal/infrastructure/server"
	"github.com/scholarmatch/scholarship-backend/internal/repository/postgres"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/admin"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/essay"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/profile"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/resume"
	"github.com/scholarmatch/scholarship-backend/internal/usecase/search"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	DB         *sqlx.DB
	Perplexity *perplexity.Client
	Server     *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize AI client
	aiClient := perplexity.NewClient(&cfg.Perplexity)

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)

	// Initialize use cases
	searchUseCase := search.NewSearchUseCase(aiClient)
	profileUseCase := profile.NewProfileUseCase(profileRepo)
	essayUseCase := essay.NewEssayUseCase(profileRepo, aiClient)
	resumeUseCase := resume.NewResumeUseCase()
	adminUseCase := admin.NewAdminUseCase(profileRepo, cfg.Admin.PIN)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	essayHandler := handler.NewEssayHandler(essayUseCase)
	resumeHandler := handler.NewResumeHandler(resumeUseCase)
	adminHandler := handler.NewAdminHandler(adminUseCase)

	// Initialize router
	router := http.NewRouter(
		searchHandler,
		profileHandler,
		essayHandler,
		resumeHandler,
		adminHandler,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config:     cfg,
		DB:         db,
		Perplexity: aiClient,
		Server:     srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
