package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/urmzd/kodakam/pkg/api/handlers"
	"github.com/urmzd/kodakam/pkg/catalog"
	"github.com/urmzd/kodakam/pkg/device"
	"github.com/urmzd/kodakam/pkg/device/schema"
)

// Router holds the Gin engine and dependencies
type Router struct {
	engine     *gin.Engine
	controller device.Controller
	catalog    *catalog.Catalog
	validator  *schema.Validator
}

// NewRouter creates a new API router
func NewRouter(controller device.Controller, cat *catalog.Catalog, validator *schema.Validator) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	SetupMiddleware(engine)

	router := &Router{
		engine:     engine,
		controller: controller,
		catalog:    cat,
		validator:  validator,
	}

	router.setupRoutes()

	return router
}

// setupRoutes configures all API routes
func (r *Router) setupRoutes() {
	// Swagger UI
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})

	healthHandler := handlers.NewHealthHandler(r.catalog)
	r.engine.GET("/health", healthHandler.Health)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.engine.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)

		// Catalog and offline codec
		commandsHandler := handlers.NewCommandsHandler(r.catalog, r.validator)
		v1.GET("/tokens", commandsHandler.ListTokens)
		v1.POST("/decode", commandsHandler.Decode)
		commands := v1.Group("/commands")
		{
			commands.GET("", commandsHandler.ListCommands)
			commands.GET("/:key", commandsHandler.GetCommand)
			commands.POST("/:key/validate", commandsHandler.Validate)
			commands.POST("/:key/encode", commandsHandler.Encode)
		}

		// Live cameras
		camerasHandler := handlers.NewCamerasHandler(r.controller, r.catalog, r.validator)
		cameras := v1.Group("/cameras/:address")
		{
			cameras.GET("", camerasHandler.Probe)
			cameras.POST("/commands/:key", camerasHandler.Execute)
			cameras.POST("/sweep", camerasHandler.Sweep)
			cameras.GET("/sweep/events", camerasHandler.SweepEvents)
		}
	}
}

// Handler returns the underlying http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
