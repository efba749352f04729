package routes

import (
	"context"
	"log"
	"strconv"

	_ "plotsite/docs" // registers the swagger template
	"plotsite/internal/adapter/http/handlers"
	"plotsite/internal/infrastructure/bootstrap"
	"plotsite/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run loads the configuration, wires the use cases and serves the API until
// the process exits.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	c, err := bootstrap.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to wire the application: %v", err)
	}
	defer c.Close()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	router := NewRouter(c)

	log.Printf("[http][routes] listening port=%d catalog=%s inquiry_store=%s notifier=%s",
		cfg.Port, cfg.CatalogSource, cfg.InquiryStore, cfg.Notifier)
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(c *bootstrap.Container) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	parcelHandler := handlers.NewParcelHandler(c.Catalog)
	layoutHandler := handlers.NewLayoutHandler(c.Layout, c.Selection)
	sessionHandler := handlers.NewSessionHandler(c.Selection)
	inquiryHandler := handlers.NewInquiryHandler(c.Inquiry, c.Selection)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPlotRoutes(v1, parcelHandler, layoutHandler)
	addVisitorRoutes(v1, sessionHandler, inquiryHandler)
	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
