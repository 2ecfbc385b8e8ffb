package routes

import (
	_ "antenna_ops/docs" // generated by swag init
	"antenna_ops/internal/adapter/http/handlers"
	"antenna_ops/internal/adapter/http/middleware"
	"antenna_ops/internal/app"
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the engine with every /v1 route wired to the app's use cases.
func NewRouter(a *app.App) (*gin.Engine, error) {
	router := gin.New()
	if err := setMiddlewares(router, a.Config.Server.RateLimit); err != nil {
		return nil, err
	}

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, a)
	return router, nil
}

// Run serves the API until ctx ends, then shuts down gracefully.
func Run(ctx context.Context, a *app.App) error {
	router, err := NewRouter(a)
	if err != nil {
		return err
	}
	a.Start(ctx)

	srv := &http.Server{Addr: a.Config.Server.Addr, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[http][server] listening addr=%s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Printf("[http][server] shutting down")
	return srv.Shutdown(shutdownCtx)
}

func getRoutes(router *gin.Engine, a *app.App) {
	orderHandler := handlers.NewOrderHandler(a.Orders, a.Store, a.Renderer)
	contactHandler := handlers.NewContactHandler(a.Contacts)
	trainingHandler := handlers.NewTrainingHandler(a.Trainings, a.Store, a.Renderer)
	letterHandler := handlers.NewLetterHandler(a.Letters, a.Renderer)
	taskHandler := handlers.NewTaskHandler(a.Tasks, a.Store)
	productHandler := handlers.NewProductHandler(a.Products, a.Renderer)
	referenceHandler := handlers.NewReferenceHandler(a.MachineTypes)
	reportHandler := handlers.NewReportHandler(a.Store, a.Renderer, a.Config.App.RecentFilesLimit)
	reminderHandler := handlers.NewReminderHandler(a.Reminders, a.Store)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addContactRoutes(v1, contactHandler)
	addTrainingRoutes(v1, trainingHandler)
	addLetterRoutes(v1, letterHandler)
	addTaskRoutes(v1, taskHandler)
	addProductRoutes(v1, productHandler, referenceHandler)
	addReportRoutes(v1, reportHandler)
	addNotificationRoutes(v1, reminderHandler, a.Hub)
}

func setMiddlewares(router *gin.Engine, rateLimit string) error {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	if rateLimit == "" {
		return nil
	}
	limit, err := middleware.RateLimit(rateLimit)
	if err != nil {
		return err
	}
	router.Use(limit)
	return nil
}
