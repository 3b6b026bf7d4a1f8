package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"saddleworks-backend/internal/catalog"
	"saddleworks-backend/internal/config"
	"saddleworks-backend/internal/database"
	"saddleworks-backend/internal/handlers"
	"saddleworks-backend/internal/models"
	"saddleworks-backend/internal/repository"
	"saddleworks-backend/internal/service"
	"saddleworks-backend/internal/uploads"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetLevel(log.InfoLevel)

	var repo repository.OrderRepository
	if cfg.DatabaseURL != "" {
		migrator, err := database.NewMigrator(cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize migrator")
		}
		if err := migrator.Run(); err != nil {
			migrator.Close()
			log.WithError(err).Fatal("migration failed")
		}
		migrator.Close()

		pgRepo, err := repository.NewPostgresOrderRepository(cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("failed to initialize order repository")
		}
		defer pgRepo.Close()
		repo = pgRepo
		log.Info("using postgres order repository")
	} else {
		repo = repository.NewMemoryOrderRepository(repository.DemoOrders()...)
		log.Info("DATABASE_URL not set, orders are kept in memory")
	}

	uploadStore, err := uploads.NewStore(cfg.UploadDir)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize upload store")
	}

	cat := catalog.New()
	orderService := service.NewOrderService(cat, repo)

	saddlesHandler := handlers.NewSaddlesHandler(cat)
	ordersHandler := handlers.NewOrdersHandler(orderService, uploadStore)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api")
	api.GET("/saddles", saddlesHandler.ListSaddles)
	api.GET("/saddles/:id", saddlesHandler.GetSaddle)
	api.GET("/orders", ordersHandler.ListOrders)
	api.GET("/orders/:id", ordersHandler.GetOrder)
	api.POST("/orders", ordersHandler.CreateOrder)
	api.PUT("/orders/:id/status", ordersHandler.UpdateOrderStatus)

	// Everything else falls through to the built client bundle.
	router.NoRoute(staticHandler(cfg.StaticDir))

	log.WithFields(log.Fields{
		"port":        cfg.Port,
		"environment": cfg.Environment,
	}).Info("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}

// staticHandler serves the client build directory, falling back to
// index.html so client-side routes resolve. API paths never reach it with a
// 200; they get a JSON 404 instead.
func staticHandler(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			file := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
			index := filepath.Join(dir, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		c.JSON(http.StatusNotFound, models.ErrorResponse{Message: "Not found"})
	}
}
