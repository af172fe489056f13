package main

import (
	"database/sql"
	"log"

	"promo_go/internal/config"
	feedbackroutes "promo_go/internal/feedback"
	collect "promo_go/pkg/feedback"
	"promo_go/pkg/instagram"
	"promo_go/pkg/storage"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	// Инициализация подключения к БД
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	// Проверка подключения
	if err := dbConn.Ping(); err != nil {
		log.Fatalf("Database ping failed: %v", err)
	}

	db := storage.NewDB(dbConn)

	// Провайдер метрик: без токена работает заглушка, сетевых вызовов нет.
	provider := instagram.NewProvider(cfg.GraphHost, cfg.APIVersion, cfg.AccessToken)

	pipeline := collect.NewPipeline(db, provider, collect.Options{
		Mode:       cfg.SelectionMode,
		BatchLimit: cfg.BatchLimit,
		Lookback:   cfg.Lookback,
		Throttle:   cfg.Throttle,
		Weights:    collect.DefaultWeights,
	})

	// Фоновый периодический сбор, если включён конфигурацией.
	feedbackroutes.StartBackgroundCollection(pipeline, cfg.CollectEvery)

	// Настройка роутера
	r := setupRouter(pipeline, db)

	// Запуск сервера
	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// Настройка маршрутов
func setupRouter(pipeline *collect.Pipeline, db *storage.DB) *gin.Engine {
	r := gin.Default()

	// Группа роутов сбора обратной связи и чтения агрегатов
	feedbackGroup := r.Group("/feedback")
	feedbackroutes.SetupRoutes(feedbackGroup, pipeline, db)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Логирование зарегистрированных роутов
	log.Printf("[ROUTER] Routes initialized:")
	log.Printf("[ROUTER] POST /feedback/collect")
	log.Printf("[ROUTER] GET /feedback/product/:id")
	log.Printf("[ROUTER] GET /feedback/style")
	log.Printf("[ROUTER] GET /health")

	return r
}
