package feedback

import (
	"log"

	collect "promo_go/pkg/feedback"
	"promo_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, p *collect.Pipeline, db *storage.DB) {
	handler := NewHandler(p, db)
	r.POST("/collect", handler.Collect)
	r.GET("/product/:id", handler.ProductPerformance)
	r.GET("/style", handler.StylePerformance)
	log.Printf("[ROUTER] Feedback routes registered")
}
