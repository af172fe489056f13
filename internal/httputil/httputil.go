package httputil

import "github.com/gin-gonic/gin"

// RespondError отправляет ошибку в едином формате {"error": msg} и прекращает обработку.
// AbortWithStatusJSON гарантирует, что следующие обработчики цепочки не выполнятся.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
