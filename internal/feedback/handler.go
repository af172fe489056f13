package feedback

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"promo_go/internal/httputil"
	collect "promo_go/pkg/feedback"
	"promo_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

// Handler обслуживает HTTP-запросы сбора обратной связи и чтения агрегатов.
type Handler struct {
	Pipeline *collect.Pipeline
	DB       *storage.DB
}

// NewHandler создаёт обработчик поверх готового пайплайна и хранилища.
func NewHandler(p *collect.Pipeline, db *storage.DB) *Handler {
	return &Handler{Pipeline: p, DB: db}
}

// Collect запускает один проход сбора метрик.
// Тело запроса опционально: {"limit": N} ограничивает размер партии.
func (h *Handler) Collect(c *gin.Context) {
	var req struct {
		Limit int `json:"limit"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	summary, err := h.Pipeline.Run(c.Request.Context(), req.Limit)
	if err != nil {
		log.Printf("[HANDLER ERROR] сбор обратной связи: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось выполнить сбор метрик")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ProductPerformance отдаёт текущую оценку продукта.
func (h *Handler) ProductPerformance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "некорректный идентификатор продукта")
		return
	}

	perf, err := h.DB.GetProductPerformance(id)
	if errors.Is(err, sql.ErrNoRows) {
		httputil.RespondError(c, http.StatusNotFound, "по продукту ещё нет наблюдений")
		return
	}
	if err != nil {
		log.Printf("[HANDLER ERROR] чтение оценки продукта %d: %v", id, err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось прочитать оценку продукта")
		return
	}
	c.JSON(http.StatusOK, perf)
}

// StylePerformance отдаёт накопленные итоги пары стиль+канал.
// Оба параметра запроса обязательны: ключ агрегата составной.
func (h *Handler) StylePerformance(c *gin.Context) {
	style := c.Query("style")
	channel := c.Query("channel")
	if style == "" || channel == "" {
		httputil.RespondError(c, http.StatusBadRequest, "нужны параметры style и channel")
		return
	}

	perf, err := h.DB.GetStylePerformance(style, channel)
	if errors.Is(err, sql.ErrNoRows) {
		httputil.RespondError(c, http.StatusNotFound, "по паре стиль+канал ещё нет наблюдений")
		return
	}
	if err != nil {
		log.Printf("[HANDLER ERROR] чтение итогов стиля %s/%s: %v", style, channel, err)
		httputil.RespondError(c, http.StatusInternalServerError, "не удалось прочитать итоги стиля")
		return
	}
	c.JSON(http.StatusOK, perf)
}
