package models

import "time"

// ProductPerformance — скользящая оценка продукта.
// Обновляется EMA-слиянием (см. pkg/feedback): свежие наблюдения весят меньше
// накопленной истории, запись создаётся при первом наблюдении и не удаляется.
type ProductPerformance struct {
	ProductID   int       `json:"product_id"`
	PerfScore   float64   `json:"perf_score"`
	LastUpdated time.Time `json:"last_updated"`
}

// StylePerformance — накопительные итоги по составному ключу стиль+канал.
// impressions и perf_score только растут, engagement пересчитывается при каждом слиянии
// как perf_score/impressions (0 при нулевых показах — это определённый случай, не ошибка).
type StylePerformance struct {
	Style       string    `json:"style"`
	Channel     string    `json:"channel"`
	Impressions int       `json:"impressions"`
	PerfScore   float64   `json:"perf_score"`
	Engagement  float64   `json:"engagement"`
	LastUpdated time.Time `json:"last_updated"`
}
