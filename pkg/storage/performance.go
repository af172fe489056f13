package storage

import (
	"log"

	"promo_go/models"
)

// UpsertProductScore вливает наблюдение в оценку продукта.
// EMA выполняется внутри одного INSERT ... ON CONFLICT, поэтому конкурентные
// запуски сериализуются на уровне строки и не теряют обновления —
// чтения-изменения-записи на стороне приложения нет.
// Веса приходят параметрами из констант политики в pkg/feedback.
func (db *DB) UpsertProductScore(productID int, observed, prevWeight, obsWeight float64) error {
	_, err := db.Conn.Exec(`
                INSERT INTO product_performance (product_id, perf_score, last_updated)
                VALUES ($1, $2, NOW())
                ON CONFLICT (product_id) DO UPDATE SET
                        perf_score = product_performance.perf_score * $3 + EXCLUDED.perf_score * $4,
                        last_updated = NOW()`,
		productID, observed, prevWeight, obsWeight,
	)
	if err != nil {
		log.Printf("[DB ERROR] слияние оценки продукта %d: %v", productID, err)
	}
	return err
}

// UpsertStyleTotals дописывает показы и оценку к итогам пары стиль+канал.
// Слияние аддитивное и коммутативное, engagement пересчитывается в том же
// выражении: при нулевых суммарных показах остаётся 0, деления на ноль нет.
func (db *DB) UpsertStyleTotals(style, channel string, impressions int, perfScore float64) error {
	_, err := db.Conn.Exec(`
                INSERT INTO style_performance (style, channel, impressions, perf_score, engagement, last_updated)
                VALUES ($1, $2, $3, $4, CASE WHEN $3 > 0 THEN $4 / $3 ELSE 0 END, NOW())
                ON CONFLICT (style, channel) DO UPDATE SET
                        impressions = style_performance.impressions + EXCLUDED.impressions,
                        perf_score = style_performance.perf_score + EXCLUDED.perf_score,
                        engagement = CASE
                                WHEN style_performance.impressions + EXCLUDED.impressions > 0
                                THEN (style_performance.perf_score + EXCLUDED.perf_score)
                                     / (style_performance.impressions + EXCLUDED.impressions)
                                ELSE 0
                        END,
                        last_updated = NOW()`,
		style, channel, impressions, perfScore,
	)
	if err != nil {
		log.Printf("[DB ERROR] слияние итогов стиля %s/%s: %v", style, channel, err)
	}
	return err
}

// GetProductPerformance читает текущую оценку продукта.
// Отсутствие записи возвращается как sql.ErrNoRows без логирования:
// до первого наблюдения агрегата не существует, это штатная ситуация.
func (db *DB) GetProductPerformance(productID int) (*models.ProductPerformance, error) {
	var perf models.ProductPerformance
	err := db.Conn.QueryRow(`
                SELECT product_id, perf_score, last_updated
                FROM product_performance
                WHERE product_id = $1`, productID).
		Scan(&perf.ProductID, &perf.PerfScore, &perf.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &perf, nil
}

// GetStylePerformance читает накопленные итоги пары стиль+канал.
func (db *DB) GetStylePerformance(style, channel string) (*models.StylePerformance, error) {
	var perf models.StylePerformance
	err := db.Conn.QueryRow(`
                SELECT style, channel, impressions, perf_score, engagement, last_updated
                FROM style_performance
                WHERE style = $1 AND channel = $2`, style, channel).
		Scan(&perf.Style, &perf.Channel, &perf.Impressions, &perf.PerfScore, &perf.Engagement, &perf.LastUpdated)
	if err != nil {
		return nil, err
	}
	return &perf, nil
}
