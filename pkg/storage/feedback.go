package storage

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"promo_go/models"
)

// ListEligiblePosts возвращает посты, подлежащие сбору метрик, не больше limit штук.
// Режим uncollected берёт посты без записи обратной связи, режим recent —
// опубликованные внутри окна давности. Критерии не комбинируются.
// В обоих режимах пост обязан иметь непустой external_media_id.
func (db *DB) ListEligiblePosts(mode models.SelectionMode, limit int, window time.Duration) ([]models.PublishedPost, error) {
	var (
		rows *sql.Rows
		err  error
	)
	switch mode {
	case models.SelectRecent:
		since := time.Now().UTC().Add(-window)
		rows, err = db.Conn.Query(`
                        SELECT p.id, p.product_id, p.channel, p.external_media_id, p.published_at
                        FROM published_post p
                        WHERE p.external_media_id IS NOT NULL AND p.external_media_id <> ''
                          AND p.published_at >= $2
                        ORDER BY p.published_at DESC
                        LIMIT $1`, limit, since)
	case models.SelectUncollected:
		rows, err = db.Conn.Query(`
                        SELECT p.id, p.product_id, p.channel, p.external_media_id, p.published_at
                        FROM published_post p
                        LEFT JOIN post_feedback f ON f.post_id = p.id
                        WHERE p.external_media_id IS NOT NULL AND p.external_media_id <> ''
                          AND f.post_id IS NULL
                        ORDER BY p.published_at
                        LIMIT $1`, limit)
	default:
		return nil, fmt.Errorf("неизвестный режим выборки: %q", mode)
	}
	if err != nil {
		log.Printf("[DB ERROR] выборка постов для сбора: %v", err)
		return nil, err
	}
	defer rows.Close()

	var posts []models.PublishedPost
	for rows.Next() {
		var p models.PublishedPost
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Channel, &p.ExternalMediaID, &p.PublishedAt); err != nil {
			log.Printf("[DB WARN] чтение поста из выборки: %v", err)
			continue // Пропускаем проблемные записи
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Printf("[DB INFO] к сбору метрик выбрано %d постов (режим %s)", len(posts), mode)
	return posts, nil
}

// GetPostOwner находит продукт и пару стиль+канал для поста.
// Стиль хранится у продукта, канал — у самого поста, поэтому нужен join.
func (db *DB) GetPostOwner(postID int) (*models.PostOwner, error) {
	var owner models.PostOwner
	err := db.Conn.QueryRow(`
                SELECT p.product_id, pr.style, p.channel
                FROM published_post p
                JOIN product pr ON pr.id = p.product_id
                WHERE p.id = $1`, postID).
		Scan(&owner.ProductID, &owner.Style, &owner.Channel)
	if err != nil {
		return nil, err
	}
	return &owner, nil
}

// UpsertFeedback сохраняет запись обратной связи с ключом post_id.
// Повторный сбор по тому же посту перезаписывает метрики и collected_at,
// поэтому записей на пост всегда не больше одной.
func (db *DB) UpsertFeedback(fb models.PostFeedback) error {
	var permalink sql.NullString
	if fb.Metrics.Permalink != "" {
		permalink = sql.NullString{String: fb.Metrics.Permalink, Valid: true}
	}
	_, err := db.Conn.Exec(`
                INSERT INTO post_feedback (
                        post_id, channel, external_media_id,
                        like_count, comment_count, permalink, impressions, reach, collected_at
                ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                ON CONFLICT (post_id) DO UPDATE SET
                        channel = EXCLUDED.channel,
                        external_media_id = EXCLUDED.external_media_id,
                        like_count = EXCLUDED.like_count,
                        comment_count = EXCLUDED.comment_count,
                        permalink = EXCLUDED.permalink,
                        impressions = EXCLUDED.impressions,
                        reach = EXCLUDED.reach,
                        collected_at = EXCLUDED.collected_at`,
		fb.PostID, fb.Channel, fb.ExternalMediaID,
		fb.Metrics.LikeCount, fb.Metrics.CommentCount, permalink,
		fb.Metrics.Impressions, fb.Metrics.Reach, fb.CollectedAt,
	)
	if err != nil {
		log.Printf("[DB ERROR] сохранение обратной связи поста %d: %v", fb.PostID, err)
	}
	return err
}
