package models

import "time"

// PublishedPost фиксирует опубликованный промо-пост, созданный пайплайном публикации.
// Ядро сбора метрик читает эти записи и никогда их не изменяет.
// external_media_id обязателен: без него невозможно запросить метрики у Graph API.
type PublishedPost struct {
	ID              int       `json:"id"`
	ProductID       int       `json:"product_id"`
	Channel         string    `json:"channel"`
	ExternalMediaID string    `json:"external_media_id"`
	PublishedAt     time.Time `json:"published_at"`
}

// Metrics — снимок вовлечённости поста на момент сбора.
// После создания не изменяется; impressions и reach приходят не для всех типов медиа.
type Metrics struct {
	LikeCount    int    `json:"like_count"`
	CommentCount int    `json:"comment_count"`
	Permalink    string `json:"permalink,omitempty"`
	Impressions  *int   `json:"impressions,omitempty"`
	Reach        *int   `json:"reach,omitempty"`
}

// PostFeedback — результат сбора метрик по одному посту.
// На пост существует не более одной записи: повторный сбор перезаписывает её по post_id.
type PostFeedback struct {
	PostID          int       `json:"post_id"`
	Channel         string    `json:"channel"`
	ExternalMediaID string    `json:"external_media_id"`
	Metrics         Metrics   `json:"metrics"`
	CollectedAt     time.Time `json:"collected_at"`
}

// PostOwner — результат поиска владельца поста: продукт и пара стиль+канал,
// по которым раскладываются агрегаты.
type PostOwner struct {
	ProductID int    `json:"product_id"`
	Style     string `json:"style"`
	Channel   string `json:"channel"`
}

// RunSummary — итог одного запуска сбора.
// Attempted — сколько постов попало в выборку, Collected — по скольким метрики
// сохранены и учтены в агрегатах, Failed — по скольким агрегаты пропущены.
type RunSummary struct {
	Attempted int `json:"attempted"`
	Collected int `json:"collected"`
	Failed    int `json:"failed"`
}
