package feedback

import (
	"time"

	"promo_go/models"
)

// Store — граница хранилища обратной связи.
// Боевая реализация живёт в pkg/storage поверх Postgres,
// тесты пайплайна подставляют хранилище в памяти.
type Store interface {
	// ListEligiblePosts возвращает посты для сбора метрик по выбранному режиму,
	// не больше limit штук. window учитывается только в режиме SelectRecent.
	ListEligiblePosts(mode models.SelectionMode, limit int, window time.Duration) ([]models.PublishedPost, error)

	// GetPostOwner находит продукт и пару стиль+канал поста.
	GetPostOwner(postID int) (*models.PostOwner, error)

	// UpsertFeedback сохраняет запись обратной связи с ключом post_id:
	// повторный сбор перезаписывает метрики и collected_at, а не плодит строки.
	UpsertFeedback(fb models.PostFeedback) error

	// UpsertProductScore атомарно вливает наблюдение в оценку продукта по EMA
	// с переданными весами. Отсутствующая запись создаётся со значением observed.
	UpsertProductScore(productID int, observed, prevWeight, obsWeight float64) error

	// UpsertStyleTotals атомарно дописывает показы и оценку к итогам пары
	// стиль+канал и пересчитывает engagement.
	UpsertStyleTotals(style, channel string, impressions int, perfScore float64) error
}
