package feedback

import (
	"context"
	"fmt"
	"log"
	"time"

	"promo_go/models"
	"promo_go/pkg/common"
	"promo_go/pkg/instagram"
)

// Pipeline выполняет один проход сбора обратной связи:
// выборка постов → метрики → запись обратной связи → слияние агрегатов.
// Между запусками состояние не сохраняется, запуск можно повторять.
type Pipeline struct {
	store    Store
	provider instagram.Provider
	opts     Options
}

// Options — настройки запуска, передаются явно при создании пайплайна,
// чтобы тесты подставляли свои значения без обращения к окружению.
type Options struct {
	Mode       models.SelectionMode // критерий выборки постов
	BatchLimit int                  // потолок постов за запуск
	Lookback   time.Duration        // окно давности для режима SelectRecent
	Throttle   time.Duration        // пауза между обращениями к провайдеру
	Weights    ScoreWeights         // правило расчёта оценки поста
}

// NewPipeline собирает пайплайн с защитными значениями по умолчанию.
func NewPipeline(store Store, provider instagram.Provider, opts Options) *Pipeline {
	if !opts.Mode.Valid() {
		opts.Mode = models.SelectUncollected
	}
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = 50
	}
	if opts.Lookback <= 0 {
		opts.Lookback = 7 * 24 * time.Hour
	}
	if opts.Weights == (ScoreWeights{}) {
		opts.Weights = DefaultWeights
	}
	return &Pipeline{store: store, provider: provider, opts: opts}
}

// Run обрабатывает одну партию постов и возвращает сводку запуска.
// limit <= 0 означает потолок из настроек. Фатальна только ошибка выборки:
// сбои по отдельным постам логируются и не прерывают партию.
func (p *Pipeline) Run(ctx context.Context, limit int) (models.RunSummary, error) {
	if limit <= 0 {
		limit = p.opts.BatchLimit
	}

	posts, err := p.store.ListEligiblePosts(p.opts.Mode, limit, p.opts.Lookback)
	if err != nil {
		// Без списка постов запуск не имеет смысла — единственная фатальная ветка.
		return models.RunSummary{}, fmt.Errorf("выборка постов для сбора: %w", err)
	}

	summary := models.RunSummary{Attempted: len(posts)}
	totals := newBatchTotals()

	for i, post := range posts {
		// Пауза между вызовами провайдера, чтобы не упереться в лимиты Graph API.
		// Ожидание отменяемое: остановка сервера не зависает на троттлинге.
		if i > 0 && p.opts.Throttle > 0 {
			if err := common.WaitWithCancellation(ctx, p.opts.Throttle); err != nil {
				return summary, err
			}
		}

		metrics, err := p.provider.FetchMetrics(ctx, post.ExternalMediaID)
		if err != nil {
			// Метрики недоступны — подставляем заглушку и идём дальше:
			// один недоступный пост не должен останавливать партию.
			log.Printf("[FEEDBACK] пост %d: метрики недоступны, подставлена заглушка: %v", post.ID, err)
			metrics = instagram.StubMetrics()
		}

		fb := models.PostFeedback{
			PostID:          post.ID,
			Channel:         post.Channel,
			ExternalMediaID: post.ExternalMediaID,
			Metrics:         metrics,
			CollectedAt:     time.Now().UTC(),
		}
		if err := p.store.UpsertFeedback(fb); err != nil {
			// Обратная связь не записана — агрегаты не трогаем,
			// иначе оценка попадёт в итоги без подтверждённой записи.
			log.Printf("[FEEDBACK] пост %d: сохранение обратной связи: %v", post.ID, err)
			summary.Failed++
			continue
		}

		owner, err := p.store.GetPostOwner(post.ID)
		if err != nil {
			// Запись обратной связи уже сохранена и остаётся,
			// но без владельца раскладывать оценку по агрегатам некуда.
			log.Printf("[FEEDBACK] пост %d: поиск владельца: %v", post.ID, err)
			summary.Failed++
			continue
		}

		impressions := 0
		if metrics.Impressions != nil {
			impressions = *metrics.Impressions
		}
		totals.add(*owner, p.opts.Weights.PerformanceScore(metrics.LikeCount, metrics.CommentCount), impressions)
		summary.Collected++
	}

	// Итоги партии вливаются одним upsert на продукт и одним на пару стиль+канал.
	for productID, score := range totals.products {
		if err := p.store.UpsertProductScore(productID, score, EMAPrevWeight, EMAObsWeight); err != nil {
			log.Printf("[FEEDBACK] продукт %d: слияние оценки: %v", productID, err)
		}
	}
	for key, delta := range totals.styles {
		if err := p.store.UpsertStyleTotals(key.Style, key.Channel, delta.Impressions, delta.PerfScore); err != nil {
			log.Printf("[FEEDBACK] стиль %s/%s: слияние итогов: %v", key.Style, key.Channel, err)
		}
	}

	log.Printf("[FEEDBACK] запуск завершён: выбрано %d, учтено %d, пропущено %d",
		summary.Attempted, summary.Collected, summary.Failed)
	return summary, nil
}
