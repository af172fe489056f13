package feedback

import "promo_go/models"

// styleKey — составной ключ агрегата стиля: одна и та же пара стиль+канал
// всегда попадает в одну ячейку накопителя.
type styleKey struct {
	Style   string
	Channel string
}

// styleDelta — накопленные за запуск показы и оценка для одной пары стиль+канал.
type styleDelta struct {
	Impressions int
	PerfScore   float64
}

// batchTotals накапливает оценки постов одного запуска перед записью в БД.
// Внутри запуска слияние всегда аддитивное: несколько постов одного продукта
// складываются в одно наблюдение и дают один upsert, а не серию.
type batchTotals struct {
	products map[int]float64
	styles   map[styleKey]styleDelta
}

func newBatchTotals() *batchTotals {
	return &batchTotals{
		products: make(map[int]float64),
		styles:   make(map[styleKey]styleDelta),
	}
}

// add добавляет оценку поста в итоги его продукта и пары стиль+канал.
func (b *batchTotals) add(owner models.PostOwner, score float64, impressions int) {
	b.products[owner.ProductID] += score

	key := styleKey{Style: owner.Style, Channel: owner.Channel}
	delta := b.styles[key]
	delta.Impressions += impressions
	delta.PerfScore += score
	b.styles[key] = delta
}
