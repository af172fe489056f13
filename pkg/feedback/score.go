package feedback

// score.go содержит расчёт оценки поста и две политики слияния агрегатов.
// Политики намеренно разные: продукт сглаживается EMA, стиль накапливается суммой.
// Это расхождение зафиксировано как осознанный выбор — не объединять без решения
// владельца продукта, долгосрочные значения у политик разные.

// Именованная политика слияния продукта: EMA 70/30.
// Предыдущее значение весит emaPrevWeight, новое наблюдение — emaObsWeight.
const (
	EMAPrevWeight = 0.7
	EMAObsWeight  = 0.3
)

// ScoreWeights задаёт веса вовлечённости для расчёта оценки поста.
// Вынесено в структуру, чтобы бизнес-правило можно было заменить, не трогая пайплайн.
type ScoreWeights struct {
	CommentWeight float64 // во сколько раз комментарий ценнее лайка
}

// DefaultWeights — действующее правило: комментарий стоит двух лайков.
var DefaultWeights = ScoreWeights{CommentWeight: 2}

// PerformanceScore считает оценку поста по сырым счётчикам вовлечённости.
// Чистая функция без побочных эффектов: likes + CommentWeight*comments.
func (w ScoreWeights) PerformanceScore(likeCount, commentCount int) float64 {
	return float64(likeCount) + w.CommentWeight*float64(commentCount)
}

// MergeProductScore применяет EMA 70/30 к оценке продукта.
// При отсутствии предыдущего значения наблюдение берётся как есть.
func MergeProductScore(previous *float64, observation float64) float64 {
	if previous == nil {
		return observation
	}
	return *previous*EMAPrevWeight + observation*EMAObsWeight
}

// StyleTotals — итоги по паре стиль+канал после слияния.
type StyleTotals struct {
	Impressions int
	PerfScore   float64
	Engagement  float64
}

// MergeStyleTotals применяет аддитивную политику к итогам стиля:
// показы и оценка складываются, engagement пересчитывается заново.
// Нулевые суммарные показы дают engagement = 0, деления на ноль не происходит.
func MergeStyleTotals(previous *StyleTotals, impressions int, perfScore float64) StyleTotals {
	merged := StyleTotals{Impressions: impressions, PerfScore: perfScore}
	if previous != nil {
		merged.Impressions += previous.Impressions
		merged.PerfScore += previous.PerfScore
	}
	if merged.Impressions > 0 {
		merged.Engagement = merged.PerfScore / float64(merged.Impressions)
	}
	return merged
}
