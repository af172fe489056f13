package models

// SelectionMode определяет критерий выборки постов для сбора метрик.
// Режимы дают разные наборы постов и намеренно не комбинируются:
// выбор фиксируется конфигурацией, а не смешивается в одном запросе.
type SelectionMode string

const (
	// SelectUncollected — посты, по которым ещё нет записи обратной связи.
	// Повторный запуск не трогает уже собранные посты, поэтому агрегаты не задваиваются.
	SelectUncollected SelectionMode = "uncollected"
	// SelectRecent — посты, опубликованные внутри окна давности и имеющие external_media_id.
	// Повторный запуск пересобирает метрики и монотонно дописывает агрегаты.
	SelectRecent SelectionMode = "recent"
)

// Valid сообщает, известен ли режим выборки.
func (m SelectionMode) Valid() bool {
	return m == SelectUncollected || m == SelectRecent
}
