package feedback

import (
	"context"
	"log"
	"time"

	collect "promo_go/pkg/feedback"
)

// batchDeadline ограничивает длительность одного фонового прохода,
// чтобы зависший провайдер не блокировал следующие запуски.
const batchDeadline = 15 * time.Minute

// StartBackgroundCollection запускает бесконечный цикл периодического сбора метрик.
// Интервал задаётся конфигурацией; неположительный интервал отключает цикл.
// Ошибки запуска логируются, цикл продолжает работать до остановки процесса.
func StartBackgroundCollection(p *collect.Pipeline, every time.Duration) {
	if every <= 0 {
		return
	}
	go func() {
		for {
			time.Sleep(every)
			ctx, cancel := context.WithTimeout(context.Background(), batchDeadline)
			summary, err := p.Run(ctx, 0)
			cancel()
			if err != nil {
				log.Printf("[FEEDBACK SCHEDULER] фоновый сбор: %v", err)
				continue
			}
			log.Printf("[FEEDBACK SCHEDULER] выбрано %d, учтено %d, пропущено %d",
				summary.Attempted, summary.Collected, summary.Failed)
		}
	}()
}
