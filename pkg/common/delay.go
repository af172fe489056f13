package common

import (
	"context"
	"time"
)

// WaitWithCancellation выдерживает паузу и одновременно следит за контекстом,
// чтобы остановка сервера не ждала окончания троттлинга.
// Возвращает ошибку контекста — вызывающий код обрывает обработку выше по стеку.
func WaitWithCancellation(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
