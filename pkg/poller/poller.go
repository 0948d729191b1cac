// Package poller запускает периодическую задачу и возвращает handle для её остановки.
package poller

import (
	"context"
	"sync"
	"time"
)

// Handle управляет запущенной периодической задачей
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start вызывает fn сразу и затем каждые interval, пока не будет вызван Stop
// или не отменен ctx. Вызовы fn никогда не пересекаются.
func Start(ctx context.Context, interval time.Duration, fn func(ctx context.Context)) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			fn(ctx)

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			// Stop мог случиться одновременно с тиком
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return h
}

// Stop прекращает дальнейшие вызовы. Не ждет завершения вызова, который уже выполняется.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
}

// Done закрывается, когда цикл задачи завершился
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
