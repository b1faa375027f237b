package pipe

import (
	"context"

	"github.com/eapache/queue"
	"github.com/ib-77/outcome/pkg/outcome"
)

// Buffer decouples a fast producer from a slow consumer with an unbounded
// in-order FIFO. Input is accepted as soon as it arrives; buffered results
// are flushed downstream even after the input closes.
func Buffer[T any](ctx context.Context, in <-chan outcome.Outcome[T]) <-chan outcome.Outcome[T] {
	out := make(chan outcome.Outcome[T])

	go func() {
		defer close(out)

		q := queue.New()
		inCh := in

		for {
			// a nil send channel keeps the send case disabled while empty
			var sendCh chan outcome.Outcome[T]
			var head outcome.Outcome[T]

			if q.Length() > 0 {
				sendCh = out
				head = q.Peek().(outcome.Outcome[T])
			} else if inCh == nil {
				return
			}

			select {
			case r, ok := <-inCh:
				if !ok {
					inCh = nil
					continue
				}
				q.Add(r)
			case sendCh <- head:
				q.Remove()
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
