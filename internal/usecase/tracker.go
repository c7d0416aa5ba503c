package usecase

import "sync"

// tracker runs fire-and-forget work on goroutines while keeping them waitable,
// so shutdown (and tests) can drain in-flight updates.
type tracker struct {
	wg sync.WaitGroup
}

func (t *tracker) Go(fn func()) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		fn()
	}()
}

func (t *tracker) Wait() {
	t.wg.Wait()
}
