package future

// Promise/Future is a one-shot channel-backed handoff between a producer
// and a consumer, used by store/blockstore's background write worker to
// let callers fire off a write and later wait for its outcome —
// the same shape database/flat.State uses internally (commands channel in,
// future.Promise[common.Hash] out) to let block application run ahead of
// commitment hashing.
type Future[T any] struct {
	ch <-chan Result[T]
}

type Promise[T any] struct {
	ch chan<- Result[T]
}

// Create returns a connected Promise/Future pair. Fulfill may be called at
// most once; Await blocks until it is.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan Result[T], 1)
	return Promise[T]{ch: ch}, Future[T]{ch: ch}
}

func (p Promise[T]) Fulfill(result Result[T]) {
	p.ch <- result
}

// Await blocks until the promise is fulfilled and returns its result.
func (f Future[T]) Await() (T, error) {
	return (<-f.ch).Get()
}
