package async

// Errable runs fn in its own goroutine. The returned channel yields its
// error, nil included, and is then closed.
func Errable(fn func() error) <-chan error {
	ch := make(chan error, 1)
	go func() {
		ch <- fn()
		close(ch)
	}()
	return ch
}

// Collect waits for every channel and returns their errors in order.
func Collect(chans ...<-chan error) []error {
	errs := make([]error, len(chans))
	for i, ch := range chans {
		errs[i] = <-ch
	}
	return errs
}
