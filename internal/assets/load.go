package assets

import (
	"fmt"
	"os"
)

// Result is the outcome of an asynchronous asset read.
type Result struct {
	Path string
	Data []byte
	Err  error
}

// LoadAsync resolves search with l and reads the file on a background goroutine.
// The returned channel delivers exactly one Result and is then closed. Poll it from the frame loop with a
// non-blocking select; GPU uploads of the bytes must stay on the main thread.
func (l Locator) LoadAsync(k Kind, search string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		path, err := l.Find(k, search)
		if err != nil {
			ch <- Result{Err: err}
			return
		}
		data, err := os.ReadFile(path)
		if err != nil {
			ch <- Result{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
			return
		}
		ch <- Result{Path: path, Data: data}
	}()
	return ch
}

// Poll returns the result if ch has delivered one, without blocking.
func Poll(ch <-chan Result) (Result, bool) {
	select {
	case r, ok := <-ch:
		return r, ok
	default:
		return Result{}, false
	}
}
