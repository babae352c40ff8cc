//go:build !unix

package termview

import (
	"os"
	"sync"
)

// input reads with blocking calls. The reader goroutine ends on the next
// key stroke after stop.
type input struct {
	f       *os.File
	stopCh  chan struct{}
	stopped sync.Once
}

func newInput(f *os.File) (*input, error) {
	return &input{f: f, stopCh: make(chan struct{})}, nil
}

func (in *input) read(handle func([]byte) bool) {
	buf := make([]byte, 16)
	for {
		n, err := in.f.Read(buf)
		select {
		case <-in.stopCh:
			return
		default:
		}
		if n > 0 && !handle(buf[:n]) {
			return
		}
		if err != nil {
			return
		}
	}
}

func (in *input) stop() {
	in.stopped.Do(func() {
		close(in.stopCh)
	})
}
