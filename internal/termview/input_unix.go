//go:build unix

package termview

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// input polls a non-blocking file descriptor so that stop does not have to
// wait for the next key stroke.
type input struct {
	fd      int
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
}

func newInput(f *os.File) (*input, error) {
	fd := int(f.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, fmt.Errorf("setting nonblocking stdin: %w", err)
	}
	return &input{
		fd:     fd,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}, nil
}

// read passes received bytes to handle until handle returns false or stop
// is called.
func (in *input) read(handle func([]byte) bool) {
	defer close(in.done)
	buf := make([]byte, 16)

	for {
		select {
		case <-in.stopCh:
			return
		default:
		}

		n, err := unix.Read(in.fd, buf)
		if n > 0 && !handle(buf[:n]) {
			return
		}
		if err == unix.EAGAIN || err == unix.EINTR {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

func (in *input) stop() {
	in.stopped.Do(func() {
		close(in.stopCh)
	})
	<-in.done
	_ = unix.SetNonblock(in.fd, false)
}
