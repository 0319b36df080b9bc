package notifier

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Notifier delivers formatted reports.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// WriterNotifier writes each message to an io.Writer, separated by a blank line.
type WriterNotifier struct {
	mu  sync.Mutex
	out io.Writer
}

func NewWriterNotifier(out io.Writer) *WriterNotifier {
	return &WriterNotifier{out: out}
}

func (w *WriterNotifier) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := fmt.Fprintln(w.out, text); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}
