// Package console is a local line-oriented channel for development: stdin
// lines become utterances, spoken dialog is printed to stdout.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"courier/internal/bus"
	"courier/internal/dialog"
	"go.uber.org/zap"
)

// LocalUser is the conversation key for the console channel.
const LocalUser = "local"

// Console bridges stdin/stdout onto the bus.
type Console struct {
	bus    *bus.Bus
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
	cancel context.CancelFunc
}

// New creates a console over the given reader and writer.
func New(b *bus.Bus, in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	return &Console{bus: b, in: in, out: out, logger: logger}
}

// Start begins reading utterances and printing spoken dialog.
func (c *Console) Start(ctx context.Context) {
	ctx, c.cancel = context.WithCancel(ctx)

	spoken, unsub := c.bus.Subscribe("speak.", 64)
	go func() {
		defer unsub()
		for {
			select {
			case evt := <-spoken:
				if s, ok := evt.Payload.(dialog.Spoken); ok {
					fmt.Fprintln(c.out, s.Text)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			c.bus.Publish(bus.Event{
				Kind:      "utterance.received",
				User:      LocalUser,
				Timestamp: time.Now(),
				Payload:   line,
			})
		}
		if err := scanner.Err(); err != nil {
			c.logger.Warn("console input closed", zap.Error(err))
		}
	}()
}

// Stop stops printing spoken dialog. The input goroutine exits when its
// reader is closed.
func (c *Console) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
}
