package console

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"courier/internal/bus"
	"courier/internal/dialog"
	"go.uber.org/zap"
)

type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func TestInputBecomesUtterances(t *testing.T) {
	b := bus.New()
	utterances, unsub := b.Subscribe("utterance.", 8)
	defer unsub()

	c := New(b, strings.NewReader("hello\n\nsend a text to bob\n"), &syncBuffer{}, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)
	defer c.Stop()

	want := []string{"hello", "send a text to bob"}
	for _, text := range want {
		select {
		case evt := <-utterances:
			if evt.Kind != "utterance.received" || evt.User != LocalUser || evt.Payload != text {
				t.Errorf("event = %+v, want %q", evt, text)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("utterance %q never published", text)
		}
	}
}

func TestSpokenDialogPrinted(t *testing.T) {
	b := bus.New()
	out := &syncBuffer{}

	c := New(b, strings.NewReader(""), out, zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.Start(ctx)
	defer c.Stop()

	b.Publish(bus.Event{
		Kind:    "speak.dialog",
		User:    LocalUser,
		Payload: dialog.Spoken{Name: "TextSent", Text: "Your text message has been sent."},
	})

	deadline := time.After(2 * time.Second)
	for !strings.Contains(out.String(), "Your text message has been sent.") {
		select {
		case <-deadline:
			t.Fatalf("dialog never printed, output = %q", out.String())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
