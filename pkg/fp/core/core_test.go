package core

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	if Logger(ctx) == nil {
		t.Fatalf("expected a discarding logger by default")
	}
	if got := GetDispatchName(ctx, "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx := WithDispatchName(WithLogger(context.Background(), logger), "audit")

	if Logger(ctx) != logger {
		t.Fatalf("expected the configured logger")
	}
	if got := GetDispatchName(ctx, "fallback"); got != "audit" {
		t.Fatalf("expected audit, got %q", got)
	}
}

func TestDetach_ReportsFailureAtDebug(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithLogger(context.Background(), logger)

	d := Detach(ctx, func(ctx context.Context) error {
		return errors.New("lost write")
	})
	if d.ID == uuid.Nil {
		t.Fatalf("expected a dispatch id")
	}

	select {
	case <-d.Done:
	case <-time.After(time.Second):
		t.Fatalf("expected detached call to finish")
	}

	logged := out.String()
	if !strings.Contains(logged, "lost write") || !strings.Contains(logged, d.ID.String()) {
		t.Fatalf("expected failure and dispatch id in log, got %q", logged)
	}
	if !strings.Contains(logged, "level=DEBUG") {
		t.Fatalf("expected debug level, got %q", logged)
	}
}

func TestDetach_RecoversPanic(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := WithDispatchName(WithLogger(context.Background(), logger), "cleanup")

	d := Detach(ctx, func(ctx context.Context) error {
		panic("broken")
	})
	<-d.Done

	logged := out.String()
	if !strings.Contains(logged, "panic=broken") || !strings.Contains(logged, "dispatch=cleanup") {
		t.Fatalf("expected recovered panic in log, got %q", logged)
	}
}

func TestDetach_UniqueIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	a := Detach(ctx, func(context.Context) error { return nil })
	b := Detach(ctx, func(context.Context) error { return nil })
	<-a.Done
	<-b.Done

	if a.ID == b.ID {
		t.Fatalf("expected distinct dispatch ids")
	}
}

func TestChanHelpers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got := FromChanMany(ctx, ToChanMany(ctx, []int{1, 2, 3}))
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("expected [1 2 3], got %v", got)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if got := FromChanMany(ctx, ToChanMany(cancelled, []int{1, 2})); len(got) != 0 {
		t.Fatalf("expected nothing from a cancelled producer, got %v", got)
	}
}

func TestDetach_OutlivesCallerCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(WithDispatchName(context.Background(), "audit"))
	release := make(chan struct{})
	seen := make(chan error, 1)
	name := make(chan string, 1)

	d := Detach(ctx, func(ctx context.Context) error {
		<-release
		seen <- ctx.Err()
		name <- GetDispatchName(ctx, "")
		return nil
	})
	cancel()
	close(release)
	<-d.Done

	if err := <-seen; err != nil {
		t.Fatalf("expected detached call to ignore caller cancellation, got %v", err)
	}
	if got := <-name; got != "audit" {
		t.Fatalf("expected context values to carry through, got %q", got)
	}
}
