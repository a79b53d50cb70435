package sloghooks

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/meridianhq/tcontainer"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	return l, &buf
}

func TestHooksLogExpectedEvents(t *testing.T) {
	l, buf := newTestLogger()
	h := New(l, Options{})

	h.DepthExceeded("field", 40)
	if !strings.Contains(buf.String(), "tcontainer.depth_exceeded") {
		t.Fatalf("log missing depth_exceeded event, got %q", buf.String())
	}

	buf.Reset()
	h.PoolExhausted(tcontainer.TagBytes)
	if !strings.Contains(buf.String(), "tcontainer.pool_exhausted") {
		t.Fatalf("log missing pool_exhausted event, got %q", buf.String())
	}

	buf.Reset()
	h.BridgeMigrated("x", "Value", "Variant")
	if !strings.Contains(buf.String(), "tcontainer.bridge_migrated") {
		t.Fatalf("log missing bridge_migrated event, got %q", buf.String())
	}
}

func TestHooksDecodeRecoveredSampling(t *testing.T) {
	l, buf := newTestLogger()
	h := New(l, Options{DecodeRecoveredEvery: 3})

	for i := 0; i < 6; i++ {
		h.DecodeRecovered("x", tcontainer.TagInt, nil)
	}

	count := strings.Count(buf.String(), "tcontainer.decode_recovered")
	if count != 2 {
		t.Fatalf("logged %d times with sampling=3 over 6 calls, want 2", count)
	}
}

func TestHooksNilLoggerIsNoop(t *testing.T) {
	h := New(nil, Options{})
	h.DepthExceeded("x", 40) // must not panic
	h.PoolExhausted(tcontainer.TagBytes)
}
