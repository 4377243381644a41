package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_Levels(t *testing.T) {
	if got := New(false).GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("New(false) level = %v, want info", got)
	}
	if got := New(true).GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("New(true) level = %v, want debug", got)
	}
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Str("standard", "FAS_32").Msg("classified")

	out := buf.String()
	if !strings.Contains(out, "classified") || !strings.Contains(out, "FAS_32") {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	ctx := WithContext(context.Background(), log)
	ctxLog := FromContext(ctx)
	ctxLog.Info().Msg("from context")

	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("logger did not round-trip through context: %s", buf.String())
	}
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() == zerolog.Disabled {
		t.Error("default logger should be enabled")
	}
}
