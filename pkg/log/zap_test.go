package log

import (
	"context"
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStructuredArgs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newWithCore(core)

	l.Info(context.Background(), "dispatch done", "intent", "deals_and_offers", "score", 0.5)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "dispatch done" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["intent"] != "deals_and_offers" {
		t.Errorf("expected intent field, got %v", fields)
	}
}

func TestPlainArgsAreConcatenated(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newWithCore(core)

	l.Warn(context.Background(), "failed to send: ", "timeout")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "failed to send: timeout" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
}

func TestTraceIDFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := newWithCore(core)

	ctx := WithTraceID(context.Background(), "abc-123")
	l.Errorf(ctx, "boom %d", 1)

	entries := logs.FilterField(zapcore.Field{Key: TraceIDField, Type: zapcore.StringType, String: "abc-123"}).All()
	if len(entries) != 1 {
		t.Fatalf("expected trace id on entry, got %d entries", len(entries))
	}
	if entries[0].Message != "boom 1" {
		t.Errorf("unexpected message %q", entries[0].Message)
	}
}

func TestLevelFiltering(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	l := newWithCore(core)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")

	if logs.Len() != 1 {
		t.Errorf("expected only warn entry, got %d", logs.Len())
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	l := Init(ZapConfig{Level: "debug", Mode: ModeDevelopment, Encoding: EncodingConsole, ColorEnabled: true})
	l.Info(context.Background(), "hello")

	l = Init(ZapConfig{Level: "bogus", Mode: ModeProduction, Encoding: EncodingJSON})
	l.Debug(context.Background(), "dropped")
}
