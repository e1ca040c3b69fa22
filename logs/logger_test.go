package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
		logger.With("program", "test").InfoContext(ctx, "run", "steps", 3)
		if !runningAsService() {
			out := buf.String()
			if !strings.Contains(out, "span=abc") {
				t.Fatalf("got %s", out)
			}
			if !strings.Contains(out, "program=test") {
				t.Fatalf("got %s", out)
			}
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("span.id-1"); key != "SPAN_ID_1" {
		t.Fatalf("got %s", key)
	}
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if err := WrapSpan(context.Background(), base); err != base {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("xyz"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "foo (span xyz)" {
		t.Fatalf("got %v", err)
	}
}
