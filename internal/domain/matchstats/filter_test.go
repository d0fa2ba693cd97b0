package matchstats

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestNewFilter(t *testing.T) {
	t.Parallel()

	f, err := NewFilter(" 2024-01-01 ", "2024-03-31", []string{" LCK", "LEC", "", "LCK"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Start != "2024-01-01" || f.End != "2024-03-31" {
		t.Fatalf("unexpected window: got=%s..%s", f.Start, f.End)
	}
	if !reflect.DeepEqual(f.Leagues, []string{"LCK", "LEC"}) {
		t.Fatalf("unexpected leagues: got=%v", f.Leagues)
	}
	if f.Patches != nil {
		t.Fatalf("expected no patch restriction, got=%v", f.Patches)
	}
}

func TestNewFilterSingleDay(t *testing.T) {
	t.Parallel()

	f, err := NewFilter("2024-05-05", "2024-05-05", nil, []string{"14.9"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Start != f.End {
		t.Fatalf("expected single-day window, got=%s..%s", f.Start, f.End)
	}
}

func TestNewFilterValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		start     string
		end       string
		wantField string
	}{
		{name: "malformed start", start: "2024/01/01", end: "2024-01-02", wantField: "start_date"},
		{name: "missing start", start: "", end: "2024-01-02", wantField: "start_date"},
		{name: "malformed end", start: "2024-01-01", end: "2024-13-01", wantField: "end_date"},
		{name: "start after end", start: "2024-02-01", end: "2024-01-01", wantField: "start_date"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilter(tc.start, tc.end, nil, nil)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got=%v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got=%T", err)
			}
			if ve.Field != tc.wantField {
				t.Fatalf("unexpected field: got=%s want=%s", ve.Field, tc.wantField)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	kind, err := ParseKind(" Champion ")
	if err != nil || kind != KindChampion {
		t.Fatalf("unexpected kind: got=%v err=%v", kind, err)
	}
	if kind.Column() != "champion" || kind.TeamRows() {
		t.Fatalf("unexpected champion kind mapping")
	}
	if !KindTeam.TeamRows() || KindTeam.Column() != "teamname" {
		t.Fatalf("unexpected team kind mapping")
	}
	if _, err := ParseKind("coach"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for unknown kind, got=%v", err)
	}
}

func TestStoreErrorMarking(t *testing.T) {
	t.Parallel()

	err := StoreError("select matches", errors.New("connection refused"))
	if !IsStoreUnavailable(err) {
		t.Fatalf("expected store error to be marked, got=%v", err)
	}
	if StoreError("noop", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
	if IsStoreUnavailable(errors.New("other")) {
		t.Fatalf("unexpected mark on unrelated error")
	}

	for _, ctxErr := range []error{context.Canceled, context.DeadlineExceeded, fmt.Errorf("pq: %w", context.Canceled)} {
		err := StoreError("aggregate player", ctxErr)
		if IsStoreUnavailable(err) {
			t.Fatalf("context error %v must not read as a store outage", ctxErr)
		}
		if !IsContextError(err) {
			t.Fatalf("expected %v to stay visible through the wrap, got %v", ctxErr, err)
		}
	}
}
