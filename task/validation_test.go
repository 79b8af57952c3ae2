package task

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestValidateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  error
	}{
		{name: "valid", title: "Buy milk"},
		{name: "empty", title: "", want: ErrEmptyTitle},
		{name: "whitespace", title: "   ", want: ErrEmptyTitle},
		{name: "at limit", title: strings.Repeat("a", MaxTitleLength)},
		{name: "too long", title: strings.Repeat("a", MaxTitleLength+1), want: ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTitle(tt.title)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidatePriority(t *testing.T) {
	for _, p := range ValidPriorities() {
		if err := ValidatePriority(p); err != nil {
			t.Errorf("ValidatePriority(%q): %v", p, err)
		}
	}

	err := ValidatePriority("urgent")
	if !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
	if !strings.Contains(err.Error(), "low, medium, high") {
		t.Fatalf("expected valid values in message, got %q", err.Error())
	}
}

func TestValidateExpiry(t *testing.T) {
	if err := ValidateExpiry(time.Time{}); !errors.Is(err, ErrMissingExpiry) {
		t.Fatalf("expected ErrMissingExpiry, got %v", err)
	}
	if err := ValidateExpiry(baseTime); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateBullets(t *testing.T) {
	err := ValidateBullets([]Bullet{{Text: "ok"}, {Text: " "}})
	if !errors.Is(err, ErrEmptyBullet) {
		t.Fatalf("expected ErrEmptyBullet, got %v", err)
	}
	if !strings.Contains(err.Error(), "bullet 2") {
		t.Fatalf("expected bullet number in message, got %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		err  error
		want Kind
		code int
	}{
		{err: nil, want: "", code: 0},
		{err: ErrEmptyTitle, want: KindValidation, code: 2},
		{err: fmt.Errorf("%w: 3", ErrTaskNotFound), want: KindNotFound, code: 3},
		{err: ErrTaskLocked, want: KindLocked, code: 4},
		{err: ErrNoBullets, want: KindNoBullets, code: 5},
		{err: ErrBulletIndexOutOfRange, want: KindIndexOutOfRange, code: 6},
		{err: ErrNotDeletable, want: KindNotDeletable, code: 7},
		{err: ErrReadOnlyStore, want: KindPersistence, code: 8},
		{err: errors.New("other"), want: KindUnknown, code: 1},
	}

	for _, tt := range tests {
		got := KindOf(tt.err)
		if got != tt.want {
			t.Errorf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
		}
		if code := got.ExitCode(); code != tt.code {
			t.Errorf("KindOf(%v).ExitCode() = %d, want %d", tt.err, code, tt.code)
		}
	}
}

func TestParsePriority(t *testing.T) {
	got, err := ParsePriority("  HIGH ")
	if err != nil {
		t.Fatalf("ParsePriority: %v", err)
	}
	if got != PriorityHigh {
		t.Fatalf("expected high, got %q", got)
	}
	if _, err := ParsePriority("critical"); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{input: "completed", want: StatusCompleted},
		{input: "Not Started", want: StatusNotStarted},
		{input: "in progress...", want: StatusInProgress},
		{input: "IN_PROGRESS", want: StatusInProgress},
		{input: "in progress", want: StatusInProgress},
		{input: "expired", want: StatusExpired},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := ParseStatus("finished"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}
