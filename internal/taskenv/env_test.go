package taskenv

import (
	"testing"
	"time"
)

func TestNowUsesWallClockByDefault(t *testing.T) {
	t.Setenv(NowEnvVar, "")

	before := time.Now()
	got, err := Now()
	if err != nil {
		t.Fatalf("Now: %v", err)
	}
	if got.Before(before) {
		t.Fatalf("expected wall clock time, got %v", got)
	}
}

func TestNowParsesOverride(t *testing.T) {
	cases := []struct {
		name  string
		value string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			value: "2025-03-01T10:00:00Z",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			name:  "minutes",
			value: "2025-03-01 10:00",
			want:  time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local),
		},
		{
			name:  "seconds",
			value: " 2025-03-01 10:00:30 ",
			want:  time.Date(2025, 3, 1, 10, 0, 30, 0, time.Local),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(NowEnvVar, tc.value)

			got, err := Now()
			if err != nil {
				t.Fatalf("Now: %v", err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNowRejectsGarbage(t *testing.T) {
	t.Setenv(NowEnvVar, "yesterday")

	if _, err := Now(); err == nil {
		t.Fatal("expected error for invalid override")
	}
}

func TestStorePath(t *testing.T) {
	t.Setenv(StoreEnvVar, " /tmp/tasks.json ")

	if got := StorePath(); got != "/tmp/tasks.json" {
		t.Fatalf("expected trimmed path, got %q", got)
	}
}
