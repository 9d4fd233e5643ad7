package timeparse

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "rfc3339",
			input: "2026-03-10T08:30:00Z",
			want:  time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "rfc3339 with offset",
			input: "2026-03-10T15:30:00+07:00",
			want:  time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "rfc3339 nano",
			input: "2026-03-10T08:30:00.123456Z",
			want:  time.Date(2026, 3, 10, 8, 30, 0, 123456000, time.UTC),
			ok:    true,
		},
		{
			name:  "postgres text timestamp",
			input: "2026-03-10 08:30:00",
			want:  time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "postgres text with short zone",
			input: "2026-03-10 08:30:00+00",
			want:  time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "postgres text with fraction",
			input: "2026-03-10 08:30:00.5",
			want:  time.Date(2026, 3, 10, 8, 30, 0, 500000000, time.UTC),
			ok:    true,
		},
		{
			name:  "bare date",
			input: "2026-03-10",
			want:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: "  2026-03-10  ",
			want:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "empty", input: "", ok: false},
		{name: "garbage", input: "next tuesday", ok: false},
		{name: "partial date", input: "2026-03", ok: false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := Parse(tc.input)
			if ok != tc.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			}
			if ok && !got.Equal(tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
