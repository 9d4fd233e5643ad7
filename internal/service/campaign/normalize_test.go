package campaign

import (
	"reflect"
	"testing"
)

func TestToSubscribeList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input any
		want  []string
	}{
		{name: "nil input", input: nil, want: []string{}},
		{
			name:  "array of strings",
			input: []any{"AI untuk UMKM", "Paket Basic"},
			want:  []string{"AI untuk UMKM", "Paket Basic"},
		},
		{
			name: "mixed array with objects and null",
			input: []any{
				map[string]any{"product_name": "AI untuk UMKM"},
				"Paket Basic",
				nil,
			},
			want: []string{"AI untuk UMKM", "Paket Basic"},
		},
		{
			name:  "object without name yields its JSON",
			input: []any{map[string]any{"sku": "X1"}},
			want:  []string{`{"sku":"X1"}`},
		},
		{
			name:  "name key priority",
			input: []any{map[string]any{"name": "Fallback", "product_name": "Primary"}},
			want:  []string{"Primary"},
		},
		{
			name:  "JSON encoded string",
			input: `["AI untuk UMKM","Paket Basic"]`,
			want:  []string{"AI untuk UMKM", "Paket Basic"},
		},
		{
			name:  "comma separated string",
			input: "AI untuk UMKM, Paket Basic, ",
			want:  []string{"AI untuk UMKM", "Paket Basic"},
		},
		{name: "blank string", input: "   ", want: []string{}},
		{
			name:  "single object with nested product_list",
			input: map[string]any{"product_list": []any{"AI untuk UMKM"}},
			want:  []string{"AI untuk UMKM"},
		},
		{
			name:  "single named object",
			input: map[string]any{"product_name": "AI untuk UMKM"},
			want:  []string{"AI untuk UMKM"},
		},
		{
			name:  "numbers coerce to strings",
			input: []any{float64(42), true},
			want:  []string{"42", "true"},
		},
		{name: "unsupported scalar", input: float64(7), want: []string{}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ToSubscribeList(tc.input)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ToSubscribeList(%v) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestToSubscribeListNeverNil(t *testing.T) {
	t.Parallel()
	for _, input := range []any{nil, "", "not json", float64(1), []any{}} {
		if got := ToSubscribeList(input); got == nil {
			t.Fatalf("ToSubscribeList(%v) returned nil", input)
		}
	}
}

func TestToProductList(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }

	cases := []struct {
		name  string
		input any
		want  []struct {
			name    *string
			expired *string
		}
	}{
		{name: "nil input", input: nil},
		{
			name: "objects keep expiry",
			input: []any{
				map[string]any{"product_name": "AI untuk UMKM", "expired_at": "2026-09-01T00:00:00Z"},
			},
			want: []struct {
				name    *string
				expired *string
			}{
				{strPtr("AI untuk UMKM"), strPtr("2026-09-01T00:00:00Z")},
			},
		},
		{
			name:  "string items have no expiry",
			input: []any{"Paket Basic"},
			want: []struct {
				name    *string
				expired *string
			}{
				{strPtr("Paket Basic"), nil},
			},
		},
		{
			name: "nested product_list is flattened",
			input: []any{
				map[string]any{"product_list": []any{
					map[string]any{"product_name": "Inner", "expired_at": "2026-01-01"},
				}},
				"Outer",
			},
			want: []struct {
				name    *string
				expired *string
			}{
				{strPtr("Inner"), strPtr("2026-01-01")},
				{strPtr("Outer"), nil},
			},
		},
		{
			name:  "JSON encoded string",
			input: `[{"product_name":"AI untuk UMKM","expired_at":"2026-09-01"}]`,
			want: []struct {
				name    *string
				expired *string
			}{
				{strPtr("AI untuk UMKM"), strPtr("2026-09-01")},
			},
		},
		{name: "non JSON string", input: "AI untuk UMKM, Paket Basic"},
		{
			name:  "single named object",
			input: map[string]any{"name": "Solo", "expired_at": "2026-02-02"},
			want: []struct {
				name    *string
				expired *string
			}{
				{strPtr("Solo"), strPtr("2026-02-02")},
			},
		},
		{name: "unnamed object", input: map[string]any{"foo": "bar"}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ToProductList(tc.input)
			if got == nil {
				t.Fatal("ToProductList returned nil")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d entries, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, w := range tc.want {
				if !equalStrPtr(got[i].ProductName, w.name) {
					t.Errorf("entry %d name = %v, want %v", i, deref(got[i].ProductName), deref(w.name))
				}
				if !equalStrPtr(got[i].ExpiredAt, w.expired) {
					t.Errorf("entry %d expired_at = %v, want %v", i, deref(got[i].ExpiredAt), deref(w.expired))
				}
			}
		})
	}
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
