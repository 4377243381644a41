package finance

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{name: "plain float", input: 1000.0, want: 1000},
		{name: "plain int", input: 1000, want: 1000},
		{name: "currency string", input: "$1,000.00", want: 1000},
		{name: "string with spaces", input: " 450 000 USD ", want: 450000},
		{name: "plain numeric string", input: "12000", want: 12000},
		{name: "unparseable string", input: "n/a", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "nil", input: nil, want: 0},
		{name: "bool", input: true, want: 0},
		{
			name:  "nested cost map",
			input: map[string]any{"import_tax": "12,000", "freight": 30000.0},
			want:  42000,
		},
		{
			name:  "deeply nested map",
			input: map[string]any{"a": map[string]any{"b": 1.0, "c": 2.0}, "d": "3"},
			want:  6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_EquivalentMagnitudes(t *testing.T) {
	// "$1,000.00", 1000 and 1000.0 must all normalize to the same float.
	inputs := []any{"$1,000.00", 1000, 1000.0, "1000", "1,000"}
	for _, in := range inputs {
		if got := Normalize(in); got != 1000.0 {
			t.Errorf("Normalize(%v) = %v, want 1000", in, got)
		}
	}
}

func TestNormalizeOK(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{name: "number", input: 5.0, want: 5, wantOK: true},
		{name: "parseable string", input: "5", want: 5, wantOK: true},
		{name: "garbage string", input: "abc", want: 0, wantOK: false},
		{name: "nil", input: nil, want: 0, wantOK: false},
		{name: "map with garbage entry", input: map[string]any{"x": 1.0, "y": "??"}, want: 1, wantOK: false},
		{name: "map all parseable", input: map[string]any{"x": 1.0, "y": "2"}, want: 3, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeOK(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NormalizeOK(%v) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
