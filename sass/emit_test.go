package sass

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		precision int
		want      string
	}{
		{"long fraction", "1.123456789", 5, "1.12346"},
		{"short fraction untouched", "1.5", 5, "1.5"},
		{"integer untouched", "10px", 5, "10px"},
		{"rounds up to integer", "1.999999999", 2, "2"},
		{"leading dot", ".5", 5, ".5"},
		{"multiple runs", "0.333333333 0.5em", 5, "0.33333 0.5em"},
		{"hex color untouched", "#ff0000", 2, "#ff0000"},
		{"digits inside name", "url(img2.png)", 2, "url(img2.png)"},
		{"lower precision", "0.333333333px", 3, "0.333px"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatValue(tc.in, tc.precision); got != tc.want {
				t.Errorf("formatValue(%q, %d) = %q, want %q", tc.in, tc.precision, got, tc.want)
			}
		})
	}
}

func TestRoundNumber(t *testing.T) {
	tests := []struct {
		in        string
		precision int
		want      string
	}{
		{"1.234567", 5, "1.23457"},
		{"1.23", 5, "1.23"},
		{"42", 5, "42"},
		{"0.125", 2, "0.13"},
	}
	for _, tc := range tests {
		if got := roundNumber(tc.in, tc.precision); got != tc.want {
			t.Errorf("roundNumber(%q, %d) = %q, want %q", tc.in, tc.precision, got, tc.want)
		}
	}
}
