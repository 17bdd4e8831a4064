package swimtime

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"simple", "1:05", 65, false},
		{"zero_padded_minutes", "01:05", 65, false},
		{"unbounded_minutes", "90:00", 5400, false},
		{"empty_means_not_recorded", "", 0, false},
		{"whitespace_only", "   ", 0, false},
		{"seconds_above_59", "1:75", 0, true},
		{"missing_separator", "105", 0, true},
		{"non_numeric", "a:bc", 0, true},
		{"negative_minutes", "-1:05", 0, true},
		{"too_many_parts", "1:05:30", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClock(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ParseClock(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClockRoundTrip(t *testing.T) {
	// FormatClock(ParseClock(s)) == s após normalizar zero-padding
	for _, s := range []string{"0:00", "0:59", "1:05", "2:30", "10:00", "59:59"} {
		sec, err := ParseClock(s)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", s, err)
		}
		if got := FormatClock(sec); got != s {
			t.Fatalf("round trip %q -> %d -> %q", s, sec, got)
		}
	}
}

func TestParseMeet(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"01:05:50", 65.50, false},
		{"00:45:00", 45, false},
		{"", 0, false},
		{"1:05", 0, true},
		{"01:75:00", 0, true},
		{"01:05:xx", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMeet(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseMeet(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("ParseMeet(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeDigits(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"", ""},
		{"1", "1"},
		{"01", "01"},
		{"013", "01:3"},
		{"0130", "01:30"},
		{"01305", "01:30:5"},
		{"013055", "01:30:55"},
		{"0130559", "01:30:55"}, // excedente descartado
		{"0175", "01:59"},      // segundos truncados para o máximo
		{"01:30.55", "01:30:55"},
	}
	for _, tt := range tests {
		if got := NormalizeDigits(tt.raw); got != tt.want {
			t.Fatalf("NormalizeDigits(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		sec  int
		want string
	}{
		{0, "0:00"},
		{65, "1:05"},
		{90, "1:30"},
		{59, "0:59"},
		{3600, "60:00"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.sec); got != tt.want {
			t.Fatalf("FormatClock(%d) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}

func TestFormatMeet(t *testing.T) {
	tests := []struct {
		sec  float64
		want string
	}{
		{45, `45"00`}, // abaixo de 1min o segmento de minutos some
		{45.32, `45"32`},
		{65.5, `1'05"50`},
		{125.07, `2'05"07`},
		{0, `00"00`},
	}
	for _, tt := range tests {
		if got := FormatMeet(tt.sec); got != tt.want {
			t.Fatalf("FormatMeet(%v) = %q, want %q", tt.sec, got, tt.want)
		}
	}
}
