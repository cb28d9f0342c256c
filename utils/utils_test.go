package utils

import "testing"

func TestParseIntOrZero(t *testing.T) {
	casos := []struct {
		in   string
		want int
	}{
		{"12", 12},
		{" 8 ", 8},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"12.5", 0},
	}

	for _, c := range casos {
		if got := ParseIntOrZero(c.in); got != c.want {
			t.Errorf("ParseIntOrZero(%q) = %d, esperaba %d", c.in, got, c.want)
		}
	}
}

func TestParseFloatOrZero(t *testing.T) {
	casos := []struct {
		in   string
		want float64
	}{
		{"450.5", 450.5},
		{" 12 ", 12},
		{"", 0},
		{"abc", 0},
		{"-1.5", 0},
	}

	for _, c := range casos {
		if got := ParseFloatOrZero(c.in); got != c.want {
			t.Errorf("ParseFloatOrZero(%q) = %v, esperaba %v", c.in, got, c.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	casos := []struct {
		in   int64
		want string
	}{
		{0, "$ 0"},
		{500, "$ 500"},
		{108000, "$ 108.000"},
		{1234567, "$ 1.234.567"},
	}

	for _, c := range casos {
		if got := FormatMoney(c.in); got != c.want {
			t.Errorf("FormatMoney(%d) = %q, esperaba %q", c.in, got, c.want)
		}
	}
}
