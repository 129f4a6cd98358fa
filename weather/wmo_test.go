package weather

import "testing"

func TestDescribeWMO(t *testing.T) {
	cases := []struct {
		code  int
		label string
		icon  string
	}{
		{0, "clear", "○"},
		{1, "partly cloudy", "◑"},
		{2, "partly cloudy", "◑"},
		{3, "overcast", "●"},
		{4, "foggy", "≋"},
		{45, "foggy", "≋"},
		{49, "foggy", "≋"},
		{50, "drizzle", "☂"},
		{55, "drizzle", "☂"},
		{59, "drizzle", "☂"},
		{60, "rain", "☔"},
		{65, "rain", "☔"},
		{70, "snow", "❄"},
		{75, "snow", "❄"},
		{80, "showers", "◍"},
		{82, "showers", "◍"},
		{84, "showers", "◍"},
		{85, "storm", "◈"},
		{95, "storm", "◈"},
		{99, "storm", "◈"},
		{150, "unknown", "?"},
		{-1, "unknown", "?"},
	}

	for _, tc := range cases {
		got := DescribeWMO(tc.code)
		if got.Label != tc.label || got.Icon != tc.icon {
			t.Errorf("DescribeWMO(%d) = %q/%q, want %q/%q",
				tc.code, got.Label, got.Icon, tc.label, tc.icon)
		}
	}
}

func TestCtoF(t *testing.T) {
	cases := []struct {
		c    float64
		want int
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{21, 70},
		{-17.78, 0},
	}
	for _, tc := range cases {
		if got := CtoF(tc.c); got != tc.want {
			t.Errorf("CtoF(%v) = %d, want %d", tc.c, got, tc.want)
		}
	}
}

// Converting an integer Celsius value through Fahrenheit and back stays
// within a degree over the realistic range.
func TestConversionRoundTrip(t *testing.T) {
	for c := -50; c <= 60; c++ {
		f := CtoF(float64(c))
		back := FtoC(float64(f))
		diff := back - c
		if diff < -1 || diff > 1 {
			t.Errorf("round trip %d°C -> %d°F -> %d°C drifted by %d", c, f, back, diff)
		}
	}
}
