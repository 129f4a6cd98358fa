package weather

// Condition is the label/icon pair for a WMO weather code.
type Condition struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// DescribeWMO maps a numeric WMO weather code to its display condition
// using fixed range buckets.
func DescribeWMO(code int) Condition {
	switch {
	case code == 0:
		return Condition{"clear", "○"}
	case code >= 1 && code <= 2:
		return Condition{"partly cloudy", "◑"}
	case code == 3:
		return Condition{"overcast", "●"}
	case code >= 4 && code <= 49:
		return Condition{"foggy", "≋"}
	case code >= 50 && code <= 59:
		return Condition{"drizzle", "☂"}
	case code >= 60 && code <= 69:
		return Condition{"rain", "☔"}
	case code >= 70 && code <= 79:
		return Condition{"snow", "❄"}
	case code >= 80 && code <= 84:
		return Condition{"showers", "◍"}
	case code >= 85 && code <= 99:
		return Condition{"storm", "◈"}
	}
	return Condition{"unknown", "?"}
}

// CtoF converts Celsius to Fahrenheit, rounded to the nearest degree.
func CtoF(c float64) int {
	f := c*9/5 + 32
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

// FtoC converts Fahrenheit to Celsius, rounded to the nearest degree.
func FtoC(f float64) int {
	c := (f - 32) * 5 / 9
	if c < 0 {
		return int(c - 0.5)
	}
	return int(c + 0.5)
}
