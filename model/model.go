package model

// TempUnit selects the temperature display unit.
type TempUnit string

const (
	UnitCelsius    TempUnit = "c"
	UnitFahrenheit TempUnit = "f"
)

// TimeFormat selects the clock display format.
type TimeFormat string

const (
	Format24h TimeFormat = "24h"
	Format12h TimeFormat = "12h"
)

// SearchEngine identifies one of the supported search engines.
type SearchEngine string

const (
	EngineGoogle SearchEngine = "google"
	EngineDDG    SearchEngine = "ddg"
	EngineBing   SearchEngine = "bing"
)

// Settings is the singleton user settings record. It is persisted as JSON
// in the data directory and mutated in place by the settings controls.
type Settings struct {
	TempUnit     TempUnit     `json:"temp_unit"`
	TimeFormat   TimeFormat   `json:"time_format"`
	SearchEngine SearchEngine `json:"search_engine"`
	Theme        string       `json:"theme"`
}

// Valid reports whether every field holds one of its allowed values.
func (s Settings) Valid() bool {
	switch s.TempUnit {
	case UnitCelsius, UnitFahrenheit:
	default:
		return false
	}
	switch s.TimeFormat {
	case Format24h, Format12h:
	default:
		return false
	}
	switch s.SearchEngine {
	case EngineGoogle, EngineDDG, EngineBing:
	default:
		return false
	}
	return s.Theme != ""
}

// WeatherData is the weather readout shown on the page. It is derived
// from the geocode + forecast lookups and never persisted.
type WeatherData struct {
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
	Icon      string  `json:"icon"`
	City      string  `json:"city"`
}
