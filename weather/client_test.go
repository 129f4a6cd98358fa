package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func geocoderStub(t *testing.T, address string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
			t.Error("geocoder called without coordinates")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"address":%s}`, address)
	}))
}

func forecastStub(t *testing.T, temp float64, code int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("current_weather") != "true" {
			t.Error("forecast called without current_weather=true")
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"current_weather":{"temperature":%v,"weathercode":%d}}`, temp, code)
	}))
}

func TestCurrent(t *testing.T) {
	geo := geocoderStub(t, `{"city":"Reykjavík"}`)
	defer geo.Close()
	forecast := forecastStub(t, 11.4, 61)
	defer forecast.Close()

	c := NewClient(geo.URL, forecast.URL)
	data, err := c.Current(context.Background(), 64.1466, -21.9426)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}

	if data.City != "Reykjavík" {
		t.Errorf("city = %q", data.City)
	}
	if data.TempC != 11.4 {
		t.Errorf("temp = %v", data.TempC)
	}
	if data.Condition != "rain" || data.Icon != "☔" {
		t.Errorf("condition = %q/%q", data.Condition, data.Icon)
	}
}

func TestCityFallbackChain(t *testing.T) {
	cases := []struct {
		address string
		want    string
	}{
		{`{"city":"Berlin","town":"Ignored"}`, "Berlin"},
		{`{"town":"Lund"}`, "Lund"},
		{`{"village":"Hognestad"}`, "Hognestad"},
		{`{"county":"Somerset"}`, "Somerset"},
		{`{}`, "here"},
	}

	forecast := forecastStub(t, 0, 0)
	defer forecast.Close()

	for _, tc := range cases {
		geo := geocoderStub(t, tc.address)
		c := NewClient(geo.URL, forecast.URL)
		data, err := c.Current(context.Background(), 1, 2)
		geo.Close()
		if err != nil {
			t.Fatalf("Current(%s): %v", tc.address, err)
		}
		if data.City != tc.want {
			t.Errorf("address %s resolved to %q, want %q", tc.address, data.City, tc.want)
		}
	}
}

func TestGeocodeFailureIsTerminal(t *testing.T) {
	geo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer geo.Close()

	forecastCalled := false
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forecastCalled = true
	}))
	defer forecast.Close()

	c := NewClient(geo.URL, forecast.URL)
	if _, err := c.Current(context.Background(), 1, 2); err == nil {
		t.Fatal("expected error from failed geocode")
	}
	if forecastCalled {
		t.Error("forecast lookup started despite geocode failure")
	}
}

func TestForecastFailure(t *testing.T) {
	geo := geocoderStub(t, `{"city":"Oslo"}`)
	defer geo.Close()
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer forecast.Close()

	c := NewClient(geo.URL, forecast.URL)
	if _, err := c.Current(context.Background(), 1, 2); err == nil {
		t.Fatal("expected error from malformed forecast response")
	}
}
