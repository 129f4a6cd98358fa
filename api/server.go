package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"startpage/clock"
	"startpage/model"
	"startpage/search"
	"startpage/storage"
	"startpage/theme"
	"startpage/weather"
)

// maxImportSize caps an uploaded theme SVG. Swatch files are tiny.
const maxImportSize = 256 << 10

// WeatherFunc resolves coordinates to the weather readout.
type WeatherFunc func(ctx context.Context, lat, lon float64) (*model.WeatherData, error)

// Server owns the page state (settings, themes) and exposes it over the
// JSON API the embedded page talks to.
type Server struct {
	store      *storage.Store
	themes     *theme.Manager
	getWeather WeatherFunc
	ws         *WSConnectionManager

	mu       sync.Mutex
	settings model.Settings
}

// NewServer loads the persisted settings and wires the collaborators.
// A settings record referencing a theme that no longer exists falls
// back to the default built-in.
func NewServer(store *storage.Store, themes *theme.Manager, getWeather WeatherFunc) *Server {
	s := &Server{
		store:      store,
		themes:     themes,
		getWeather: getWeather,
		ws:         NewWSConnectionManager(),
	}

	s.settings = store.LoadSettings()
	if _, ok := themes.Get(s.settings.Theme); !ok {
		s.settings.Theme = theme.DefaultName
	}

	return s
}

// Register attaches all API routes.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/settings", s.handleSettings)
	mux.HandleFunc("/api/weather", s.handleWeather)
	mux.HandleFunc("/api/search", s.handleSearch)
	mux.HandleFunc("/api/themes", s.handleThemes)
	mux.HandleFunc("/api/themes/apply", s.handleThemeApply)
	mux.HandleFunc("/api/themes/import", s.handleThemeImport)
	mux.HandleFunc("/api/themes/export", s.handleThemeExport)
	mux.HandleFunc("/api/themes/", s.handleThemeByName)
	mux.HandleFunc("/api/theme.css", s.handleThemeCSS)
	mux.HandleFunc("/api/ws", s.handleWS)
}

// Settings returns a copy of the current settings.
func (s *Server) Settings() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// TimeFormat reports the current clock format for the ticker.
func (s *Server) TimeFormat() model.TimeFormat {
	return s.Settings().TimeFormat
}

// BroadcastTick pushes a clock readout to every connected page.
func (s *Server) BroadcastTick(r clock.Readout) {
	s.ws.Broadcast(map[string]any{
		"type": "tick",
		"time": r.Time,
		"date": r.Date,
		"zone": r.Zone,
	})
}

func (s *Server) broadcastTheme(name string) {
	s.ws.Broadcast(map[string]any{
		"type": "theme",
		"name": name,
	})
}

// saveSettingsLocked persists the current settings; the caller holds s.mu.
// Write failures are logged and ignored, the in-memory record stays
// authoritative for the session.
func (s *Server) saveSettingsLocked() {
	if err := s.store.SaveSettings(s.settings); err != nil {
		log.Printf("[api] save settings: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---------- settings ----------

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, s.Settings())

	case http.MethodPut:
		var upd model.Settings
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if !upd.Valid() {
			http.Error(w, "invalid settings", http.StatusBadRequest)
			return
		}
		if _, ok := s.themes.Get(upd.Theme); !ok {
			http.Error(w, "unknown theme", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		themeChanged := s.settings.Theme != upd.Theme
		s.settings = upd
		s.saveSettingsLocked()
		s.mu.Unlock()

		if themeChanged {
			s.broadcastTheme(upd.Theme)
		}
		writeJSON(w, http.StatusOK, upd)

	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPut)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// ---------- weather ----------

type weatherResponse struct {
	Available bool   `json:"available"`
	TempC     int    `json:"temp_c"`
	TempF     int    `json:"temp_f"`
	Condition string `json:"condition,omitempty"`
	Icon      string `json:"icon,omitempty"`
	City      string `json:"city,omitempty"`
}

// handleWeather runs the chained lookups for coordinates supplied by
// the page's one-shot geolocation request. Any failure is terminal for
// the session: the page shows a quiet "unavailable" state, no retry.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		writeJSON(w, http.StatusOK, weatherResponse{Available: false})
		return
	}

	data, err := s.getWeather(r.Context(), lat, lon)
	if err != nil {
		log.Printf("[weather] lookup failed: %v", err)
		writeJSON(w, http.StatusOK, weatherResponse{Available: false})
		return
	}

	writeJSON(w, http.StatusOK, weatherResponse{
		Available: true,
		TempC:     roundTemp(data.TempC),
		TempF:     weather.CtoF(data.TempC),
		Condition: data.Condition,
		Icon:      data.Icon,
		City:      data.City,
	})
}

// ---------- search ----------

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	target, ok := search.BuildURL(s.Settings().SearchEngine, r.URL.Query().Get("q"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": target})
}

// ---------- themes ----------

type themesResponse struct {
	Categories []string      `json:"categories"`
	Themes     []theme.Entry `json:"themes"`
	Active     string        `json:"active"`
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, themesResponse{
		Categories: s.themes.Categories(),
		Themes:     s.themes.List(),
		Active:     s.Settings().Theme,
	})
}

func (s *Server) handleThemeApply(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	entry, ok := s.themes.Get(req.Name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.settings.Theme = entry.Name
	s.saveSettingsLocked()
	s.mu.Unlock()

	s.broadcastTheme(entry.Name)
	writeJSON(w, http.StatusOK, entry)
}

// handleThemeImport accepts a dropped SVG swatch file relayed by the
// page. A malformed file changes nothing: the custom list and the
// active theme stay as they were.
func (s *Server) handleThemeImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "theme.svg"
	}
	if !strings.EqualFold(filepath.Ext(filename), ".svg") {
		http.Error(w, "not an svg file", http.StatusUnprocessableEntity)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	entry, err := s.themes.Import(filename, data)
	if err != nil {
		log.Printf("[theme] import rejected: %v", err)
		http.Error(w, "invalid theme svg", http.StatusUnprocessableEntity)
		return
	}

	// An imported theme activates immediately.
	s.mu.Lock()
	s.settings.Theme = entry.Name
	s.saveSettingsLocked()
	s.mu.Unlock()

	s.broadcastTheme(entry.Name)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleThemeExport(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = s.Settings().Theme
	}

	entry, ok := s.themes.Get(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", entry.Name+".svg"))
	_, _ = w.Write(theme.RenderSVG(entry.Colors))
}

func (s *Server) handleThemeByName(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/api/themes/")
	if name == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		entry, ok := s.themes.Get(name)
		if !ok {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, entry)

	case http.MethodDelete:
		entry, ok := s.themes.Get(name)
		if !ok {
			http.NotFound(w, r)
			return
		}
		if !entry.Custom {
			http.Error(w, "built-in themes cannot be deleted", http.StatusForbidden)
			return
		}
		if err := s.themes.Delete(name); err != nil {
			http.Error(w, "failed to delete theme", http.StatusInternalServerError)
			return
		}

		// Deleting the active theme falls back to the default built-in.
		s.mu.Lock()
		fellBack := s.settings.Theme == name
		if fellBack {
			s.settings.Theme = theme.DefaultName
			s.saveSettingsLocked()
		}
		s.mu.Unlock()

		if fellBack {
			s.broadcastTheme(theme.DefaultName)
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodDelete)
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleThemeCSS(w http.ResponseWriter, r *http.Request) {
	entry, ok := s.themes.Get(s.Settings().Theme)
	if !ok {
		entry, _ = s.themes.Get(theme.DefaultName)
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(theme.CSS(entry.Colors)))
}

// ---------- websocket ----------

var upgrader = websocket.Upgrader{
	// The page is served from the same binary; cross-origin pages have
	// no business on this socket.
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || strings.Contains(origin, r.Host)
	},
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[api] websocket upgrade: %v", err)
		return
	}

	s.ws.Add(conn)
	defer func() {
		s.ws.Remove(conn)
		conn.Close()
	}()

	// Tell the fresh page which theme is active before the first tick.
	_ = s.ws.WriteJSON(conn, map[string]any{
		"type": "theme",
		"name": s.Settings().Theme,
	})

	// The page never sends anything meaningful; the read loop only
	// notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// ---------- helpers ----------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON error: %v", err)
	}
}

func roundTemp(c float64) int {
	if c < 0 {
		return int(c - 0.5)
	}
	return int(c + 0.5)
}
