package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type PointerRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RouteRequest struct {
	Start  *Position `json:"start,omitempty"` // Optional: defaults to the chaser's start
	Target Position  `json:"target"`
}

type RouteResponse struct {
	Path      []Position `json:"path"`
	Waypoints []Position `json:"waypoints"`
	Success   bool       `json:"success"`
	State     string     `json:"state"`
	Expanded  int        `json:"expanded"`
	Message   string     `json:"message,omitempty"`
}

type LayoutRequest struct {
	Cells    [][]int   `json:"cells,omitempty"`
	Preset   string    `json:"preset,omitempty"`
	Start    *Position `json:"start,omitempty"`
	CellSize int       `json:"cellSize,omitempty"`
	Force    bool      `json:"force,omitempty"` // Set to true to replace an existing layout
}

type GridResponse struct {
	Height   int      `json:"height"`
	Width    int      `json:"width"`
	CellSize int      `json:"cellSize"`
	Start    Position `json:"start"`
	Cells    [][]int  `json:"cells"`
}

const (
	maxLayoutSide  = 1000    // rows or columns accepted by /layout and the flags
	maxLayoutBytes = 8 << 20 // request body limit for /layout
)

var (
	globalChaser        *Chaser
	chaserMutex         sync.RWMutex
	serverSearchOptions []SearchOption
)

func currentChaser() *Chaser {
	chaserMutex.RLock()
	defer chaserMutex.RUnlock()
	return globalChaser
}

func setChaser(chaser *Chaser) {
	chaserMutex.Lock()
	globalChaser = chaser
	chaserMutex.Unlock()
}

// corsMiddleware adds CORS headers to allow frontend requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// POST /pointer - Move the target under the pointer and return the new frame
func pointerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req PointerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid pointer body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	chaser := currentChaser()
	if chaser == nil {
		http.Error(w, "Layout not loaded. Call /layout first", http.StatusBadRequest)
		return
	}

	frame, err := chaser.Tick(r.Context(), req.X, req.Y)
	if err != nil && !errors.Is(err, ErrUnreachable) {
		log.Printf("❌ Tick failed at (%d, %d): %v\n", req.X, req.Y, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, frame)
}

// POST /route - One-off search between explicit cells
func routeHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("📍 Route request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	chaser := currentChaser()
	if chaser == nil {
		log.Println("❌ Layout not loaded")
		http.Error(w, "Layout not loaded. Call /layout first", http.StatusBadRequest)
		log.Println("========================================")
		return
	}

	start := chaser.Start()
	if req.Start != nil {
		start = *req.Start
	}
	log.Printf("   Start:  %v\n", start)
	log.Printf("   Target: %v\n", req.Target)

	result, err := tracedSearch(r.Context(), chaser.Grid(), start, req.Target, serverSearchOptions...)
	response := RouteResponse{
		Path:      result.Path,
		Waypoints: SimplifyPath(result.Path),
		State:     result.State.String(),
		Expanded:  result.Expanded,
	}

	switch {
	case errors.Is(err, ErrOutOfBounds):
		log.Printf("❌ %v\n", err)
		response.Message = err.Error()
		writeJSON(w, http.StatusBadRequest, response)
		log.Println("========================================")
		return
	case err != nil:
		log.Printf("❌ No path: %v\n", err)
		response.Message = err.Error()
	case len(result.Path) == 0:
		log.Println("❌ Target or start is an obstacle")
		response.Message = "Target or start is an obstacle"
	case result.State == StateExhausted:
		log.Printf("⚠️  Target unreachable, path ends at last expanded cell %v\n", result.Path[len(result.Path)-1])
		response.Message = "Target unreachable; path ends at the last expanded cell"
	default:
		response.Success = true
		log.Printf("✅ Path found with %d cells (%d waypoints), %d nodes expanded\n",
			len(result.Path), len(response.Waypoints), result.Expanded)
	}

	writeJSON(w, http.StatusOK, response)
	log.Println("========================================")
}

// GET /grid - Current layout
func gridHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	chaser := currentChaser()
	if chaser == nil {
		http.Error(w, "Layout not loaded. Call /layout first", http.StatusNotFound)
		return
	}

	grid := chaser.Grid()
	writeJSON(w, http.StatusOK, GridResponse{
		Height:   grid.Height(),
		Width:    grid.Width(),
		CellSize: chaser.CellSize(),
		Start:    chaser.Start(),
		Cells:    grid.Matrix(),
	})
}

// POST /layout - Replace the obstacle layout
func layoutHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("========================================")
	log.Println("🗺️  Layout request received")

	if r.Method != http.MethodPost {
		log.Printf("❌ Method not allowed: %s\n", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LayoutRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxLayoutBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Invalid request body: %v\n", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Cells) > maxLayoutSide || (len(req.Cells) > 0 && len(req.Cells[0]) > maxLayoutSide) {
		log.Printf("❌ Layout larger than %dx%d\n", maxLayoutSide, maxLayoutSide)
		http.Error(w, fmt.Sprintf("Layout exceeds %dx%d cells", maxLayoutSide, maxLayoutSide), http.StatusBadRequest)
		return
	}

	existing := currentChaser()
	if existing != nil && !req.Force {
		log.Println("⚠️  Layout already loaded")
		log.Println("   To replace it, set force:true in request")
		log.Println("========================================")
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"success": false,
			"error":   "Layout already loaded",
			"message": "A layout is already loaded. Set 'force: true' to replace it.",
		})
		return
	}

	// Set defaults
	start, cellSize := Position{}, 50
	if existing != nil {
		start, cellSize = existing.Start(), existing.CellSize()
	}
	if req.Start != nil {
		start = *req.Start
	}
	if req.CellSize > 0 {
		cellSize = req.CellSize
	}

	matrix := req.Cells
	if matrix == nil {
		preset := req.Preset
		if preset == "" {
			preset = "maze"
		}
		var err error
		if matrix, err = PresetLayout(preset); err != nil {
			log.Printf("❌ %v\n", err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	grid, err := NewGrid(matrix)
	if err != nil {
		log.Printf("❌ Invalid layout: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	chaser, err := NewChaser(grid, start, cellSize, serverSearchOptions...)
	if err != nil {
		log.Printf("❌ Invalid layout: %v\n", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	setChaser(chaser)

	log.Printf("✅ Layout %dx%d loaded, %d free cells, start %v\n",
		grid.Height(), grid.Width(), grid.PassableCount(), start)
	log.Println("========================================")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"height":    grid.Height(),
		"width":     grid.Width(),
		"freeCells": grid.PassableCount(),
	})
}

// GET /frame.png - Render the last frame
func frameHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	chaser := currentChaser()
	if chaser == nil {
		http.Error(w, "Layout not loaded. Call /layout first", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := WriteFramePNG(w, chaser.Grid(), chaser.LastFrame(), chaser.CellSize()); err != nil {
		log.Printf("❌ Failed to render frame: %v\n", err)
	}
}

// GET /health - Health check endpoint
func healthHandler(w http.ResponseWriter, r *http.Request) {
	chaser := currentChaser()

	status := "ready"
	freeCells, ticks := 0, uint64(0)
	if chaser == nil {
		status = "waiting for layout"
	} else {
		freeCells = chaser.Grid().PassableCount()
		ticks = chaser.LastFrame().Tick
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"hasLayout": chaser != nil,
		"freeCells": freeCells,
		"ticks":     ticks,
	})
}

func newMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/pointer", corsMiddleware(pointerHandler))
	mux.HandleFunc("/route", corsMiddleware(routeHandler))
	mux.HandleFunc("/grid", corsMiddleware(gridHandler))
	mux.HandleFunc("/layout", corsMiddleware(layoutHandler))
	mux.HandleFunc("/frame.png", corsMiddleware(frameHandler))
	mux.HandleFunc("/health", corsMiddleware(healthHandler))
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	serverSearchOptions = cfg.SearchOptions()

	log.Println("========================================")
	log.Println("🚀 Grid Path Planner Server (A*)")
	log.Println("========================================")

	matrix, err := cfg.LoadMatrix()
	if err != nil {
		log.Fatalf("❌ Failed to load layout: %v", err)
	}
	grid, err := NewGrid(matrix)
	if err != nil {
		log.Fatalf("❌ Invalid layout: %v", err)
	}
	chaser, err := NewChaser(grid, cfg.Start, cfg.CellSize, serverSearchOptions...)
	if err != nil {
		log.Fatalf("❌ Invalid start: %v", err)
	}
	setChaser(chaser)

	log.Printf("✅ Layout %dx%d loaded, %d free cells\n", grid.Height(), grid.Width(), grid.PassableCount())
	log.Printf("   Start: %v, cell size: %dpx\n", cfg.Start, cfg.CellSize)
	if cfg.Strict {
		log.Println("   Unreachable targets return an error")
	}
	if cfg.Reopen {
		log.Println("   Closed cells reopen on cheaper routes")
	}
	log.Println("")

	log.Printf("Server starting on %s\n", cfg.Addr)
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /pointer    - Move target to pointer pixel and return path")
	log.Println("  POST /route      - Compute path between explicit cells")
	log.Println("  GET  /grid       - Get current layout")
	log.Println("  POST /layout     - Replace layout")
	log.Println("  GET  /frame.png  - Render last frame")
	log.Println("  GET  /health     - Check server status")
	log.Println("  GET  /metrics    - Prometheus metrics")
	log.Println("")
	log.Println("CORS enabled for all origins")
	log.Println("========================================")
	log.Println("")

	if err := http.ListenAndServe(cfg.Addr, newMux()); err != nil {
		log.Fatal(err)
	}
}
