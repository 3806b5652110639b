// Package server hosts the local development server that generates
// settlements on demand and serves them as JSON for inspection.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/duxbuse/townsmith/pkg/catalog"
	"github.com/duxbuse/townsmith/pkg/geo"
	"github.com/duxbuse/townsmith/pkg/layout"
	"github.com/duxbuse/townsmith/pkg/settle"
	"github.com/duxbuse/townsmith/pkg/terrain"
	"github.com/duxbuse/townsmith/pkg/validation"
)

const cacheSize = 128

type result struct {
	Settlement *settle.Settlement `json:"settlement"`
	Report     *validation.Report `json:"report"`
}

// Server is the local development server. Generation is deterministic,
// so responses are cached by their canonical query string.
type Server struct {
	port  int
	seed  int64
	cat   *catalog.Catalog
	cache *lru.Cache[string, *result]
}

// New creates a server with the given default seed and catalog. A nil
// catalog uses the built-in default.
func New(seed int64, cat *catalog.Catalog, port int) (*Server, error) {
	if cat == nil {
		cat = catalog.Default()
	}
	cache, err := lru.New[string, *result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}
	return &Server{port: port, seed: seed, cat: cat, cache: cache}, nil
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/settlement", s.handleSettlement)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Townsmith server starting on http://localhost%s", addr)
	log.Printf("Default seed: %d", s.seed)

	return http.ListenAndServe(addr, mux)
}

// query is one settlement request in canonical form.
type query struct {
	seed    int64
	size    catalog.SizeClass
	layout  layout.Type
	density float64
	pos     geo.Point2D
	terrain bool
}

func (q query) key() string {
	return fmt.Sprintf("%d|%s|%s|%g|%g|%g|%t",
		q.seed, q.size, q.layout, q.density, q.pos.X, q.pos.Z, q.terrain)
}

func (s *Server) parseQuery(r *http.Request) (query, error) {
	q := query{seed: s.seed, size: catalog.SizeVillage, density: 1.0}
	vals := r.URL.Query()

	if v := vals.Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return q, fmt.Errorf("bad seed %q", v)
		}
		q.seed = n
	}
	if v := vals.Get("size"); v != "" {
		q.size = catalog.SizeClass(v)
	}
	if v := vals.Get("layout"); v != "" {
		q.layout = layout.Type(v)
	}
	if v := vals.Get("density"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("bad density %q", v)
		}
		q.density = f
	}
	if v := vals.Get("x"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("bad x %q", v)
		}
		q.pos.X = f
	}
	if v := vals.Get("z"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return q, fmt.Errorf("bad z %q", v)
		}
		q.pos.Z = f
	}
	if v := vals.Get("terrain"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return q, fmt.Errorf("bad terrain flag %q", v)
		}
		q.terrain = b
	}
	return q, nil
}

// generate runs one settlement through a fresh generator, so every
// cache key maps to exactly one deterministic result.
func (s *Server) generate(q query) *result {
	if res, ok := s.cache.Get(q.key()); ok {
		return res
	}

	req := settle.Request{
		Position: q.pos,
		Size:     q.size,
		Layout:   q.layout,
		Density:  q.density,
	}
	if q.terrain {
		req.Terrain = terrain.Synthesize(terrain.SynthConfig{Seed: q.seed, River: true})
	}

	stl, report := settle.New(q.seed, s.cat).Generate(req)
	res := &result{Settlement: stl, Report: report}
	s.cache.Add(q.key(), res)
	return res
}

func (s *Server) handleSettlement(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := s.generate(q)
	w.Header().Set("Content-Type", "application/json")
	if res.Settlement == nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(res.Report)
		return
	}
	json.NewEncoder(w).Encode(res.Settlement)
}

// handleReport merges the generation report with a structural
// re-validation of the generated settlement.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q, err := s.parseQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := s.generate(q)

	report := validation.NewReport()
	report.Merge(res.Report)
	if res.Settlement != nil {
		report.Merge(settle.ValidateSettlement(res.Settlement, s.cat, nil))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Townsmith</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Townsmith</h1>
<p>Try <a style="color:#8cf" href="/api/settlement?size=town&amp;layout=grid&amp;seed=42">/api/settlement?size=town&amp;layout=grid&amp;seed=42</a></p>
</div>
</body></html>`)
}
