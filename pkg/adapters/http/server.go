package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/sluice/internal/presentation/graph"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/aretw0/sluice/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// maxBodySize caps POST /solve payloads.
const maxBodySize = 1 << 20

// SolverFactory builds a one-off solver for a network sent inline with a request.
type SolverFactory func(network *domain.Network) (ports.Solver, error)

// Server implements the generated ServerInterface.
type Server struct {
	Solver  ports.Solver
	Factory SolverFactory
	Streams *StreamManager
	Version string
	Metrics http.Handler
	Logger  *slog.Logger
}

var _ ServerInterface = (*Server)(nil)

// NewHandler creates a new HTTP handler for the server.
func NewHandler(s *Server) http.Handler {
	if s.Streams == nil {
		s.Streams = NewStreamManager()
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		io.WriteString(w, swaggerHTML)
	})
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	return HandlerWithOptions(s, ChiServerOptions{
		BaseRouter: r,
		ErrorHandlerFunc: func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, http.StatusBadRequest, err)
		},
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Sluice API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Solve handles the POST /solve request.
// The optional stream query parameter names an SSE stream that receives the
// layer events of this solve.
func (s *Server) Solve(w http.ResponseWriter, r *http.Request, params SolveParams) {
	var body SolveJSONRequestBody
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		s.Logger.Warn("Solve: Invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	solver := s.Solver
	if body.Network != nil {
		if s.Factory == nil {
			writeError(w, http.StatusBadRequest, errors.New("inline networks are not supported by this server"))
			return
		}
		network, err := domain.Build(mapNodeSpecsToDomain(body.Network.Nodes))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if solver, err = s.Factory(network); err != nil {
			s.Logger.Error("Solve: factory failed", "error", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
	}

	ctx := r.Context()
	if params.Stream != nil && *params.Stream != "" {
		ctx = WithStream(ctx, *params.Stream)
	}

	res, err := solver.Solve(ctx, mapRequestToDomain(body.Request))
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			s.Logger.Error("Solve failed", "error", err)
		}
		writeError(w, status, err)
		return
	}

	writeJSON(w, http.StatusOK, mapResultFromDomain(res))
}

// GetNetwork handles the GET /network request.
func (s *Server) GetNetwork(w http.ResponseWriter, r *http.Request) {
	n := s.Solver.Network()
	nodes := n.Nodes()
	resp := NetworkResponse{
		Nodes:      make([]Node, len(nodes)),
		TotalYield: n.TotalYield(),
		Positive:   n.PositiveCount(),
	}
	for i, node := range nodes {
		neighbors := node.Neighbors
		if neighbors == nil {
			neighbors = []string{}
		}
		resp.Nodes[i] = Node{Id: node.ID, Yield: node.Yield, Neighbors: neighbors}
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetMermaid handles the GET /network/mermaid request.
// The optional start query parameter highlights the start node.
func (s *Server) GetMermaid(w http.ResponseWriter, r *http.Request, params GetMermaidParams) {
	var overlay *graph.Overlay
	if params.Start != nil && *params.Start != "" {
		overlay = &graph.Overlay{Start: *params.Start}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, graph.GenerateMermaid(s.Solver.Network(), overlay))
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := Info{
		App:     "sluice-http",
		Version: strings.TrimSpace(s.Version),
	}
	if swagger, err := GetSwagger(); err == nil {
		info.ApiVersion = swagger.Info.Version
	} else {
		s.Logger.Warn("GetInfo: embedded spec unreadable", "error", err)
	}
	writeJSON(w, http.StatusOK, info)
}

func mapNodeSpecsToDomain(specs []NodeSpec) []domain.NodeSpec {
	out := make([]domain.NodeSpec, len(specs))
	for i, spec := range specs {
		out[i] = domain.NodeSpec{ID: spec.Id}
		if spec.Yield != nil {
			out[i].Yield = *spec.Yield
		}
		if spec.Neighbors != nil {
			out[i].Neighbors = *spec.Neighbors
		}
	}
	return out
}

// mapRequestToDomain leaves omitted fields zero so the solver fills them from
// its defaults. An explicit beam_width of 0 disables the cap.
func mapRequestToDomain(req *SearchRequest) domain.Request {
	var out domain.Request
	if req == nil {
		return out
	}
	if req.Start != nil {
		out.Start = *req.Start
	}
	if req.Horizon != nil {
		out.Horizon = *req.Horizon
	}
	if req.Agents != nil {
		out.Agents = *req.Agents
	}
	if req.BeamWidth != nil {
		out.BeamWidth = domain.ExplicitBeamWidth(*req.BeamWidth)
	}
	if req.Scorer != nil {
		out.Scorer = string(*req.Scorer)
	}
	if req.Trace != nil {
		out.Trace = *req.Trace
	}
	return out
}

func mapResultFromDomain(res *domain.Result) Result {
	out := Result{
		Best:      res.Best,
		Exact:     res.Exact,
		Layers:    res.Layers,
		Expanded:  res.Expanded,
		Dominated: res.Dominated,
		Trimmed:   res.Trimmed,
		Settled:   res.Settled,
		Peak:      res.Peak,
		Duration:  int64(res.Duration),
	}
	if res.Cached {
		cached := true
		out.Cached = &cached
	}
	if len(res.Plan) > 0 {
		plan := make([]PlanStep, len(res.Plan))
		for i, step := range res.Plan {
			plan[i] = PlanStep{
				Elapsed:   step.Elapsed,
				Action:    step.Action.String(),
				Positions: step.Positions,
				Yield:     step.Yield,
			}
			if len(step.Activated) > 0 {
				activated := step.Activated
				plan[i].Activated = &activated
			}
		}
		out.Plan = &plan
	}
	return out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrUnknownStartNode),
		errors.Is(err, domain.ErrMalformedInput),
		errors.Is(err, domain.ErrEmptyNetwork):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, Error{Error: err.Error()})
}
