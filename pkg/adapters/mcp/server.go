package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/sluice/internal/presentation/graph"
	"github.com/aretw0/sluice/internal/validator"
	"github.com/aretw0/sluice/pkg/domain"
	"github.com/aretw0/sluice/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// SolveArgs are the arguments of the solve tool. Zero values fall back to
// the solver defaults; a beam_width given as 0 disables the beam.
type SolveArgs struct {
	Start     string `json:"start,omitempty"`
	Horizon   int    `json:"horizon,omitempty"`
	Agents    int    `json:"agents,omitempty"`
	BeamWidth *int   `json:"beam_width,omitempty"`
	Scorer    string `json:"scorer,omitempty"`
	Trace     bool   `json:"trace,omitempty"`
}

// DescribeArgs are the arguments of the describe_network tool.
type DescribeArgs struct {
	Start   string `json:"start,omitempty"`
	Horizon int    `json:"horizon,omitempty"`
}

// NetworkDescription is the structured output of describe_network.
type NetworkDescription struct {
	Nodes      []domain.Node     `json:"nodes" jsonschema_description:"Nodes with yield rate and neighbors"`
	TotalYield int               `json:"total_yield" jsonschema_description:"Sum of all yield rates"`
	Positive   int               `json:"positive" jsonschema_description:"Number of nodes worth activating"`
	Report     *validator.Report `json:"report,omitempty" jsonschema_description:"Reachability from the start node, when given"`
}

// Server wraps a Solver and exposes it as an MCP Server.
type Server struct {
	solver    ports.Solver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver ports.Solver, version string) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("sluice-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, shutting down MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: solve
	solveTool := mcp.NewTool("solve",
		mcp.WithDescription("Find the largest total yield that one or two agents can release before the horizon."),
		mcp.WithString("start", mcp.Description("Start node ID (optional)")),
		mcp.WithNumber("horizon", mcp.Description("Number of time units (optional)")),
		mcp.WithNumber("agents", mcp.Description("1 or 2 (optional)")),
		mcp.WithNumber("beam_width", mcp.Description("Frontier cap for two agents, 0 for unbounded (optional, omitted keeps the default)")),
		mcp.WithString("scorer", mcp.Description("Beam ranking: accumulated, projected or optimistic (optional)")),
		mcp.WithBoolean("trace", mcp.Description("Return the plan that reaches the best yield")),
		mcp.WithOutputSchema[domain.Result](),
	)
	s.mcpServer.AddTool(solveTool, mcp.NewStructuredToolHandler(s.handleSolve))

	// TOOL: describe_network
	describeTool := mcp.NewTool("describe_network",
		mcp.WithDescription("Describe the network: nodes, yield rates and reachability from a start node."),
		mcp.WithString("start", mcp.Description("Start node ID for the reachability report (optional)")),
		mcp.WithNumber("horizon", mcp.Description("Horizon used to flag nodes too far to yield (optional)")),
		mcp.WithOutputSchema[NetworkDescription](),
	)
	s.mcpServer.AddTool(describeTool, mcp.NewStructuredToolHandler(s.handleDescribe))

	// TOOL: network_mermaid
	s.mcpServer.AddTool(mcp.NewTool("network_mermaid",
		mcp.WithDescription("Get the network as a Mermaid flowchart."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(graph.GenerateMermaid(s.solver.Network(), nil)), nil
	})
}

func (s *Server) handleSolve(ctx context.Context, request mcp.CallToolRequest, args SolveArgs) (domain.Result, error) {
	req := domain.Request{
		Start:   args.Start,
		Horizon: args.Horizon,
		Agents:  args.Agents,
		Scorer:  args.Scorer,
		Trace:   args.Trace,
	}
	if args.BeamWidth != nil {
		req.BeamWidth = domain.ExplicitBeamWidth(*args.BeamWidth)
	}
	res, err := s.solver.Solve(ctx, req)
	if err != nil {
		return domain.Result{}, fmt.Errorf("solve failed: %w", err)
	}
	return *res, nil
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest, args DescribeArgs) (NetworkDescription, error) {
	n := s.solver.Network()
	desc := NetworkDescription{
		Nodes:      n.Nodes(),
		TotalYield: n.TotalYield(),
		Positive:   n.PositiveCount(),
	}
	if args.Start != "" {
		report, err := validator.ValidateNetwork(n, args.Start, args.Horizon)
		if err != nil {
			return NetworkDescription{}, err
		}
		desc.Report = report
	}
	return desc, nil
}

func (s *Server) registerResources() {
	// EXPOSE: sluice://network
	s.mcpServer.AddResource(mcp.NewResource("sluice://network", "Current Network Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.solver.Network().Nodes())
		if err != nil {
			return nil, fmt.Errorf("failed to encode network: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "sluice://network",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
