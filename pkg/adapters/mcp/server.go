package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/aretw0/trackhist"
	"github.com/aretw0/trackhist/pkg/domain"
	"github.com/aretw0/trackhist/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// HistogramResponse is the structured result of get_histogram.
type HistogramResponse struct {
	RunID     string               `json:"run_id" jsonschema_description:"Run the histogram belongs to"`
	Histogram domain.HistogramData `json:"histogram" jsonschema_description:"Bin edges and integer counts"`
}

// Server exposes stored runs as MCP tools and resources.
type Server struct {
	store     ports.RunStore
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(store ports.RunStore) *Server {
	s := &Server{
		store:     store,
		mcpServer: server.NewMCPServer("trackhist-mcp", strings.TrimSpace(trackhist.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// Listen serves JSON-RPC from in to out until in is exhausted or ctx is
// cancelled. Cancellation is a clean shutdown and returns nil.
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer, errLog io.Writer) error {
	stdio := server.NewStdioServer(s.mcpServer)
	stdio.SetErrorLogger(log.New(errLog, "", log.LstdFlags))

	err := stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_runs",
		mcp.WithDescription("List the IDs of stored analysis runs."),
	), s.handleListRuns)

	histTool := mcp.NewTool("get_histogram",
		mcp.WithDescription("Get the bin edges and counts of a histogram (hPt or hVtxZ) from a stored run."),
		mcp.WithString("run_id", mcp.Required(), mcp.Description("Run ID")),
		mcp.WithString("name", mcp.Required(), mcp.Description("Histogram name, e.g. hPt")),
		mcp.WithOutputSchema[HistogramResponse](),
	)
	s.mcpServer.AddTool(histTool, mcp.NewStructuredToolHandler(s.handleGetHistogram))
}

func (s *Server) handleListRuns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	runs, err := s.store.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list failed: %v", err)), nil
	}
	jsonBytes, _ := json.Marshal(runs)
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleGetHistogram(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (HistogramResponse, error) {
	runID, _ := args["run_id"].(string)
	name, _ := args["name"].(string)

	run, err := s.store.Load(ctx, runID)
	if err != nil {
		return HistogramResponse{}, fmt.Errorf("load run %q: %w", runID, err)
	}
	h, ok := run.Histogram(name)
	if !ok {
		return HistogramResponse{}, fmt.Errorf("%s: %w", name, domain.ErrHistogramNotFound)
	}
	return HistogramResponse{RunID: runID, Histogram: h}, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("trackhist://runs", "Stored Runs",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		runs, err := s.store.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list runs: %w", err)
		}
		jsonBytes, _ := json.Marshal(runs)

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "trackhist://runs",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
