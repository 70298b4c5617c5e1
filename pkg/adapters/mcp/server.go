// Package mcp exposes the canopy engine to AI agents over the Model
// Context Protocol: snapshot, alert, and trace tools plus the tree
// definition as a resource.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/canopyhq/canopy"
	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Engine defines the interface required by the MCP server.
type Engine interface {
	Evaluate(ctx context.Context) (*domain.Snapshot, error)
	Trace(snap *domain.Snapshot, nodeID string) ([]domain.ScoredNode, error)
	Inspect() []domain.TreeNode
}

// Server wraps the canopy Engine and exposes it as an MCP Server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("canopy-mcp", strings.TrimSpace(canopy.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	// TOOL: get_snapshot
	s.mcpServer.AddTool(mcp.NewTool("get_snapshot",
		mcp.WithDescription("Evaluate the metric tree and return the full scored snapshot, including the supply chain health score and alerts."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := s.engine.Evaluate(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(snap)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: get_alerts
	s.mcpServer.AddTool(mcp.NewTool("get_alerts",
		mcp.WithDescription("Evaluate the metric tree and return only the alerting nodes, each with its root-cause trace."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := s.engine.Evaluate(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		jsonBytes, _ := json.Marshal(snap.Alerts)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	// TOOL: trace_root_cause
	traceTool := mcp.NewTool("trace_root_cause",
		mcp.WithDescription("Trace from a node down to its root-cause leaf by always descending into the lowest-scoring child."),
		mcp.WithString("node_id", mcp.Required(), mcp.Description("The node to start the trace from")),
	)
	s.mcpServer.AddTool(traceTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		nodeID, err := request.RequireString("node_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		snap, err := s.engine.Evaluate(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("evaluation failed: %v", err)), nil
		}

		path, err := s.engine.Trace(snap, nodeID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrUnknownNode):
				return mcp.NewToolResultError(fmt.Sprintf("unknown node: %s", nodeID)), nil
			case errors.Is(err, domain.ErrNodeUnscored):
				return mcp.NewToolResultError(fmt.Sprintf("node %s has no score in this evaluation", nodeID)), nil
			default:
				return mcp.NewToolResultError(fmt.Sprintf("trace failed: %v", err)), nil
			}
		}
		jsonBytes, _ := json.Marshal(path)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}

func (s *Server) registerResources() {
	// EXPOSE: canopy://tree
	s.mcpServer.AddResource(mcp.NewResource("canopy://tree", "Metric Tree Definition",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(s.engine.Inspect())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal tree definition: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "canopy://tree",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
