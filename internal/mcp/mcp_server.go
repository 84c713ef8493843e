// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"botstats/internal/contract"
)

// NewMCPServer initializes and configures the bot stats MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.Store) *server.MCPServer {
	s := server.NewMCPServer(
		"Bot Stats Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: query_monthly_counts ---
	s.AddTool(mcp.NewTool("query_monthly_counts",
		mcp.WithDescription("Return bot commit and repository counts per calendar month from the imported fleet data."),
	), h.handleQueryMonthlyCounts)

	// --- 2. Tool: query_adoption_curve ---
	s.AddTool(mcp.NewTool("query_adoption_curve",
		mcp.WithDescription("Return the cumulative repository adoption curve, split by marker token presence."),
	), h.handleQueryAdoptionCurve)

	// --- 3. Tool: query_top_repos ---
	s.AddTool(mcp.NewTool("query_top_repos",
		mcp.WithDescription("Return the repositories with the most bot commits."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleQueryTopRepos)

	// --- 4. Tool: query_proportions ---
	s.AddTool(mcp.NewTool("query_proportions",
		mcp.WithDescription("Return fleet-wide marker adoption proportions across repositories and commits."),
	), h.handleQueryProportions)

	return s
}

// StartMCPServer starts the bot stats MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.Store) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
