package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"botstats/internal/contract"
	"botstats/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.Store
}

func (h *toolHandler) handleQueryMonthlyCounts(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rows, err := h.store.MonthlyCounts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("monthly query failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleQueryAdoptionCurve(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	firsts, err := h.store.FirstCommitByRepo(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("adoption query failed: %v", err)), nil
	}

	curve := schema.BuildAdoptionCurve(firsts)
	jsonData, _ := json.MarshalIndent(curve, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleQueryTopRepos(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := h.baseCfg.TopLimit
	if l := request.GetInt("limit", 0); l > 0 && l <= contract.MaxTopLimit {
		limit = l
	}

	rows, err := h.store.TopRepos(ctx, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("top repositories query failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleQueryProportions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	proportions, err := h.store.MarkerProportions(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("proportions query failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(proportions, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
