package main

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/gofind/internal/types"
)

func handleFind(ctx context.Context, req *mcp.CallToolRequest, input FindInput) (*mcp.CallToolResult, FindOutput, error) {
	result, err := fileSystem.Find(ctx, types.FindParams{
		Root: strings.TrimSpace(input.Root),
		Filter: types.FilterConfig{
			Type:  strings.TrimSpace(input.Type),
			Name:  input.Name,
			IName: input.IName,
		},
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, FindOutput{}, err
	}

	return nil, FindOutput{
		Paths:   result.Paths,
		Total:   result.Total,
		HasMore: result.HasMore,
		Skipped: result.Skipped,
	}, nil
}
