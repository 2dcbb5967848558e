package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// FindInput contains parameters for the find tool.
	FindInput struct {
		Root   string `json:"root,omitempty" jsonschema:"Directory to search, relative to the base directory (default: the base directory)"`
		Type   string `json:"type,omitempty" jsonschema:"Restrict to entry type: 'd' for directories, 'f' for everything else"`
		Name   string `json:"name,omitempty" jsonschema:"Case-sensitive base name pattern; '*' matches any run of characters"`
		IName  string `json:"iname,omitempty" jsonschema:"Case-insensitive base name pattern; '*' matches any run of characters"`
		Limit  int    `json:"limit,omitempty" jsonschema:"Maximum paths to return (default: 200, max: 1000)"`
		Offset int    `json:"offset,omitempty" jsonschema:"Skip the first N matching paths for pagination (default: 0)"`
	}

	// FindOutput contains the matching paths.
	FindOutput struct {
		Paths   []string `json:"paths"`
		Total   int      `json:"total"`
		HasMore bool     `json:"hasMore,omitempty"`
		Skipped int      `json:"skipped,omitempty"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find",
		Description: "Recursively list files and directories under a root, like find(1). Filters by type (-type d|f) and base name (-name, -iname) combine with AND. Paths are relative to the base directory; the root itself is included when it matches.",
	}, handleFind)
}
