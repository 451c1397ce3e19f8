// Package mcp provides a Model Context Protocol server for chime.
// It exposes alarm operations as MCP tools that any MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/moon-mind/chime/internal/alarms"
)

// NewServer creates an MCP server with all chime tools registered.
func NewServer(version string, store *alarms.Store) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "chime",
		Version: version,
	}, nil)
	registerTools(server, store)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for write tools (additive, not destructive).
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// destructiveAnnotations returns annotations for tools that delete data.
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all chime tools to the server.
func registerTools(server *mcp.Server, store *alarms.Store) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "status",
		Description: "Show alarm store state: storage directory, alarm counts, and the next alarm due to fire.",
		Annotations: readOnlyAnnotations(),
	}, handleStatus(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_alarms",
		Description: "List all alarms sorted by time of day, including disabled ones.",
		Annotations: readOnlyAnnotations(),
	}, handleListAlarms(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "next_alarm",
		Description: "Return the enabled alarm that will fire soonest, with its firing time.",
		Annotations: readOnlyAnnotations(),
	}, handleNextAlarm(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_alarm",
		Description: "Create a new alarm at a given time of day, with an optional label and repeat days.",
		Annotations: writeAnnotations(),
	}, handleAddAlarm(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "toggle_alarm",
		Description: "Enable or disable an alarm by ID, flipping its current state.",
		Annotations: writeAnnotations(),
	}, handleToggleAlarm(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "remove_alarm",
		Description: "Delete an alarm by ID. This cannot be undone.",
		Annotations: destructiveAnnotations(),
	}, handleRemoveAlarm(store))
}
