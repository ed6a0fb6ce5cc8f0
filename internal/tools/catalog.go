// Package tools exposes the Callgrid API as MCP tools: a static catalog of
// descriptors, per-tool argument parsing, and a registry that dispatches
// invocations to the API client.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Canonical tool names.
const (
	ToolListCalls           = "list_calls"
	ToolRetrieveTranscripts = "retrieve_transcripts"
	ToolRetrieveCallDetails = "retrieve_call_details"
	ToolListUsers           = "list_users"
)

var stringItems = map[string]any{"type": "string"}

// Catalog returns the static tool descriptors advertised to MCP clients.
// The schemas are discovery hints; enforcement happens in args.go.
func Catalog() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolListCalls,
			mcp.WithDescription("List calls within a date range. Returns call IDs, titles, and basic metadata. Pass the returned cursor to fetch the next page."),
			mcp.WithString("fromDateTime",
				mcp.Description("Start of the range, ISO-8601 (e.g. 2026-01-01T00:00:00Z)")),
			mcp.WithString("toDateTime",
				mcp.Description("End of the range, ISO-8601")),
			mcp.WithString("cursor",
				mcp.Description("Opaque cursor from a previous page")),
		),
		mcp.NewTool(ToolRetrieveTranscripts,
			mcp.WithDescription("Retrieve full transcripts for the given call IDs."),
			mcp.WithArray("callIds",
				mcp.Description("Call IDs to fetch transcripts for"),
				mcp.Required(),
				mcp.Items(stringItems)),
		),
		mcp.NewTool(ToolRetrieveCallDetails,
			mcp.WithDescription("Retrieve extensive call details including parties, interaction stats, and CRM linkage. At least one of callIds, fromDateTime, toDateTime, or primaryUserIds must be provided."),
			mcp.WithArray("callIds",
				mcp.Description("Call IDs to fetch"),
				mcp.Items(stringItems)),
			mcp.WithString("fromDateTime",
				mcp.Description("Start of the range, ISO-8601")),
			mcp.WithString("toDateTime",
				mcp.Description("End of the range, ISO-8601")),
			mcp.WithArray("primaryUserIds",
				mcp.Description("Restrict to calls owned by these users"),
				mcp.Items(stringItems)),
			mcp.WithString("context",
				mcp.Description("Detail level: Basic or Extended. Defaults to Extended, which includes the CRM linkage fields.")),
			mcp.WithString("cursor",
				mcp.Description("Opaque cursor from a previous page")),
		),
		mcp.NewTool(ToolListUsers,
			mcp.WithDescription("List workspace users with their IDs and email addresses."),
			mcp.WithString("cursor",
				mcp.Description("Opaque cursor from a previous page")),
		),
	}
}
