package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/callgrid/callgrid-mcp/internal/callgrid"
)

// API is the slice of the Callgrid client the tools need. Keeping it an
// interface lets registry tests run against a fake without credentials.
type API interface {
	ListCalls(ctx context.Context, q callgrid.ListCallsQuery) (json.RawMessage, error)
	RetrieveTranscripts(ctx context.Context, callIDs []string) (json.RawMessage, error)
	RetrieveCallDetails(ctx context.Context, q callgrid.CallDetailsQuery) (json.RawMessage, error)
	ListUsers(ctx context.Context, cursor string) (json.RawMessage, error)
}

// Registry routes tool invocations to API calls and flattens every outcome
// into the MCP content envelope. A failure anywhere in the chain — unknown
// tool, bad arguments, business rule, transport — becomes an error envelope;
// nothing escapes as a protocol-level fault.
type Registry struct {
	api API
	log *logrus.Logger
}

// NewRegistry creates a Registry over the given API.
func NewRegistry(api API, log *logrus.Logger) *Registry {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Registry{api: api, log: log}
}

// Register adds every catalog tool to the MCP server, routed through
// Dispatch.
func (r *Registry) Register(s *server.MCPServer) {
	for _, tool := range Catalog() {
		name := tool.Name
		s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return r.Dispatch(ctx, name, req.GetArguments()), nil
		})
	}
}

// Dispatch runs one tool invocation and returns its envelope. A nil args
// map means the request carried no arguments at all, which is an error for
// every tool.
func (r *Registry) Dispatch(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	log := r.log.WithFields(logrus.Fields{"invocation": uuid.NewString(), "tool": name})

	raw, err := r.invoke(ctx, name, args)
	if err != nil {
		log.WithError(err).Warn("tool invocation failed")
		return errorResult(err)
	}
	log.Debug("tool invocation ok")
	return textResult(raw)
}

func (r *Registry) invoke(ctx context.Context, name string, args map[string]any) (json.RawMessage, error) {
	if args == nil {
		return nil, errors.New("no arguments provided")
	}

	switch name {
	case ToolListCalls:
		a, err := parseListCallsArgs(args)
		if err != nil {
			return nil, invalidArgs(name, err)
		}
		return r.api.ListCalls(ctx, callgrid.ListCallsQuery{
			FromDateTime: a.FromDateTime,
			ToDateTime:   a.ToDateTime,
			Cursor:       a.Cursor,
		})

	case ToolRetrieveTranscripts:
		a, err := parseTranscriptArgs(args)
		if err != nil {
			return nil, invalidArgs(name, err)
		}
		return r.api.RetrieveTranscripts(ctx, a.CallIDs)

	case ToolRetrieveCallDetails:
		a, err := parseCallDetailsArgs(args)
		if err != nil {
			return nil, invalidArgs(name, err)
		}
		return r.api.RetrieveCallDetails(ctx, callgrid.CallDetailsQuery{
			CallIDs:        a.CallIDs,
			FromDateTime:   a.FromDateTime,
			ToDateTime:     a.ToDateTime,
			PrimaryUserIDs: a.PrimaryUserIDs,
			Context:        a.Context,
			Cursor:         a.Cursor,
		})

	case ToolListUsers:
		a, err := parseListUsersArgs(args)
		if err != nil {
			return nil, invalidArgs(name, err)
		}
		return r.api.ListUsers(ctx, a.Cursor)

	default:
		return nil, fmt.Errorf("Unknown tool: %s", name)
	}
}

func invalidArgs(tool string, err error) error {
	return fmt.Errorf("invalid arguments for %s: %w", tool, err)
}

func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

// textResult re-indents the raw API JSON so it reads well in MCP clients.
func textResult(raw json.RawMessage) *mcp.CallToolResult {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		buf.Reset()
		buf.Write(raw)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: buf.String()}},
	}
}
