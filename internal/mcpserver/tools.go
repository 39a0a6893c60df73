package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"calc/engine"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const stateURI = "calc://state"

// Register adds the press, state and reset tools and the state resource.
func Register(s *server.MCPServer, sess *Session) {
	addPressTool(s, sess)
	addStateTool(s, sess)
	addResetTool(s, sess)
	addStateResource(s, sess)
}

func addPressTool(s *server.MCPServer, sess *Session) {
	tool := mcp.NewTool("press",
		mcp.WithDescription("Press calculator buttons in order and return the resulting display"),
		mcp.WithString("buttons",
			mcp.Required(),
			mcp.Description(`Whitespace-separated button labels: 0-9 . -/+ % AC + - x ÷ = (aliases: * / C +/-), e.g. "7 + 5 ="`),
		),
	)
	s.AddTool(tool, pressHandler(sess))
}

func pressHandler(sess *Session) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := request.GetArguments()
		labels, ok := args["buttons"].(string)
		if !ok {
			return mcp.NewToolResultError("buttons is required"), nil
		}
		buttons, err := engine.ParseSequence(labels)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error parsing buttons: %v", err)), nil
		}
		return reportResult(sess.Press(buttons...))
	}
}

func addStateTool(s *server.MCPServer, sess *Session) {
	tool := mcp.NewTool("state",
		mcp.WithDescription("Return the calculator display and pending operation without pressing anything"),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return reportResult(sess.State())
	})
}

func addResetTool(s *server.MCPServer, sess *Session) {
	tool := mcp.NewTool("reset",
		mcp.WithDescription("Power-cycle the calculator: display 0 and no pending operation"),
	)
	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return reportResult(sess.Reset())
	})
}

func addStateResource(s *server.MCPServer, sess *Session) {
	res := mcp.NewResource(stateURI,
		"Calculator State",
		mcp.WithResourceDescription("Current display, rendered text and pending operation"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(res, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.MarshalIndent(reportOf(sess.State()), "", "  ")
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      stateURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})
}

func reportResult(st engine.State) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(reportOf(st), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Error encoding state: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
