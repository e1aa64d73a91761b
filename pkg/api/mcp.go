package api

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mizutori/device-registry/pkg/devicemap"
	"github.com/mizutori/device-registry/pkg/kit"
)

// RegisterMCPTools registers the device-registry MCP tools on the server.
func RegisterMCPTools(srv *server.MCPServer, m *devicemap.Mapper, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	eps := newEndpoints(m, logger)
	registerResolveDevice(srv, eps)
	registerRankCandidates(srv, eps)
	registerListDevices(srv, eps)
}

func registerResolveDevice(srv *server.MCPServer, eps endpoints) {
	tool := mcp.NewTool("resolve_device",
		mcp.WithDescription("Resolve a Japanese device mention (katakana, hiragana, kanji, romanized, full-width) to its canonical English device name, with fuzzy fallback."),
		mcp.WithString("term", mcp.Required(), mcp.Description("The device mention to resolve")),
		mcp.WithNumber("threshold", mcp.Description("Fuzzy similarity threshold in (0,1]; default 0.6")),
	)

	kit.RegisterMCPTool(srv, tool, eps.resolve, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		term, _ := args["term"].(string)
		threshold, _ := args["threshold"].(float64)
		return &kit.MCPDecodeResult{Request: &resolveReq{Term: term, Threshold: threshold}}, nil
	})
}

func registerRankCandidates(srv *server.MCPServer, eps endpoints) {
	tool := mcp.NewTool("rank_device_candidates",
		mcp.WithDescription("Rank the closest canonical devices for an ambiguous mention, descending by similarity score."),
		mcp.WithString("term", mcp.Required(), mcp.Description("The device mention to rank candidates for")),
		mcp.WithNumber("max", mcp.Description("Maximum number of candidates; default 5")),
	)

	kit.RegisterMCPTool(srv, tool, eps.rank, func(req mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		args := req.GetArguments()
		term, _ := args["term"].(string)
		max, _ := args["max"].(float64)
		return &kit.MCPDecodeResult{Request: &rankReq{Term: term, Max: int(max)}}, nil
	})
}

func registerListDevices(srv *server.MCPServer, eps endpoints) {
	tool := mcp.NewTool("list_devices",
		mcp.WithDescription("List all supported canonical device names with their known Japanese and romanized aliases."),
	)

	kit.RegisterMCPTool(srv, tool, eps.listDevices, func(_ mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	})
}
