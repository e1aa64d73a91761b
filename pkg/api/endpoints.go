package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mizutori/device-registry/pkg/devicemap"
	"github.com/mizutori/device-registry/pkg/kit"
)

// Shared request/response types used by both the HTTP and MCP transports.

type resolveReq struct {
	Term      string
	Threshold float64
}

type resolveResponse struct {
	Term       string  `json:"term"`
	Normalized string  `json:"normalized"`
	Device     string  `json:"device,omitempty"`
	Score      float64 `json:"score,omitempty"`
	Method     string  `json:"method,omitempty"` // "exact" or "fuzzy"
	Matched    bool    `json:"matched"`
}

type batchReq struct {
	Terms     []string
	Threshold float64
}

type batchResponse struct {
	Results []resolveResponse `json:"results"`
}

type rankReq struct {
	Term string
	Max  int
}

type rankResponse struct {
	Term       string           `json:"term"`
	Candidates []devicemap.Match `json:"candidates"`
}

type deviceInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
}

type devicesResponse struct {
	Devices []deviceInfo `json:"devices"`
}

type endpoints struct {
	resolve      kit.Endpoint
	resolveBatch kit.Endpoint
	rank         kit.Endpoint
	listDevices  kit.Endpoint
	stats        kit.Endpoint
}

func newEndpoints(m *devicemap.Mapper, logger *slog.Logger) endpoints {
	wrap := func(name string, e kit.Endpoint) kit.Endpoint {
		return kit.Chain(kit.Logging(logger, name))(e)
	}
	return endpoints{
		resolve:      wrap("resolve", resolveEndpoint(m)),
		resolveBatch: wrap("resolve_batch", resolveBatchEndpoint(m)),
		rank:         wrap("rank", rankEndpoint(m)),
		listDevices:  wrap("list_devices", listDevicesEndpoint(m)),
		stats:        wrap("stats", statsEndpoint(m)),
	}
}

func resolveTerm(m *devicemap.Mapper, term string, threshold float64) resolveResponse {
	if threshold <= 0 {
		threshold = devicemap.DefaultThreshold
	}
	resp := resolveResponse{
		Term:       term,
		Normalized: devicemap.Normalize(devicemap.Sanitize(term)),
	}
	if device, ok := m.Resolve(term); ok {
		resp.Device = device
		resp.Score = 1
		resp.Method = "exact"
		resp.Matched = true
		return resp
	}
	if match, ok := m.FindBestMatch(term, threshold); ok {
		resp.Device = match.Device
		resp.Score = match.Score
		resp.Method = "fuzzy"
		resp.Matched = true
	}
	return resp
}

func resolveEndpoint(m *devicemap.Mapper) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*resolveReq)
		return resolveTerm(m, req.Term, req.Threshold), nil
	}
}

func resolveBatchEndpoint(m *devicemap.Mapper) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*batchReq)
		if len(req.Terms) == 0 {
			return nil, fmt.Errorf("terms array is empty")
		}
		if len(req.Terms) > 100 {
			return nil, fmt.Errorf("too many terms (max 100, got %d)", len(req.Terms))
		}
		results := make([]resolveResponse, len(req.Terms))
		for i, term := range req.Terms {
			results[i] = resolveTerm(m, term, req.Threshold)
		}
		return batchResponse{Results: results}, nil
	}
}

func rankEndpoint(m *devicemap.Mapper) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*rankReq)
		max := req.Max
		if max <= 0 {
			max = 5
		}
		candidates := m.PossibleMatches(req.Term, max)
		if candidates == nil {
			candidates = []devicemap.Match{}
		}
		return rankResponse{Term: req.Term, Candidates: candidates}, nil
	}
}

func listDevicesEndpoint(m *devicemap.Mapper) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		names := m.SupportedDevices()
		devices := make([]deviceInfo, len(names))
		for i, name := range names {
			devices[i] = deviceInfo{Name: name, Aliases: m.Aliases(name)}
		}
		return devicesResponse{Devices: devices}, nil
	}
}

func statsEndpoint(m *devicemap.Mapper) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return m.Stats(), nil
	}
}
