// Package query rewrites repair-search queries so that Japanese device
// mentions appear under their canonical English names. It is the
// preprocessing step in front of the guide-search service.
package query

import (
	"strings"

	"github.com/mizutori/device-registry/pkg/devicemap"
)

// FuzzyThreshold is the similarity floor for the per-token fuzzy fallback.
// Stricter than the engine default: a token substitution is destructive, so
// it needs more confidence than an interactive suggestion.
const FuzzyThreshold = 0.7

// Preprocessor rewrites queries token by token against a device mapper.
type Preprocessor struct {
	mapper    *devicemap.Mapper
	threshold float64
}

// New returns a Preprocessor with the default fuzzy threshold.
func New(m *devicemap.Mapper) *Preprocessor {
	return &Preprocessor{mapper: m, threshold: FuzzyThreshold}
}

// NewWithThreshold overrides the fuzzy fallback threshold.
func NewWithThreshold(m *devicemap.Mapper, threshold float64) *Preprocessor {
	return &Preprocessor{mapper: m, threshold: threshold}
}

// Rewrite splits q on Unicode whitespace (including the full-width space),
// resolves each token exactly and then fuzzily, and substitutes the
// canonical device name. Unrecognized tokens pass through unchanged.
func (p *Preprocessor) Rewrite(q string) string {
	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return ""
	}

	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = p.rewriteToken(tok)
	}
	return strings.Join(out, " ")
}

func (p *Preprocessor) rewriteToken(tok string) string {
	if device, ok := p.mapper.Resolve(tok); ok {
		return device
	}
	if m, ok := p.mapper.FindBestMatch(tok, p.threshold); ok {
		return m.Device
	}
	return tok
}

// Devices returns the distinct canonical devices mentioned in q, in order
// of first appearance. Used by callers that filter guides by device.
func (p *Preprocessor) Devices(q string) []string {
	var devices []string
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(q) {
		device, ok := p.mapper.Resolve(tok)
		if !ok {
			m, fuzzy := p.mapper.FindBestMatch(tok, p.threshold)
			if !fuzzy {
				continue
			}
			device = m.Device
		}
		if _, dup := seen[device]; dup {
			continue
		}
		seen[device] = struct{}{}
		devices = append(devices, device)
	}
	return devices
}
