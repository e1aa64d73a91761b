package devicemap

import (
	"os"
	"path/filepath"
	"testing"
)

func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuildIndexWithOverlay(t *testing.T) {
	overlay := []aliasGroup{
		{"iPhone", []string{"アイフォン16", "iphone 16"}},
		{"Steam Deck", []string{"スチームデッキ", "steam deck"}},
	}
	idx := buildIndex(deviceMappings, deviceAliases, overlay)

	if got := idx.byKey[Normalize("アイフォン16")]; got != "iPhone" {
		t.Errorf("overlay alias resolved to %q, want iPhone", got)
	}
	if got := idx.byKey[Normalize("スチームデッキ")]; got != "Steam Deck" {
		t.Errorf("overlay alias resolved to %q, want Steam Deck", got)
	}

	// A new canonical name joins the supported set.
	found := false
	for _, d := range idx.supported {
		if d == "Steam Deck" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Steam Deck missing from supported devices")
	}

	// Overlay aliases count toward the alias total but never the keyword set.
	base := buildIndex(deviceMappings, deviceAliases, nil)
	if idx.totalAliases != base.totalAliases+4 {
		t.Errorf("totalAliases = %d, want %d", idx.totalAliases, base.totalAliases+4)
	}
	if len(idx.keywords) != len(base.keywords) {
		t.Error("overlay aliases leaked into the keyword set")
	}
}

func TestRegisterOverlayErrors(t *testing.T) {
	if err := RegisterOverlay(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeOverlay(t, "devices: [not, a, map]")
	if err := RegisterOverlay(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}

	empty := writeOverlay(t, "devices:\n  iPhone: []\n")
	if err := RegisterOverlay(empty); err == nil {
		t.Error("expected error for device with no aliases")
	}
}

func TestRegisterOverlayAfterBuild(t *testing.T) {
	// Force the shared index to exist, as it would after any lookup.
	New().Stats()

	path := writeOverlay(t, "devices:\n  iPhone:\n    - \"アイフォン17\"\n")
	if err := RegisterOverlay(path); err == nil {
		t.Error("expected error registering an overlay after the index was built")
	}
}
