package devicemap

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// An overlay file adds extra aliases (new model years, brand spellings) on
// top of the curated dictionary without rebuilding the binary:
//
//	devices:
//	  iPhone:
//	    - "アイフォン16"
//	    - "iphone 16"
//
// Overlays are read once at startup; the index stays immutable afterward.
type overlayFile struct {
	Devices map[string][]string `yaml:"devices"`
}

var (
	overlayMu     sync.Mutex
	overlayGroups []aliasGroup
	overlayClosed bool
)

// RegisterOverlay merges the alias overlay at path into the shared index.
// It must be called before the first lookup; calling it after the index has
// been built is a startup-ordering bug and returns an error.
func RegisterOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overlay %s: %w", path, err)
	}

	var f overlayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse overlay %s: %w", path, err)
	}

	// Sorted canonical order keeps the index deterministic across runs.
	names := make([]string, 0, len(f.Devices))
	for name, aliases := range f.Devices {
		if name == "" {
			return fmt.Errorf("overlay %s: empty canonical device name", path)
		}
		if len(aliases) == 0 {
			return fmt.Errorf("overlay %s: device %q has no aliases", path, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	overlayMu.Lock()
	defer overlayMu.Unlock()
	if overlayClosed {
		return fmt.Errorf("overlay %s registered after the device index was built", path)
	}
	for _, name := range names {
		overlayGroups = append(overlayGroups, aliasGroup{canonical: name, aliases: f.Devices[name]})
	}
	return nil
}

// takeOverlay hands the registered overlay groups to the index build and
// closes registration.
func takeOverlay() []aliasGroup {
	overlayMu.Lock()
	defer overlayMu.Unlock()
	overlayClosed = true
	return overlayGroups
}
