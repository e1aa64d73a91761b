package devicemap

import (
	"sort"
	"strings"
	"sync"
	"testing"
)

func TestResolve(t *testing.T) {
	m := New()
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"katakana", "スイッチ", "Nintendo Switch", true},
		{"hiragana", "すいっち", "Nintendo Switch", true},
		{"romanized", "switch", "Nintendo Switch", true},
		{"uppercase", "SWITCH", "Nintendo Switch", true},
		{"full-width", "ＳＷＩＴＣＨ", "Nintendo Switch", true},
		{"kanji", "任天堂", "Nintendo Switch", true},
		{"trailing symbols", "スイッチ!@#", "Nintendo Switch", true},
		{"alias list entry", "アイフォン13", "iPhone", true},
		{"alias with space", "switch lite", "Nintendo Switch", true},
		{"model number", "プレステ5", "PlayStation 5", true},
		{"laptop", "ノートパソコン", "Laptop", true},
		{"smartphone", "すまほ", "Smartphone", true},
		{"airpods", "えあぽっず", "AirPods", true},
		{"unknown", "invalid_device", "", false},
		{"empty", "", "", false},
		{"whitespace only", "　　", "", false},
		{"script tag", "<script>alert(1)</script>", "", false},
		{"over length", strings.Repeat("あ", 1001), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := m.Resolve(tt.input)
			if found != tt.found || got != tt.want {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.input, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	m := New()
	first, firstOK := m.Resolve("プレステ")
	for i := 0; i < 10; i++ {
		got, ok := m.Resolve("プレステ")
		if got != first || ok != firstOK {
			t.Fatalf("Resolve not deterministic: (%q, %v) then (%q, %v)", first, firstOK, got, ok)
		}
	}
}

func TestFindBestMatch(t *testing.T) {
	m := New()

	match, ok := m.FindBestMatch("すいち", 0.6)
	if !ok {
		t.Fatal("FindBestMatch(すいち, 0.6) found no match")
	}
	if match.Device != "Nintendo Switch" {
		t.Errorf("device = %q, want Nintendo Switch", match.Device)
	}
	if match.Score < 0.6 || match.Score > 1 {
		t.Errorf("score = %f, want in [0.6, 1]", match.Score)
	}

	if _, ok := m.FindBestMatch("qqqq", 0.6); ok {
		t.Error("FindBestMatch(qqqq) matched, want no match")
	}
	if _, ok := m.FindBestMatch("<script>alert(1)</script>", 0.1); ok {
		t.Error("FindBestMatch accepted rejected input")
	}
}

func TestFindBestMatchThresholdMonotonic(t *testing.T) {
	m := New()
	inputs := []string{"すいち", "あいふお", "ぷれすて", "のーと", "xbx"}
	thresholds := []float64{0.3, 0.5, 0.6, 0.8, 0.95}
	for _, input := range inputs {
		for i := 1; i < len(thresholds); i++ {
			lo, hi := thresholds[i-1], thresholds[i]
			_, foundHi := m.FindBestMatch(input, hi)
			_, foundLo := m.FindBestMatch(input, lo)
			if foundHi && !foundLo {
				t.Errorf("FindBestMatch(%q) found at %.2f but not at %.2f", input, hi, lo)
			}
		}
	}
}

func TestPossibleMatches(t *testing.T) {
	m := New()

	matches := m.PossibleMatches("ぷれすて", 5)
	if len(matches) == 0 {
		t.Fatal("PossibleMatches(ぷれすて) returned nothing")
	}
	if len(matches) > 5 {
		t.Errorf("got %d matches, want at most 5", len(matches))
	}
	if matches[0].Device != "PlayStation" || matches[0].Score != 1.0 {
		t.Errorf("top match = %+v, want PlayStation at 1.0", matches[0])
	}

	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("matches not sorted descending at %d: %f > %f", i, matches[i].Score, matches[i-1].Score)
		}
	}

	seen := make(map[Match]struct{})
	for _, c := range matches {
		if _, dup := seen[c]; dup {
			t.Errorf("duplicate candidate %+v", c)
		}
		seen[c] = struct{}{}
	}
}

func TestPossibleMatchesEdgeCases(t *testing.T) {
	m := New()
	if got := m.PossibleMatches("スイッチ", 0); got != nil {
		t.Errorf("max=0 returned %v, want nil", got)
	}
	if got := m.PossibleMatches("", 5); got != nil {
		t.Errorf("empty input returned %v, want nil", got)
	}
	if got := m.PossibleMatches("../../../etc/passwd", 5); got != nil {
		t.Errorf("rejected input returned %v, want nil", got)
	}
}

func TestIsDeviceName(t *testing.T) {
	m := New()
	tests := []struct {
		input string
		want  bool
	}{
		{"プレステ5", true},
		{"スイッチ", true},
		{"ns", true}, // exact key, even though short
		{"これはスイッチの問題です", true}, // keyword embedded in longer text
		{"アイフォンが動かない", true},
		{"invalid_device", false},
		{"", false},
		{"<script>alert(1)</script>", false},
	}
	for _, tt := range tests {
		if got := m.IsDeviceName(tt.input); got != tt.want {
			t.Errorf("IsDeviceName(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAliases(t *testing.T) {
	m := New()

	aliases := m.Aliases("Nintendo Switch")
	if len(aliases) == 0 {
		t.Fatal("Aliases(Nintendo Switch) is empty")
	}
	for _, want := range []string{"スイッチ", "switch", "switch lite"} {
		found := false
		for _, a := range aliases {
			if a == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Aliases(Nintendo Switch) missing %q", want)
		}
	}

	if got := m.Aliases("Nonexistent Device"); got != nil {
		t.Errorf("Aliases(Nonexistent Device) = %v, want nil", got)
	}
}

func TestSupportedDevices(t *testing.T) {
	m := New()
	devices := m.SupportedDevices()
	if !sort.StringsAreSorted(devices) {
		t.Error("SupportedDevices not sorted")
	}
	for _, want := range []string{"Nintendo Switch", "iPhone", "PlayStation 5", "VR Headset"} {
		found := false
		for _, d := range devices {
			if d == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("SupportedDevices missing %q", want)
		}
	}
}

func TestStats(t *testing.T) {
	m := New()
	stats := m.Stats()

	if stats.TotalMappings != len(deviceMappings) {
		t.Errorf("TotalMappings = %d, want %d", stats.TotalMappings, len(deviceMappings))
	}
	wantAliases := 0
	for _, g := range deviceAliases {
		wantAliases += len(g.aliases)
	}
	if stats.TotalAliases != wantAliases {
		t.Errorf("TotalAliases = %d, want %d", stats.TotalAliases, wantAliases)
	}
	if stats.NormalizedMappings == 0 || stats.NormalizedMappings > stats.TotalMappings+stats.TotalAliases {
		t.Errorf("NormalizedMappings = %d out of expected range", stats.NormalizedMappings)
	}
	if stats.DeviceKeywords <= stats.TotalMappings {
		t.Errorf("DeviceKeywords = %d, expected substring expansion beyond %d", stats.DeviceKeywords, stats.TotalMappings)
	}
	if stats.SupportedDevices != len(m.SupportedDevices()) {
		t.Errorf("SupportedDevices = %d, want %d", stats.SupportedDevices, len(m.SupportedDevices()))
	}
}

func TestMappersShareIndex(t *testing.T) {
	if getIndex() != getIndex() {
		t.Fatal("getIndex returned different instances")
	}
	a, b := New(), NewWithScorer(JaroWinklerScorer{})
	if a.Stats() != b.Stats() {
		t.Error("mappers disagree on shared dictionary stats")
	}
}

func TestConcurrentLookups(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := New()
			if got, ok := m.Resolve("スイッチ"); !ok || got != "Nintendo Switch" {
				t.Errorf("concurrent Resolve = (%q, %v)", got, ok)
			}
			m.IsDeviceName("プレステ5")
			m.PossibleMatches("すいち", 3)
		}()
	}
	wg.Wait()
}
