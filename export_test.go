package dsc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportConfigUseless(t *testing.T) {
	if !(ExportConfig{}).IsUseless() {
		t.Fatal("empty config must be useless")
	}
	if err := (ExportConfig{}).ExportHistory([]SwarmSample{{Month: 1}}); err != nil {
		t.Fatal("a useless config must export nothing, silently")
	}
}

func TestExportHistoryCSV(t *testing.T) {
	name := filepath.Join(t.TempDir(), "swarm")
	conf := ExportConfig{
		Filename:     name,
		CSVAppendHdr: func() string { return "note" },
		CSVAppend:    func(s SwarmSample) string { return "ok" },
	}
	history := []SwarmSample{
		{Month: 1, Tiles: 100, Shading: 0.001, DeltaTSurface: -0.1, PowerMW: 25, MeanEff: 0.95},
		{Month: 2, Tiles: 105, Shading: 0.0011, DeltaTSurface: -0.11, PowerMW: 26, MeanEff: 0.945},
	}
	if err := conf.ExportHistory(history); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(name + ".csv")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two samples, got %d lines", len(lines))
	}
	if lines[0] != "month,tiles,shading,deltaTsurface,powerMW,meanEff,note" {
		t.Fatalf("bad header: %s", lines[0])
	}
	if !strings.HasPrefix(lines[1], "1,100,") || !strings.HasSuffix(lines[1], ",ok") {
		t.Fatalf("bad first row: %s", lines[1])
	}
}
