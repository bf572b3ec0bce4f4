package dsc

import (
	"fmt"
	"os"
	"time"
)

// ExportConfig configures the exporting of a swarm simulation history.
type ExportConfig struct {
	Filename     string
	Timestamp    bool                     // append the export time to the file name
	CSVAppend    func(SwarmSample) string // Custom export (do not include leading comma)
	CSVAppendHdr func() string            // Header for the custom export
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

// ExportHistory writes the monthly samples of a swarm run to a CSV file.
func (c ExportConfig) ExportHistory(history []SwarmSample) error {
	if c.IsUseless() {
		return nil
	}
	name := c.Filename
	if c.Timestamp {
		name = fmt.Sprintf("%s-%s", name, time.Now().Format("2006-01-02-15.04.05"))
	}
	f, err := os.Create(name + ".csv")
	if err != nil {
		return err
	}
	defer f.Close()
	hdr := "month,tiles,shading,deltaTsurface,powerMW,meanEff"
	if c.CSVAppendHdr != nil {
		hdr += "," + c.CSVAppendHdr()
	}
	if _, err := f.WriteString(hdr); err != nil {
		return err
	}
	for _, sample := range history {
		line := fmt.Sprintf("%d,%d,%.8f,%.4f,%.3f,%.6f", sample.Month, sample.Tiles, sample.Shading, sample.DeltaTSurface, sample.PowerMW, sample.MeanEff)
		if c.CSVAppend != nil {
			line += "," + c.CSVAppend(sample)
		}
		if _, err := f.WriteString("\n" + line); err != nil {
			return err
		}
	}
	return nil
}
