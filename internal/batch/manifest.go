package batch

import (
	"encoding/json"
	"os"
)

// Manifest lists the images a batch run produced.
type Manifest struct {
	Mode    string   `json:"mode"`
	Format  string   `json:"format"`
	Entries []Result `json:"entries"`
}

// WriteManifest writes the successful results to path as indented JSON.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Mode:    cfg.Template.Mode.String(),
		Format:  cfg.Format,
		Entries: make([]Result, 0, len(results)),
	}
	for _, r := range results {
		if r.Success {
			m.Entries = append(m.Entries, r)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
