package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/compatfix/internal/model"
)

// ReportStore persists and retrieves run reports. Reports are output for
// operators; nothing reads them back to decide what runs.
type ReportStore interface {
	SaveReport(path m.Path, report m.RunReport) error
	LoadReport(path m.Path) (m.RunReport, error)
}

type reportStore struct{}

// NewReportStore constructs a YAML-backed ReportStore.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) SaveReport(path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create report dir: %w", err)
		}
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}

func (rs *reportStore) LoadReport(path m.Path) (m.RunReport, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunReport{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}
