// Package report renders daily-report lists as CSV files under a per-project
// folder.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/solarsense-dev/solarsense/internal/models"
)

// Row is one CSV line. Column order and headers are part of the report
// contract.
type Row struct {
	Irradiance  float64 `csv:"Irradiance"`
	Electricity float64 `csv:"Electricity"`
	Date        string  `csv:"Date"`
}

// Builder writes report files below a base directory.
type Builder struct {
	baseDir string
}

// NewBuilder creates a Builder rooted at baseDir.
func NewBuilder(baseDir string) *Builder {
	return &Builder{baseDir: baseDir}
}

// Write renders reports to <baseDir>/<folder>/<filename>, creating the folder
// if absent, and returns the file's path.
func (b *Builder) Write(reports []models.DailyReport, filename, folder string) (string, error) {
	outDir := filepath.Join(b.baseDir, folder)
	outPath := filepath.Join(outDir, filename)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create report folder: %w", err)
	}

	rows := make([]Row, 0, len(reports))

	for _, r := range reports {
		rows = append(rows, Row{
			Irradiance:  r.Irradiance,
			Electricity: r.Electricity,
			Date:        r.Date,
		})
	}

	file, err := os.Create(outPath)

	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return "", fmt.Errorf("write report file: %w", err)
	}

	return outPath, nil
}
