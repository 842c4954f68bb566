package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is a single solar-panel installation being monitored: a location
// plus the panel geometry the energy estimate depends on.
type Product struct {
	gorm.Model

	ProjectID   uint    `gorm:"not null;index"`
	Name        string  `gorm:"not null"`
	Lat         float64 `gorm:"not null"`
	Lon         float64 `gorm:"not null"`
	Tilt        float64 `gorm:"not null"`
	Orientation string  `gorm:"not null"`
	Area        float64 `gorm:"not null"`
	IsClosed    bool    `gorm:"not null;default:false"`

	// DailyReports holds the accumulated per-day records as a JSON document,
	// mirroring the embedded list the product is reported on.
	DailyReports datatypes.JSON `gorm:"type:jsonb"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}

// DailyReport is one day's weather observation and the electricity estimated
// from it, embedded in the owning product.
type DailyReport struct {
	Irradiance  float64 `json:"irradiance"`
	Date        string  `json:"date"`
	Electricity float64 `json:"electricity"`
}

// Reports decodes the embedded daily-report list. A product with no recorded
// days yields an empty slice.
func (p *Product) Reports() ([]DailyReport, error) {
	if len(p.DailyReports) == 0 {
		return nil, nil
	}

	var reports []DailyReport

	if err := json.Unmarshal(p.DailyReports, &reports); err != nil {
		return nil, err
	}

	return reports, nil
}

// SetReports replaces the embedded daily-report list.
func (p *Product) SetReports(reports []DailyReport) error {
	raw, err := json.Marshal(reports)

	if err != nil {
		return err
	}

	p.DailyReports = datatypes.JSON(raw)
	return nil
}

// AppendReport adds one day's record, replacing any existing record for the
// same date so a re-run of the daily update stays idempotent.
func (p *Product) AppendReport(report DailyReport) error {
	reports, err := p.Reports()

	if err != nil {
		return err
	}

	replaced := false

	for i := range reports {
		if reports[i].Date == report.Date {
			reports[i] = report
			replaced = true
			break
		}
	}

	if !replaced {
		reports = append(reports, report)
	}

	return p.SetReports(reports)
}
