// Package services holds the report-generation workflow: the project state
// machine triggered on demand and the daily data update driven by the
// scheduler.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/solarsense-dev/solarsense/db"
	"github.com/solarsense-dev/solarsense/internal/dateutil"
	apperrors "github.com/solarsense-dev/solarsense/internal/errors"
	"github.com/solarsense-dev/solarsense/internal/mailer"
	"github.com/solarsense-dev/solarsense/internal/models"
	"github.com/solarsense-dev/solarsense/internal/solar"
	"github.com/solarsense-dev/solarsense/internal/weatherbit"
	"gorm.io/gorm"
)

// WeatherSource fetches daily history for one location.
type WeatherSource interface {
	History(ctx context.Context, location string, lat, lon float64, startDate, endDate string) ([]weatherbit.Observation, error)
}

// MailSender delivers one message with attachments.
type MailSender interface {
	Send(to, subject, body string, attachments []mailer.Attachment) error
}

// FileBuilder writes a daily-report list to a named file in a named folder.
type FileBuilder interface {
	Write(reports []models.DailyReport, filename, folder string) (string, error)
}

// reportableAge is the project age, in days, after which the full report is
// considered due.
const reportableAge = 30

// ReportService orchestrates weather fetches, energy estimation, CSV
// generation and mail dispatch for projects.
type ReportService struct {
	weather    WeatherSource
	files      FileBuilder
	mail       MailSender
	clock      clockwork.Clock
	fetchDelay time.Duration

	// notify, when set, is called with a project id after its data changed.
	notify func(projectID uint)
}

// NewReportService wires a ReportService. fetchDelay paces sequential
// provider calls; pass a fake clock in tests to skip the real waiting.
func NewReportService(weather WeatherSource, files FileBuilder, mail MailSender, clock clockwork.Clock, fetchDelay time.Duration) *ReportService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &ReportService{
		weather:    weather,
		files:      files,
		mail:       mail,
		clock:      clock,
		fetchDelay: fetchDelay,
	}
}

// SetNotifier registers a callback invoked after a project's data changes.
func (s *ReportService) SetNotifier(notify func(projectID uint)) {
	s.notify = notify
}

// GenerateProjectReport runs the full report state machine for one project:
// for every open product it fetches thirty days of history, estimates the
// generated electricity, writes a CSV and closes the product; then it mails
// all generated files to the owner and closes the project.
//
// Partial progress is not rolled back: a failure after some products closed
// leaves them closed. The caller sees the first error and the project stays
// open.
func (s *ReportService) GenerateProjectReport(ctx context.Context, ownerID uint, ownerEmail string, projectID uint) (*models.Project, error) {
	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, err
	}

	if project.OwnerID != ownerID {
		return nil, apperrors.ErrNotOwner
	}

	if project.IsClosed {
		return nil, apperrors.ErrProjectClosed
	}

	var products []models.Product

	if err := db.DB.Where("project_id = ? AND is_closed = ?", project.ID, false).Find(&products).Error; err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return nil, apperrors.ErrNoOpenProducts
	}

	startDate, endDate := dateutil.ReportWindow(s.clock.Now())

	var attachments []mailer.Attachment

	for i := range products {
		product := &products[i]

		if i > 0 && s.fetchDelay > 0 {
			// Pace sequential provider calls to respect rate limits.
			s.clock.Sleep(s.fetchDelay)
		}

		observations, err := s.weather.History(ctx, product.Name, product.Lat, product.Lon, startDate, endDate)

		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrWeatherUpstream, err)
		}

		reports := estimateReports(observations, product)

		filename := product.Name + ".csv"
		path, err := s.files.Write(reports, filename, project.Name)

		if err != nil {
			return nil, fmt.Errorf("building report for %s: %w", product.Name, err)
		}

		if err := product.SetReports(reports); err != nil {
			return nil, fmt.Errorf("storing reports for %s: %w", product.Name, err)
		}

		product.IsClosed = true

		if err := db.DB.Save(product).Error; err != nil {
			return nil, err
		}

		attachments = append(attachments, mailer.Attachment{Filename: filename, Path: path})
	}

	subject := fmt.Sprintf("Energy Report for %s", project.Name)
	body := fmt.Sprintf("Please find the reports for products in the project %s in the attachments below", project.Name)

	if err := s.mail.Send(ownerEmail, subject, body, attachments); err != nil {
		return nil, err
	}

	project.IsClosed = true

	if err := db.DB.Save(&project).Error; err != nil {
		return nil, err
	}

	if s.notify != nil {
		s.notify(project.ID)
	}

	return &project, nil
}

// RunDaily updates every open product of every open project with the latest
// day's weather and energy estimate. Each product is processed independently:
// a failure is logged, collected, and the run carries on.
func (s *ReportService) RunDaily(ctx context.Context, now time.Time) error {
	var projects []models.Project

	if err := db.DB.Where("is_closed = ?", false).Find(&projects).Error; err != nil {
		return err
	}

	startDate, endDate := dateutil.DailyWindow(now)

	var errs []error
	first := true

	for _, project := range projects {
		if age := int(now.Sub(project.CreatedAt).Hours() / 24); age >= reportableAge {
			// Full-report delivery stays on demand through the API; the
			// scheduler only records daily data.
			log.Printf("Project %d (%s) is %d days old and due for its full report", project.ID, project.Name, age)
		}

		var products []models.Product

		if err := db.DB.Where("project_id = ? AND is_closed = ?", project.ID, false).Find(&products).Error; err != nil {
			log.Printf("Failed to list products for project %d: %v", project.ID, err)
			errs = append(errs, err)
			continue
		}

		updated := false

		for i := range products {
			product := &products[i]

			if !first && s.fetchDelay > 0 {
				s.clock.Sleep(s.fetchDelay)
			}
			first = false

			if err := s.updateProductDay(ctx, product, startDate, endDate); err != nil {
				log.Printf("Daily update failed for product %d (%s): %v", product.ID, product.Name, err)
				errs = append(errs, err)
				continue
			}

			updated = true
		}

		if updated && s.notify != nil {
			s.notify(project.ID)
		}
	}

	if len(errs) == 0 {
		log.Printf("Daily update complete: %d open projects processed", len(projects))
	}

	return errors.Join(errs...)
}

func (s *ReportService) updateProductDay(ctx context.Context, product *models.Product, startDate, endDate string) error {
	observations, err := s.weather.History(ctx, product.Name, product.Lat, product.Lon, startDate, endDate)

	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrWeatherUpstream, err)
	}

	for _, obs := range observations {
		electricity := solar.Estimate(obs.SolarRad, product.Area, product.Tilt, product.Orientation)

		if err := product.AppendReport(models.DailyReport{
			Irradiance:  obs.MaxDNI,
			Date:        obs.Date,
			Electricity: electricity,
		}); err != nil {
			return err
		}
	}

	return db.DB.Save(product).Error
}

func estimateReports(observations []weatherbit.Observation, product *models.Product) []models.DailyReport {
	reports := make([]models.DailyReport, 0, len(observations))

	for _, obs := range observations {
		reports = append(reports, models.DailyReport{
			Irradiance:  obs.MaxDNI,
			Date:        obs.Date,
			Electricity: solar.Estimate(obs.SolarRad, product.Area, product.Tilt, product.Orientation),
		})
	}

	return reports
}
