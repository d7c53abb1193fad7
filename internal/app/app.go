package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ecotech/internal/airquality"
	"ecotech/internal/config"
	"ecotech/internal/hash"
	"ecotech/internal/hr"
	"ecotech/internal/report"
	"ecotech/internal/store"
)

// App is the application layer between the CLI and HRService.
// It constructs all dependencies from config and manages the store
// lifecycle on Close. The store handle is built here explicitly; there
// is no process-wide connection singleton.
type App struct {
	cfg     *config.Config
	store   hr.Store
	service *hr.HRService
	air     *airquality.Client
	logFile *os.File
}

// NewApp creates a fully wired App from the given config. Schema
// creation is idempotent and happens while opening the store.
// The caller must call Close when done.
func NewApp(cfg *config.Config) (*App, error) {
	st, err := store.NewStoreFromConfig(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}

	// Account digests are always bcrypt; only the employee table may be
	// configured for legacy-compatible sha256 digests.
	accountHasher := hash.NewBcryptHasher()
	employeeHasher, err := hash.NewHasher(cfg.Auth.EmployeeHash)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating employee hasher: %w", err)
	}

	runID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, runID)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := hr.NewHRService(st, accountHasher, employeeHasher, &slogAdapter{l: logger}, hr.RealClock{}, hr.UUIDGenerator{})

	return &App{
		cfg:     cfg,
		store:   st,
		service: svc,
		air:     airquality.NewClient(cfg.Air),
		logFile: logFile,
	}, nil
}

// Service returns the entity lifecycle and auth operations.
func (a *App) Service() *hr.HRService {
	return a.service
}

// Air returns the air-quality API client.
func (a *App) Air() *airquality.Client {
	return a.air
}

// MaxLoginAttempts returns the bounded retry count for interactive login.
func (a *App) MaxLoginAttempts() int {
	if a.cfg.Auth.MaxAttempts > 0 {
		return a.cfg.Auth.MaxAttempts
	}
	return 3
}

// DefaultCity returns the configured air-quality city.
func (a *App) DefaultCity() string {
	if a.cfg.Air.DefaultCity != "" {
		return a.cfg.Air.DefaultCity
	}
	return "Mexico"
}

// ExportTimesheet writes the timesheet CSV report. An empty path picks
// the configured output directory (or base dir) and the default name.
// Returns the path written.
func (a *App) ExportTimesheet(path string) (string, error) {
	if path == "" {
		dir := a.cfg.Report.OutputDir
		if dir == "" {
			dir = a.cfg.BaseDir
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating report directory: %w", err)
		}
		path = filepath.Join(dir, "reporte_timesheets.csv")
	}

	entries, err := a.service.ListTimeEntries()
	if err != nil {
		return "", fmt.Errorf("loading time entries: %w", err)
	}

	if err := report.ExportTimesheet(path, entries); err != nil {
		return "", err
	}
	return path, nil
}

// FetchAirQuality retrieves the current reading for a city.
func (a *App) FetchAirQuality(city string) (*airquality.Report, error) {
	if city == "" {
		city = a.DefaultCity()
	}
	return a.air.Fetch(context.Background(), city)
}

// Close releases the store handle and the log file.
func (a *App) Close() error {
	var firstErr error

	if err := a.store.Close(); err != nil {
		firstErr = fmt.Errorf("closing store: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}
