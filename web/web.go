// Package web provides a small HTTP server exposing rendered statements as
// JSON for host integrations.
//
// SECURITY WARNING: the server has no authentication and should only be bound
// to localhost. File access is restricted to the workbook directory.
package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ledgersheet-dev/ledgersheet/loader"
	"github.com/ledgersheet-dev/ledgersheet/report"
	"github.com/ledgersheet-dev/ledgersheet/telemetry"
)

type Server struct {
	Port         int
	Host         string
	Version      string
	CommitSHA    string
	WatchEnabled bool

	workbookDir string

	mu       sync.RWMutex
	workbook *loader.Workbook
	// reports caches built statements until the workbook changes.
	reports map[report.StatementType]*report.Report
}

func New(port int, workbookDir string) *Server {
	return &Server{
		Port:        port,
		Host:        "127.0.0.1",
		workbookDir: workbookDir,
	}
}

func (s *Server) Start(ctx context.Context) error {
	collector := telemetry.FromContext(ctx)
	timer := collector.Start(fmt.Sprintf("web.start %s:%d", s.Host, s.Port))
	defer timer.End()

	if s.workbookDir == "" {
		return fmt.Errorf("workbook directory is required")
	}

	loadTimer := timer.Child(fmt.Sprintf("web.load_workbook %s", filepath.Base(s.workbookDir)))
	if err := s.reloadWorkbook(ctx); err != nil {
		loadTimer.End()
		return fmt.Errorf("failed to load workbook: %w", err)
	}
	loadTimer.End()

	if s.WatchEnabled {
		if err := s.startWatcher(ctx); err != nil {
			return fmt.Errorf("failed to start file watcher: %w", err)
		}
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	return http.ListenAndServe(addr, s.setupRouter())
}

func (s *Server) setupRouter() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/statements", s.handleGetStatements)
	mux.HandleFunc("GET /api/version", s.handleGetVersion)
	return mux
}

// reloadWorkbook loads or reloads the workbook from disk and drops any cached
// reports. Caller must NOT hold the mutex.
func (s *Server) reloadWorkbook(ctx context.Context) error {
	ldr := loader.New()
	wb, err := ldr.Load(ctx, s.workbookDir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.workbook = wb
	s.reports = make(map[report.StatementType]*report.Report)
	s.mu.Unlock()

	return nil
}

// statement returns a cached report or builds it from the current workbook.
func (s *Server) statement(ctx context.Context, st report.StatementType) (*report.Report, error) {
	s.mu.RLock()
	rep, ok := s.reports[st]
	wb := s.workbook
	s.mu.RUnlock()
	if ok {
		return rep, nil
	}

	rep, err := report.Build(ctx, wb.Input(), st)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.reports[st] = rep
	s.mu.Unlock()
	return rep, nil
}

// startWatcher watches the workbook directory and its ledger files, reloading
// the workbook when anything changes.
func (s *Server) startWatcher(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(s.workbookDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.workbookDir, err)
	}
	// Ledger files live in a subdirectory; watch it when present.
	if err := watcher.Add(filepath.Join(s.workbookDir, "ledgers")); err != nil {
		log.Printf("Warning: failed to watch ledgers directory: %v", err)
	}

	go s.runWatcher(ctx, watcher)
	return nil
}

// runWatcher processes file system events with debouncing.
func (s *Server) runWatcher(ctx context.Context, watcher *fsnotify.Watcher) {
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		_ = watcher.Close()
	}()

	// Debounce timer - editors often write files in multiple steps.
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			// React to write/create/remove/rename events
			// (Remove/Rename are common in atomic saves).
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				if err := s.reloadWorkbook(ctx); err != nil {
					log.Printf("Failed to reload workbook: %v", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("File watcher error: %v", err)
		}
	}
}
