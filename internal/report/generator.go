// Package report renders PDF project reports for completed leads. Rendering
// is CPU-bound and runs on a dedicated worker goroutine, never on the
// request path; the engine only enqueues and immediately gets back the URL
// the report will appear at.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"

	"github.com/g4brie11e/chatbot-backend/internal/config"
	"github.com/g4brie11e/chatbot-backend/internal/storage"
)

// URLPrefix is where rendered reports are served from (the static file
// handler serves the report directory under this path).
const URLPrefix = "/reports"

type Generator struct {
	dir  string
	jobs chan storage.Lead
}

// NewGenerator creates the report directory and the job queue.
func NewGenerator(cfg config.ReportConfig) (*Generator, error) {
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create report directory: %w", err)
	}
	return &Generator{
		dir:  cfg.Dir,
		jobs: make(chan storage.Lead, cfg.QueueSize),
	}, nil
}

// Start runs the rendering worker until ctx is cancelled.
func (g *Generator) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case lead := <-g.jobs:
				if err := g.Render(lead); err != nil {
					log.Error().Err(err).Str("session_id", lead.SessionID).Msg("report rendering failed")
				} else {
					log.Info().Str("session_id", lead.SessionID).Msg("report rendered")
				}
			}
		}
	}()
}

// Request enqueues rendering for lead and returns the URL the report will be
// served at. Fire and forget: when the queue is full the job is dropped with
// a log line rather than blocking a chat request.
func (g *Generator) Request(lead storage.Lead) string {
	select {
	case g.jobs <- lead:
	default:
		log.Warn().Str("session_id", lead.SessionID).Msg("report queue full, dropping job")
	}
	return URLPrefix + "/" + fileName(lead.SessionID)
}

// fileName reduces the session id to its base name so the rendered report
// always lands inside the report directory, whatever the id contains.
func fileName(sessionID string) string {
	return filepath.Base(sessionID) + ".pdf"
}

// Render writes the PDF for lead to the report directory.
func (g *Generator) Render(lead storage.Lead) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "Project Request Report", "", 1, "L", false, 0, "")
	pdf.Ln(8)

	fields := []struct{ label, value string }{
		{"Client Name", orDefault(lead.Name, "Unknown")},
		{"Email Address", orDefault(lead.Email, "N/A")},
		{"Budget Estimate", orDefault(lead.Budget, "N/A")},
		{"Language", lead.Language.Name()},
	}
	for _, field := range fields {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(50, 8, field.label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, tr(field.value), "", 1, "L", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Detected Topics:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	topics := "None"
	if len(lead.Topics) > 0 {
		topics = strings.ToUpper(strings.Join(lead.Topics, ", "))
	}
	pdf.CellFormat(0, 8, tr(topics), "", 1, "L", false, 0, "")

	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 8, "Session ID: "+lead.SessionID, "", 1, "L", false, 0, "")

	path := filepath.Join(g.dir, fileName(lead.SessionID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
