// Package journey drives the invoice batch and renders the extracted
// records.
package journey

import (
	"log/slog"
	"path/filepath"

	"github.com/michaelloftdk/rejsekort-parser/internal/extracting"
	"github.com/michaelloftdk/rejsekort-parser/internal/parsing"
)

// Service processes batches of invoice files into journey records.
type Service struct {
	extractor extracting.TextExtractor
	parser    *parsing.Parser
	db        DB // optional history store, may be nil
	log       *slog.Logger
}

// NewService creates a Service. db may be nil to disable the history store.
func NewService(extractor extracting.TextExtractor, parser *parsing.Parser, db DB, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		extractor: extractor,
		parser:    parser,
		db:        db,
		log:       log,
	}
}

// ProcessFiles extracts and parses every file in turn and returns the
// accumulated records sorted by (date, departure time). A file that cannot
// be decoded or parsed contributes zero records and the batch continues;
// partial success is expected.
func (s *Service) ProcessFiles(paths []string) []parsing.Journey {
	var all []parsing.Journey
	for _, path := range paths {
		all = append(all, s.processFile(path)...)
	}
	parsing.SortJourneys(all)
	return all
}

func (s *Service) processFile(path string) (journeys []parsing.Journey) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("unexpected failure while parsing document",
				"file", path, "panic", r)
			journeys = nil
		}
	}()

	s.log.Info("processing invoice", "file", path)

	text, err := s.extractor.ExtractText(path)
	if err != nil {
		s.log.Error("failed to extract text from document", "file", path, "error", err)
		return nil
	}

	journeys = s.parser.Parse(text, filepath.Base(path))
	if len(journeys) == 0 {
		s.log.Warn("no journeys extracted from document",
			"file", path, "text_preview", preview(text, 500))
		return nil
	}

	s.log.Info("extracted journeys", "file", path,
		"journeys", len(journeys), "date", journeys[0].Date)

	if s.db != nil {
		if err := s.db.SaveImport(filepath.Base(path), journeys); err != nil {
			s.log.Warn("failed to record import in history database",
				"file", path, "error", err)
		}
	}
	return journeys
}

func preview(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max]
}
