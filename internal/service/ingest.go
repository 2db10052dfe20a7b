package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/Akhsuna07/contentdeck/internal/content"
	"github.com/Akhsuna07/contentdeck/internal/database"
	"github.com/Akhsuna07/contentdeck/internal/database/repository"
)

// IngestService imports content records from JSON exports.
type IngestService struct {
	Content *repository.ContentRepo
	Graphs  *repository.GraphRepo

	graphCache map[string]bool
}

type IngestResult struct {
	Imported int
	Skipped  int
	Errors   []error
}

// ImportJSON ingests a JSON array of content records. Records without an id
// get a fresh ULID, records without memberships fall back to defaultGraph
// when one is given, and duplicate ids are skipped.
func (s *IngestService) ImportJSON(ctx context.Context, r io.Reader, defaultGraph string) (IngestResult, error) {
	res := IngestResult{}
	data, err := io.ReadAll(r)
	if err != nil {
		return res, fmt.Errorf("read input: %w", err)
	}

	records := content.DecodeRecords(data)
	if len(records) == 0 {
		// DecodeRecords swallows malformed input; surface it here so a CLI
		// import of the wrong file does not look like a clean no-op.
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] != '[' {
			res.Errors = append(res.Errors, errors.New("expected a JSON array of records"))
		}
		return res, nil
	}

	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = ulid.Make().String()
		}
		if len(rec.GraphNames) == 0 && defaultGraph != "" {
			rec.GraphNames = []string{defaultGraph}
		}
		if rec.CreatedAt == 0 {
			rec.CreatedAt = database.Now().Unix()
		}

		registered := true
		for _, name := range rec.GraphNames {
			if err := s.ensureGraph(ctx, name); err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("record %d graph %s: %w", i+1, name, err))
				registered = false
				break
			}
		}
		if !registered {
			continue
		}

		if err := s.Content.Insert(ctx, rec); err != nil {
			// skip duplicates on unique constraint
			if strings.Contains(err.Error(), "UNIQUE") {
				res.Skipped++
				continue
			}
			res.Errors = append(res.Errors, fmt.Errorf("record %d insert: %w", i+1, err))
			continue
		}
		res.Imported++
	}
	return res, nil
}

func (s *IngestService) ensureGraph(ctx context.Context, name string) error {
	if s.graphCache == nil {
		s.graphCache = make(map[string]bool)
	}
	if s.graphCache[name] {
		return nil
	}
	if err := s.Graphs.Upsert(ctx, name); err != nil {
		return err
	}
	s.graphCache[name] = true
	return nil
}
