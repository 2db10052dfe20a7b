package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/Akhsuna07/contentdeck/internal/content"
	"github.com/Akhsuna07/contentdeck/internal/database/repository"
)

// SeedDefaults installs a demo namespace for new databases: a few extraction
// graphs with policies, plus a batch of content spread across them.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	graphRepo := repository.NewGraphRepo(db)
	existing, err := graphRepo.List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	graphs := []content.Graph{
		{Name: "invoices", Policies: []content.Policy{
			{Name: "pdf-text", Extractor: "tensorlake/pdf-extractor"},
			{Name: "table-extract", Extractor: "tensorlake/table-extractor"},
			{Name: "embed", Extractor: "tensorlake/minilm-l6"},
		}},
		{Name: "wiki", Policies: []content.Policy{
			{Name: "chunk", Extractor: "tensorlake/chunk-extractor"},
			{Name: "embed", Extractor: "tensorlake/minilm-l6"},
		}},
		{Name: "tickets", Policies: []content.Policy{
			{Name: "classify", Extractor: "tensorlake/zero-shot-classifier"},
		}},
	}
	for _, g := range graphs {
		if err := graphRepo.Upsert(ctx, g.Name); err != nil {
			return err
		}
		for i, p := range g.Policies {
			p.ID = uuid.NewString()
			if err := graphRepo.InsertPolicy(ctx, g.Name, p, i); err != nil {
				return err
			}
		}
	}

	contentRepo := repository.NewContentRepo(db)
	sources := []string{"upload", "crawler", "api"}
	now := Now().Unix()
	for i := 0; i < 12; i++ {
		names := []string{graphs[i%len(graphs)].Name}
		if i%4 == 0 {
			names = append(names, graphs[(i+1)%len(graphs)].Name)
		}
		rec := content.Record{
			ID:         ulid.Make().String(),
			GraphNames: names,
			Labels: map[string]any{
				"source": sources[rand.Intn(len(sources))],
				"batch":  fmt.Sprintf("demo-%02d", i+1),
			},
			CreatedAt: now - int64(i)*3600,
		}
		if err := contentRepo.Insert(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
