package repository

import (
	"context"
	"database/sql"

	"github.com/Akhsuna07/contentdeck/internal/content"
)

// GraphRepo handles extraction graphs and their policies.
type GraphRepo struct {
	db *sql.DB
}

func NewGraphRepo(db *sql.DB) *GraphRepo {
	return &GraphRepo{db: db}
}

func (r *GraphRepo) Upsert(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO extraction_graphs(name)
	VALUES (?)
	ON CONFLICT(name) DO NOTHING;
	`, name)
	return err
}

func (r *GraphRepo) InsertPolicy(ctx context.Context, graphName string, p content.Policy, position int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO extraction_policies(id, graph_name, name, extractor, position)
	VALUES(?, ?, ?, ?, ?);
	`, p.ID, graphName, p.Name, p.Extractor, position)
	return err
}

// List returns graphs in registration order, each with its policies in
// pipeline order.
func (r *GraphRepo) List(ctx context.Context) ([]content.Graph, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM extraction_graphs ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]content.Graph, 0, len(names))
	for _, name := range names {
		policies, err := r.fetchPolicies(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, content.Graph{Name: name, Policies: policies})
	}
	return out, nil
}

func (r *GraphRepo) fetchPolicies(ctx context.Context, graphName string) ([]content.Policy, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, extractor FROM extraction_policies WHERE graph_name = ? ORDER BY position`, graphName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var policies []content.Policy
	for rows.Next() {
		var p content.Policy
		if err := rows.Scan(&p.ID, &p.Name, &p.Extractor); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}
