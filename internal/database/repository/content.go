package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/Akhsuna07/contentdeck/internal/content"
)

// ContentFilters defines list filters. The table screen lists everything and
// derives its view in memory; the filters exist for direct CLI queries.
type ContentFilters struct {
	Graph      string
	IDContains string
	Limit      int
}

// ContentRepo handles content rows and their graph memberships.
type ContentRepo struct {
	db *sql.DB
}

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{db: db} }

func (r *ContentRepo) Insert(ctx context.Context, rec content.Record) error {
	labels := "{}"
	if len(rec.Labels) > 0 {
		b, err := json.Marshal(rec.Labels)
		if err != nil {
			return err
		}
		labels = string(b)
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO content(id, labels, created_at)
	VALUES(?, ?, ?);
	`, rec.ID, labels, rec.CreatedAt)
	if err != nil {
		return err
	}
	for _, name := range rec.GraphNames {
		if err := r.AttachGraph(ctx, rec.ID, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *ContentRepo) AttachGraph(ctx context.Context, contentID, graphName string) error {
	_, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO content_graphs(content_id, graph_name) VALUES(?, ?)`, contentID, graphName)
	return err
}

func (r *ContentRepo) List(ctx context.Context, f ContentFilters) ([]content.Record, error) {
	var where []string
	var args []interface{}

	if f.Graph != "" {
		where = append(where, "EXISTS (SELECT 1 FROM content_graphs cg WHERE cg.content_id = content.id AND cg.graph_name = ?)")
		args = append(args, f.Graph)
	}
	if f.IDContains != "" {
		// instr rather than LIKE: sqlite LIKE is case-insensitive for ASCII
		// and id search is case-sensitive.
		where = append(where, "instr(id, ?) > 0")
		args = append(args, f.IDContains)
	}

	query := "SELECT id, labels, created_at FROM content"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY rowid"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []content.Record
	for rows.Next() {
		rec, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		names, err := r.fetchGraphNames(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].GraphNames = names
	}
	return out, nil
}

func (r *ContentRepo) fetchGraphNames(ctx context.Context, contentID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT graph_name FROM content_graphs WHERE content_id = ? ORDER BY rowid`, contentID)
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
	return names, rows.Err()
}

func (r *ContentRepo) Get(ctx context.Context, id string) (*content.Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, labels, created_at FROM content WHERE id = ?`, id)
	rec, err := scanContent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	names, err := r.fetchGraphNames(ctx, rec.ID)
	if err != nil {
		return nil, err
	}
	rec.GraphNames = names
	return &rec, nil
}

func (r *ContentRepo) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM content`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// scanContent handles both Row and Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanContent(row scanner) (content.Record, error) {
	var rec content.Record
	var labels string
	if err := row.Scan(&rec.ID, &labels, &rec.CreatedAt); err != nil {
		return content.Record{}, err
	}
	// Rows written by hand may carry malformed labels; treat them as empty
	// rather than failing the whole list.
	_ = json.Unmarshal([]byte(labels), &rec.Labels)
	return rec, nil
}
