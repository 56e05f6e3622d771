package schemes

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/dbx"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// row is the shape shared by both scheme tables.
type row struct {
	id, description, functionID string
	params                      scheme.Params
}

func (r *SQLiteRepository) save(ctx context.Context, table string, v row) error {
	params, err := json.Marshal(v.params)
	if err != nil {
		return fmt.Errorf("failed to encode params of %s[%s]: %w", table, v.id, err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO `+table+` (id, description, function_id, params) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			description = excluded.description,
			function_id = excluded.function_id,
			params      = excluded.params
	`, v.id, v.description, v.functionID, string(params))
	if err != nil {
		return fmt.Errorf("failed to save %s[%s]: %w", table, v.id, err)
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, table string) ([]row, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, description, function_id, params FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", table, err)
	}
	defer rows.Close()

	var result []row
	for rows.Next() {
		var (
			v   row
			raw string
		)
		if err := rows.Scan(&v.id, &v.description, &v.functionID, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		if err := json.Unmarshal([]byte(raw), &v.params); err != nil {
			return nil, fmt.Errorf("failed to decode params of %s[%s]: %w", table, v.id, err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", table, err)
	}
	return result, nil
}

func (r *SQLiteRepository) delete(ctx context.Context, table, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s[%s]: %w", table, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete %s[%s]: %w", table, id, err)
	}
	if n == 0 {
		return fmt.Errorf("%s[%s]: %w", table, id, common.ErrorNotFound)
	}
	return nil
}

func (r *SQLiteRepository) SaveHashScheme(ctx context.Context, s scheme.HashScheme) error {
	return r.save(ctx, "hash_schemes", row{s.ID, s.Description, s.HashFunctionID, s.Params})
}

func (r *SQLiteRepository) SaveWordScheme(ctx context.Context, s scheme.WordScheme) error {
	return r.save(ctx, "word_schemes", row{s.ID, s.Description, s.WordFunctionID, s.Params})
}

func (r *SQLiteRepository) ListHashSchemes(ctx context.Context) ([]scheme.HashScheme, error) {
	rows, err := r.list(ctx, "hash_schemes")
	if err != nil {
		return nil, err
	}
	result := make([]scheme.HashScheme, 0, len(rows))
	for _, v := range rows {
		result = append(result, scheme.HashScheme{
			ID:             v.id,
			Description:    v.description,
			HashFunctionID: v.functionID,
			Params:         v.params,
		})
	}
	return result, nil
}

func (r *SQLiteRepository) ListWordSchemes(ctx context.Context) ([]scheme.WordScheme, error) {
	rows, err := r.list(ctx, "word_schemes")
	if err != nil {
		return nil, err
	}
	result := make([]scheme.WordScheme, 0, len(rows))
	for _, v := range rows {
		result = append(result, scheme.WordScheme{
			ID:             v.id,
			Description:    v.description,
			WordFunctionID: v.functionID,
			Params:         v.params,
		})
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteHashScheme(ctx context.Context, id string) error {
	return r.delete(ctx, "hash_schemes", id)
}

func (r *SQLiteRepository) DeleteWordScheme(ctx context.Context, id string) error {
	return r.delete(ctx, "word_schemes", id)
}
