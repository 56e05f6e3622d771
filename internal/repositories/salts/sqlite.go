package salts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/dbx"
	"github.com/dmitrijs2005/narvi/internal/models"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSalt(row scanner) (models.Salt, error) {
	var (
		s        models.Salt
		checksum sql.NullInt64
	)
	if err := row.Scan(&s.Value, &s.HashSchemeID, &s.WordSchemeID, &s.Description, &checksum); err != nil {
		return models.Salt{}, err
	}
	if checksum.Valid {
		c := uint8(checksum.Int64)
		s.Checksum = &c
	}
	return s, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, value string) (models.Salt, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT value, hash_scheme_id, word_scheme_id, description, checksum
		FROM salts WHERE value = ?`, value)

	s, err := scanSalt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Salt{}, fmt.Errorf("salt %q: %w", value, common.ErrorNotFound)
	}
	if err != nil {
		return models.Salt{}, fmt.Errorf("failed to get salt[%s]: %w", value, err)
	}
	return s, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, s models.Salt) error {
	var checksum any
	if s.Checksum != nil {
		checksum = int64(*s.Checksum)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO salts (value, hash_scheme_id, word_scheme_id, description, checksum)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(value) DO UPDATE SET
			hash_scheme_id = excluded.hash_scheme_id,
			word_scheme_id = excluded.word_scheme_id,
			description    = excluded.description,
			checksum       = excluded.checksum
	`, s.Value, s.HashSchemeID, s.WordSchemeID, s.Description, checksum)
	if err != nil {
		return fmt.Errorf("failed to save salt[%s]: %w", s.Value, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, value string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM salts WHERE value = ?`, value)
	if err != nil {
		return fmt.Errorf("failed to delete salt[%s]: %w", value, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete salt[%s]: %w", value, err)
	}
	if n == 0 {
		return fmt.Errorf("salt %q: %w", value, common.ErrorNotFound)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Salt, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT value, hash_scheme_id, word_scheme_id, description, checksum
		FROM salts ORDER BY value`)
	if err != nil {
		return nil, fmt.Errorf("failed to list salts: %w", err)
	}
	defer rows.Close()

	var result []models.Salt
	for rows.Next() {
		s, err := scanSalt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salt row: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate salt rows: %w", err)
	}
	return result, nil
}
