package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmitrijs2005/narvi/internal/common"
	"github.com/dmitrijs2005/narvi/internal/dbx"
	"github.com/dmitrijs2005/narvi/internal/logging"
	"github.com/dmitrijs2005/narvi/internal/models"
	"github.com/dmitrijs2005/narvi/internal/repositories/salts"
	"github.com/dmitrijs2005/narvi/internal/scheme"
)

// LegacySettings is the "settings" object of the legacy settings file.
type LegacySettings struct {
	DefaultHashScheme string `json:"default-hashscheme"`
	DefaultWordScheme string `json:"default-wordscheme"`
	StoreChecksum     bool   `json:"store-checksum"`
	ClipboardTime     int    `json:"clipboard-time,omitempty"`
}

// LegacySalt is one entry of the legacy "salts" object.
type LegacySalt struct {
	Value        string `json:"value"`
	HashSchemeID string `json:"hashschemeid"`
	WordSchemeID string `json:"wordschemeid"`
	Description  string `json:"description"`
	Checksum     *uint8 `json:"checksum"`
}

// LegacyFile is the legacy settings file: salts and user schemes keyed by
// id, plus global settings.
type LegacyFile struct {
	Settings    LegacySettings               `json:"settings"`
	Salts       map[string]LegacySalt        `json:"salts"`
	HashSchemes map[string]scheme.HashScheme `json:"hashschemes"`
	WordSchemes map[string]scheme.WordScheme `json:"wordschemes"`
}

// ImportReport says what an import stored.
type ImportReport struct {
	Settings    LegacySettings
	Salts       int
	HashSchemes int
	WordSchemes int
}

// Importer loads a legacy settings file into the local database.
type Importer struct {
	db      *sql.DB
	schemes *SchemeService
	log     logging.Logger
}

func NewImporter(db *sql.DB, schemes *SchemeService, log logging.Logger) *Importer {
	if log == nil {
		log = logging.Discard()
	}
	return &Importer{db: db, schemes: schemes, log: log}
}

// Import reads a legacy file from r and stores its salts and user schemes
// in one transaction, overwriting records with the same key. The user
// schemes are registered once the transaction commits. Settings are
// returned, not applied.
func (im *Importer) Import(ctx context.Context, r io.Reader) (ImportReport, error) {
	var f LegacyFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return ImportReport{}, fmt.Errorf("failed to decode legacy file: %w", err)
	}

	records, err := f.salts()
	if err != nil {
		return ImportReport{}, err
	}
	defs := Definitions{HashSchemes: f.HashSchemes, WordSchemes: f.WordSchemes}
	if err := defs.validate(); err != nil {
		return ImportReport{}, err
	}

	err = dbx.WithTx(ctx, im.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := salts.NewSQLiteRepository(tx)
		for _, s := range records {
			if err := repo.Save(ctx, s); err != nil {
				return err
			}
		}
		return im.schemes.store(ctx, tx, defs)
	})
	if err != nil {
		return ImportReport{}, err
	}
	if err := im.schemes.register(ctx, defs); err != nil {
		return ImportReport{}, err
	}

	report := ImportReport{
		Settings:    f.Settings,
		Salts:       len(records),
		HashSchemes: len(defs.HashSchemes),
		WordSchemes: len(defs.WordSchemes),
	}
	im.log.Info(ctx, "imported legacy file",
		"salts", report.Salts, "hashschemes", report.HashSchemes, "wordschemes", report.WordSchemes)
	return report, nil
}

func (f LegacyFile) salts() ([]models.Salt, error) {
	out := make([]models.Salt, 0, len(f.Salts))
	for key, ls := range f.Salts {
		value := ls.Value
		if value == "" {
			value = key
		}
		if ls.HashSchemeID == "" || ls.WordSchemeID == "" {
			return nil, fmt.Errorf("%w: salt %q lacks a scheme id", common.ErrInvalidScheme, value)
		}
		out = append(out, models.Salt{
			Value:        value,
			HashSchemeID: ls.HashSchemeID,
			WordSchemeID: ls.WordSchemeID,
			Description:  ls.Description,
			Checksum:     ls.Checksum,
		})
	}
	return out, nil
}

// Exporter writes the local database in the legacy layout.
type Exporter struct {
	salts   salts.Repository
	schemes *SchemeService
}

func NewExporter(salts salts.Repository, schemes *SchemeService) *Exporter {
	return &Exporter{salts: salts, schemes: schemes}
}

// Export writes every salt and user scheme to w, with settings as the
// "settings" object.
func (ex *Exporter) Export(ctx context.Context, w io.Writer, settings LegacySettings) error {
	list, err := ex.salts.List(ctx)
	if err != nil {
		return err
	}
	defs, err := ex.schemes.UserSchemes(ctx)
	if err != nil {
		return err
	}

	f := LegacyFile{
		Settings:    settings,
		Salts:       make(map[string]LegacySalt, len(list)),
		HashSchemes: defs.HashSchemes,
		WordSchemes: defs.WordSchemes,
	}
	for _, s := range list {
		f.Salts[s.Value] = LegacySalt{
			Value:        s.Value,
			HashSchemeID: s.HashSchemeID,
			WordSchemeID: s.WordSchemeID,
			Description:  s.Description,
			Checksum:     s.Checksum,
		}
	}
	for id, h := range f.HashSchemes {
		if h.Params == nil {
			h.Params = scheme.Params{}
			f.HashSchemes[id] = h
		}
	}
	for id, ws := range f.WordSchemes {
		if ws.Params == nil {
			ws.Params = scheme.Params{}
			f.WordSchemes[id] = ws
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("failed to write legacy file: %w", err)
	}
	return nil
}
