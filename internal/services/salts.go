package services

import (
	"context"

	"github.com/dmitrijs2005/narvi/internal/checksum"
	"github.com/dmitrijs2005/narvi/internal/engine"
	"github.com/dmitrijs2005/narvi/internal/logging"
	"github.com/dmitrijs2005/narvi/internal/models"
	"github.com/dmitrijs2005/narvi/internal/repositories/salts"
)

// Deriver is the part of the engine SaltService needs.
type Deriver interface {
	Derive(ctx context.Context, salt models.Salt, masterSecret []byte) (engine.Result, error)
}

// SaltService remembers salts and derives their passwords, verifying the
// stored checksum when one is present.
type SaltService struct {
	repo    salts.Repository
	deriver Deriver
	log     logging.Logger
}

func NewSaltService(repo salts.Repository, deriver Deriver, log logging.Logger) *SaltService {
	if log == nil {
		log = logging.Discard()
	}
	return &SaltService{repo: repo, deriver: deriver, log: log}
}

// Lookup returns the remembered salt record, or common.ErrorNotFound.
func (s *SaltService) Lookup(ctx context.Context, value string) (models.Salt, error) {
	return s.repo.Get(ctx, value)
}

// Generate derives the password for salt. When salt carries a checksum and
// the derived one differs, it returns common.ErrChecksumMismatch and no
// password.
func (s *SaltService) Generate(ctx context.Context, salt models.Salt, masterSecret []byte) (engine.Result, error) {
	res, err := s.deriver.Derive(ctx, salt, masterSecret)
	if err != nil {
		return engine.Result{}, err
	}
	if err := checksum.Verify(salt.Checksum, res.Checksum); err != nil {
		s.log.Debug(ctx, "checksum mismatch", "salt", salt.Value)
		return engine.Result{}, err
	}
	return res, nil
}

// Remember stores salt. With storeChecksum the checksum of res is kept for
// later verification; without it any previous checksum is dropped.
func (s *SaltService) Remember(ctx context.Context, salt models.Salt, res engine.Result, storeChecksum bool) error {
	salt.Checksum = nil
	if storeChecksum {
		c := res.Checksum
		salt.Checksum = &c
	}
	if err := s.repo.Save(ctx, salt); err != nil {
		return err
	}
	s.log.Info(ctx, "remembered salt", "salt", salt.Value, "checksum", storeChecksum)
	return nil
}

// Forget removes a remembered salt. Unknown salts yield common.ErrorNotFound.
func (s *SaltService) Forget(ctx context.Context, value string) error {
	if err := s.repo.Delete(ctx, value); err != nil {
		return err
	}
	s.log.Info(ctx, "forgot salt", "salt", value)
	return nil
}

// List returns remembered salts ordered by value.
func (s *SaltService) List(ctx context.Context) ([]models.Salt, error) {
	return s.repo.List(ctx)
}
