package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"careadmin/internal/transition"
)

// Store adapts Repository to the transition engine's port.
type Store struct {
	Repo *Repository
}

func (s Store) FindByID(ctx context.Context, id string) (transition.Entity, error) {
	b, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, transition.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s Store) UpdateStatus(ctx context.Context, id, status string) (transition.Entity, error) {
	b, err := s.Repo.UpdateStatus(ctx, id, Status(status))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, transition.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}
