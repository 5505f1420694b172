package postgres

import (
	"errors"

	"hirelens-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// mapError normalizes pgx errors into domain sentinels so usecases never
// inspect driver types. Unique-constraint violations become ErrDuplicate;
// the store's constraint system is the last line of defense for the
// compound invariants checked optimistically in the usecases.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return domain.ErrDuplicate
	}
	return err
}
