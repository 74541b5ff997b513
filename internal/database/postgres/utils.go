package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/scrapworld/internal/database/generated"
	"github.com/osse101/scrapworld/internal/domain"
	"github.com/osse101/scrapworld/internal/logger"
)

// PostgreSQL error codes
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// ---- Common Helper Functions ----

// parseID parses an entity id. Malformed ids can never match a row, so lookups treat them as missing.
func parseID(id string) (uuid.UUID, bool) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return u, true
}

// mustParseID parses an id for a write, where a malformed id is a caller error
func mustParseID(kind, id string) (uuid.UUID, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s id %q", domain.ErrInvalidInput, kind, id)
	}
	return u, nil
}

func nullID(id string) uuid.NullUUID {
	if u, ok := parseID(id); ok {
		return uuid.NullUUID{UUID: u, Valid: true}
	}
	return uuid.NullUUID{}
}

// numericToFloat64 safely converts pgtype.Numeric to float64.
// Returns (0, error) if conversion fails instead of silently ignoring errors.
func numericToFloat64(n pgtype.Numeric) (float64, error) {
	val, err := n.Float64Value()
	if err != nil {
		return 0, fmt.Errorf("failed to convert numeric to float64: %w", err)
	}
	return val.Float64, nil
}

// floatToNumeric encodes f with the column's four decimal places
func floatToNumeric(f float64) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(strconv.FormatFloat(f, 'f', 4, 64)); err != nil {
		return n, fmt.Errorf("failed to convert %v to numeric: %w", f, err)
	}
	return n, nil
}

// quantityParam narrows an inventory quantity to the INTEGER column type
func quantityParam(quantity int) (int32, error) {
	if quantity > domain.MaxItemQuantity {
		return 0, fmt.Errorf("%w: quantity %d exceeds %d", domain.ErrInvalidInput, quantity, domain.MaxItemQuantity)
	}
	return int32(quantity), nil
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// isPgError reports whether err is a PostgreSQL error with the given code
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// txHelper wraps common transaction begin logic.
// Returns a transaction and queries instance with the transaction applied.
type txHelper struct {
	tx pgx.Tx
	q  *generated.Queries
}

// beginTx starts a new transaction and returns a txHelper for common operations.
// Use SafeRollback in defer to ensure proper cleanup.
func beginTx(ctx context.Context, db *pgxpool.Pool, q *generated.Queries) (*txHelper, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &txHelper{
		tx: tx,
		q:  q.WithTx(tx),
	}, nil
}

// ---- End Common Helper Functions ----

func mapUser(row generated.User) (*domain.User, error) {
	scrap, err := numericToFloat64(row.Scrap)
	if err != nil {
		return nil, err
	}
	return &domain.User{
		ID:            row.UserID.String(),
		WalletAddress: row.WalletAddress,
		XP:            row.Xp,
		Level:         int(row.Level),
		Scrap:         scrap,
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}, nil
}

func mapItem(row generated.Item) domain.Item {
	return domain.Item{
		ID:       row.ItemID.String(),
		Name:     row.ItemName,
		Type:     row.ItemType,
		ImageURL: row.ImageUrl,
	}
}

func mapBooster(row generated.Booster) *domain.Booster {
	return &domain.Booster{
		ID:        row.BoosterID.String(),
		UserID:    row.UserID.String(),
		Type:      row.BoosterType,
		Opened:    row.Opened,
		CreatedAt: row.CreatedAt.Time,
	}
}
