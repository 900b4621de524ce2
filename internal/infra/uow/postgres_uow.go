package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"studio-calendar/internal/domain/calendar"
	"studio-calendar/internal/domain/happyhour"
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/infra/readstore"
	"studio-calendar/internal/infra/repository"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/pkg/errs"
	"studio-calendar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool     *pgxpool.Pool
	q        *pgquery.Queries
	defaults studio.Settings
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries, cfg config.Config) shared.UnitOfWork {
	return &PostgresUoW{
		pool:     pool,
		q:        q,
		defaults: studio.DefaultSettings(cfg.Calendar.DefaultTimeZone, cfg.Calendar.DefaultCutoffHour),
	}
}

// ReadCommitted; bookings serialise on the room row lock
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgquery.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	roomRepo        shared.RoomRepository
	blockRepo       shared.CalendarBlockRepository
	reservationRepo shared.ReservationRepository
	happyHourRepo   shared.HappyHourRepository
	idempotencyRepo shared.IdempotencyRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() pgquery.DBTX {
	return t.dbtx
}

func (t *pgTx) Rooms() shared.RoomRepository {
	if t.roomRepo == nil {
		t.roomRepo = repository.NewRoomRepository(t.uow.q)
	}
	return t.roomRepo
}

func (t *pgTx) Blocks() shared.CalendarBlockRepository {
	if t.blockRepo == nil {
		t.blockRepo = repository.NewCalendarBlockRepository(t.uow.q)
	}
	return t.blockRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.uow.q)
	}
	return t.reservationRepo
}

func (t *pgTx) HappyHours() shared.HappyHourRepository {
	if t.happyHourRepo == nil {
		t.happyHourRepo = repository.NewHappyHourRepository(t.uow.q)
	}
	return t.happyHourRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.uow.q)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx pgquery.DBTX

	// Lazy-initialized readstores
	studioStore       *readstore.StudioReadStore
	profileStore      *readstore.ProfileReadStore
	happyHourStore    *readstore.HappyHourReadStore
	availabilityStore *readstore.AvailabilityReadStore
}

func (r *commandReads) studios() *readstore.StudioReadStore {
	if r.studioStore == nil {
		r.studioStore = readstore.NewStudioReadStore(r.uow.q, r.dbtx, r.uow.defaults)
	}
	return r.studioStore
}

func (r *commandReads) StudioByID(ctx context.Context, id uuid.UUID) (*studio.Studio, error) {
	return r.studios().FindByID(ctx, id)
}

func (r *commandReads) RoomByID(ctx context.Context, id uuid.UUID) (*studio.Room, error) {
	return r.studios().FindRoomByID(ctx, id)
}

func (r *commandReads) ProfileByAccountID(ctx context.Context, accountID uuid.UUID) (*shared.ProfileSnapshot, error) {
	if r.profileStore == nil {
		r.profileStore = readstore.NewProfileReadStore(r.uow.q, r.dbtx)
	}
	return r.profileStore.FindByAccountID(ctx, accountID)
}

func (r *commandReads) HappyHourRules(ctx context.Context, roomID uuid.UUID) ([]happyhour.Rule, error) {
	if r.happyHourStore == nil {
		r.happyHourStore = readstore.NewHappyHourReadStore(r.uow.q, r.dbtx)
	}
	return r.happyHourStore.ListByRooms(ctx, []uuid.UUID{roomID})
}

func (r *commandReads) ActiveEntries(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeRequestID *uuid.UUID) ([]calendar.Entry, error) {
	if r.availabilityStore == nil {
		r.availabilityStore = readstore.NewAvailabilityReadStore(r.uow.q, r.dbtx)
	}
	return r.availabilityStore.ActiveEntries(ctx, roomID, start, end, excludeRequestID)
}
