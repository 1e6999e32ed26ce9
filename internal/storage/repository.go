package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lineup/internal/core"

	_ "modernc.org/sqlite"
)

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	// Run migrations
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return newRepository(db), nil
}

func newRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func (r *SQLiteRepository) withTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(r.queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.ErrorContext(ctx, "Rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// AddEntry stores an entry in the month of p, creating and seeding that month
// first if needed. Month creation, seeding and the insert are one transaction.
func (r *SQLiteRepository) AddEntry(ctx context.Context, name string, amount core.Amount, p core.Period) (core.Entry, error) {
	var entry core.Entry
	err := r.withTx(ctx, func(q *Queries) error {
		month, _, err := resolveMonth(ctx, q, p)
		if err != nil {
			return err
		}

		row, err := q.CreateEntry(ctx, CreateEntryParams{
			Name:      name,
			Amount:    int64(amount),
			IsExpense: boolToInt(amount.IsExpense()),
			MonthID:   month.ID,
		})
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}

		entry = toEntry(row, month)
		return nil
	})
	if err != nil {
		return core.Entry{}, err
	}

	slog.InfoContext(ctx, "Entry saved",
		"id", entry.ID,
		"name", entry.Name,
		"amount", int64(entry.Amount),
		"month", p.Month,
		"year", p.Year)

	return entry, nil
}

// ResolveMonth returns the month for p, creating it when absent. The boolean
// reports whether this call created (and seeded) the month.
func (r *SQLiteRepository) ResolveMonth(ctx context.Context, p core.Period) (core.Month, bool, error) {
	var (
		month   core.Month
		created bool
	)
	err := r.withTx(ctx, func(q *Queries) error {
		var err error
		month, created, err = resolveMonth(ctx, q, p)
		return err
	})
	if err != nil {
		return core.Month{}, false, err
	}
	return month, created, nil
}

// resolveMonth must run inside a transaction. A freshly inserted month receives
// one entry per static that exists at this instant; an existing month is
// returned untouched.
func resolveMonth(ctx context.Context, q *Queries, p core.Period) (core.Month, bool, error) {
	if err := p.Validate(); err != nil {
		return core.Month{}, false, err
	}

	row, err := q.CreateMonth(ctx, CreateMonthParams{Month: int64(p.Month), Year: int64(p.Year)})
	if errors.Is(err, sql.ErrNoRows) {
		existing, err := q.GetMonth(ctx, GetMonthParams{Month: int64(p.Month), Year: int64(p.Year)})
		if err != nil {
			return core.Month{}, false, fmt.Errorf("get month %s: %w", p, err)
		}
		return toMonth(existing), false, nil
	}
	if err != nil {
		return core.Month{}, false, fmt.Errorf("create month %s: %w", p, err)
	}

	month := toMonth(row)

	statics, err := q.GetStatics(ctx)
	if err != nil {
		return core.Month{}, false, fmt.Errorf("get statics: %w", err)
	}

	for _, s := range statics {
		e := core.EntryFrom(toStatic(s), month)
		if _, err := q.CreateEntry(ctx, CreateEntryParams{
			Name:      e.Name,
			Amount:    int64(e.Amount),
			IsExpense: boolToInt(e.IsExpense),
			MonthID:   month.ID,
		}); err != nil {
			return core.Month{}, false, fmt.Errorf("seed entry %q into %s: %w", s.Name, p, err)
		}
	}

	slog.InfoContext(ctx, "Month created",
		"month_id", month.ID,
		"month", p.Month,
		"year", p.Year,
		"seeded", len(statics))

	return month, true, nil
}

// ListEntries returns the entries of the month p in insertion order.
func (r *SQLiteRepository) ListEntries(ctx context.Context, p core.Period) ([]core.Entry, error) {
	rows, err := r.queries.GetEntriesByMonth(ctx, GetEntriesByMonthParams{
		Month: int64(p.Month),
		Year:  int64(p.Year),
	})
	if err != nil {
		return nil, fmt.Errorf("get entries by month: %w", err)
	}

	entries := make([]core.Entry, len(rows))
	for i, e := range rows {
		entries[i] = core.Entry{
			ID:        e.ID,
			Name:      e.Name,
			Amount:    core.Amount(e.Amount),
			IsExpense: e.IsExpense != 0,
			Month: core.Month{
				ID:    e.MonthID,
				Month: int(e.MonthMonth),
				Year:  int(e.MonthYear),
			},
		}
	}

	return entries, nil
}

// AddStatic stores a template. Existing months are not affected.
func (r *SQLiteRepository) AddStatic(ctx context.Context, name string, amount core.Amount) (core.Static, error) {
	row, err := r.queries.CreateStatic(ctx, CreateStaticParams{
		Name:      name,
		Amount:    int64(amount),
		IsExpense: boolToInt(amount.IsExpense()),
	})
	if err != nil {
		return core.Static{}, fmt.Errorf("create static: %w", err)
	}

	slog.InfoContext(ctx, "Static saved",
		"id", row.ID,
		"name", row.Name,
		"amount", row.Amount)

	return toStatic(row), nil
}

// DeleteStatic removes a template. Entries already seeded from it are kept.
func (r *SQLiteRepository) DeleteStatic(ctx context.Context, id int64) error {
	res, err := r.queries.DeleteStatic(ctx, id)
	if err != nil {
		return fmt.Errorf("delete static: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete static: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete static %d: %w", id, core.ErrStaticNotFound)
	}

	slog.InfoContext(ctx, "Static deleted", "id", id)
	return nil
}

// ListStatics returns all templates ordered by id.
func (r *SQLiteRepository) ListStatics(ctx context.Context) ([]core.Static, error) {
	rows, err := r.queries.GetStatics(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statics: %w", err)
	}

	statics := make([]core.Static, len(rows))
	for i, s := range rows {
		statics[i] = toStatic(s)
	}
	return statics, nil
}

// CountMonths returns the number of month rows.
func (r *SQLiteRepository) CountMonths(ctx context.Context) (int64, error) {
	n, err := r.queries.CountMonths(ctx)
	if err != nil {
		return 0, fmt.Errorf("count months: %w", err)
	}
	return n, nil
}

func toMonth(m Month) core.Month {
	return core.Month{ID: m.ID, Month: int(m.Month), Year: int(m.Year)}
}

func toEntry(e Entry, m core.Month) core.Entry {
	return core.Entry{
		ID:        e.ID,
		Name:      e.Name,
		Amount:    core.Amount(e.Amount),
		IsExpense: e.IsExpense != 0,
		Month:     m,
	}
}

func toStatic(s Static) core.Static {
	return core.Static{
		ID:        s.ID,
		Name:      s.Name,
		Amount:    core.Amount(s.Amount),
		IsExpense: s.IsExpense != 0,
	}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
