package services

import (
	"context"
	"fmt"
	"time"

	"lineup/internal/core"
	applog "lineup/internal/log"
)

// LedgerStore is the persistence the ledger needs. storage.SQLiteRepository
// implements it.
type LedgerStore interface {
	AddEntry(ctx context.Context, name string, amount core.Amount, p core.Period) (core.Entry, error)
	ListEntries(ctx context.Context, p core.Period) ([]core.Entry, error)
	AddStatic(ctx context.Context, name string, amount core.Amount) (core.Static, error)
	DeleteStatic(ctx context.Context, id int64) error
	ListStatics(ctx context.Context) ([]core.Static, error)
}

// LedgerService validates command input, fills in the current month and year
// for zero values and delegates to the store.
type LedgerService struct {
	store  LedgerStore
	now    func() time.Time
	logger *applog.Logger
}

func NewLedgerService(store LedgerStore, logger *applog.Logger) *LedgerService {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	return &LedgerService{
		store:  store,
		now:    time.Now,
		logger: logger.WithComponent(applog.ComponentLedger),
	}
}

// WithClock replaces the clock used to default month and year.
func (s *LedgerService) WithClock(now func() time.Time) *LedgerService {
	s.now = now
	return s
}

// Period resolves month and year, where zero means the current one.
func (s *LedgerService) Period(month, year int) (core.Period, error) {
	return core.ResolvePeriod(month, year, s.now())
}

// AddEntry records an entry in the given month, creating the month from the
// current statics if it does not exist yet.
func (s *LedgerService) AddEntry(ctx context.Context, name string, amount core.Amount, month, year int) (core.Entry, error) {
	if err := core.ValidateName(name); err != nil {
		return core.Entry{}, err
	}
	p, err := s.Period(month, year)
	if err != nil {
		return core.Entry{}, err
	}

	entry, err := s.store.AddEntry(ctx, name, amount, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to add entry",
			applog.FieldOperation, applog.OpAddEntry,
			applog.FieldName, name,
			applog.FieldMonth, p.Month,
			applog.FieldYear, p.Year,
			applog.FieldError, err)
		return core.Entry{}, fmt.Errorf("add entry: %w", err)
	}

	s.logger.DebugContext(ctx, "Entry added",
		applog.FieldEntryID, entry.ID,
		applog.FieldAmount, int64(amount),
		applog.FieldMonth, p.Month,
		applog.FieldYear, p.Year)
	return entry, nil
}

// MonthSummary returns the entries and totals of a month. A month that was
// never referenced is empty; showing it does not create it.
func (s *LedgerService) MonthSummary(ctx context.Context, month, year int) (core.MonthSummary, error) {
	p, err := s.Period(month, year)
	if err != nil {
		return core.MonthSummary{}, err
	}

	entries, err := s.store.ListEntries(ctx, p)
	if err != nil {
		return core.MonthSummary{}, fmt.Errorf("list entries: %w", err)
	}

	s.logger.DebugContext(ctx, "Month loaded",
		applog.FieldOperation, applog.OpShow,
		applog.FieldMonth, p.Month,
		applog.FieldYear, p.Year,
		applog.FieldCount, len(entries))
	return core.Summarize(p, entries), nil
}

// AddStatic records a template for months created from now on.
func (s *LedgerService) AddStatic(ctx context.Context, name string, amount core.Amount) (core.Static, error) {
	st := core.NewStatic(name, amount)
	if err := st.Validate(); err != nil {
		return core.Static{}, err
	}

	created, err := s.store.AddStatic(ctx, st.Name, st.Amount)
	if err != nil {
		return core.Static{}, fmt.Errorf("add static: %w", err)
	}

	s.logger.DebugContext(ctx, "Static added",
		applog.FieldOperation, applog.OpAddStatic,
		applog.FieldStaticID, created.ID)
	return created, nil
}

// DeleteStatic removes a template; months already seeded keep their entries.
func (s *LedgerService) DeleteStatic(ctx context.Context, id int64) error {
	if id < 1 {
		return core.ErrInvalidID
	}
	if err := s.store.DeleteStatic(ctx, id); err != nil {
		return fmt.Errorf("delete static: %w", err)
	}

	s.logger.DebugContext(ctx, "Static deleted",
		applog.FieldOperation, applog.OpDeleteStatic,
		applog.FieldStaticID, id)
	return nil
}

func (s *LedgerService) Statics(ctx context.Context) ([]core.Static, error) {
	statics, err := s.store.ListStatics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statics: %w", err)
	}
	return statics, nil
}
