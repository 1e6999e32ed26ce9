package commands

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/render"
	"lineup/internal/services"
	"lineup/internal/storage"
)

type harness struct {
	repo   *storage.SQLiteRepository
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "calendar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return &harness{repo: repo}
}

// run executes one command line the way main does.
func (h *harness) run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()

	top := flag.NewFlagSet("lineup", flag.ContinueOnError)
	top.SetOutput(&h.stderr)
	commander := subcommands.NewCommander(top, "lineup")
	commander.Output = &h.stdout
	commander.Error = &h.stderr
	Register(commander)
	require.NoError(t, top.Parse(args))

	ledger := services.NewLedgerService(h.repo, nil).WithClock(func() time.Time {
		return time.Date(2026, time.October, 16, 8, 30, 0, 0, time.UTC)
	})
	app := &App{Ledger: ledger, Out: render.New(&h.stdout, false), Err: &h.stderr}
	return commander.Execute(context.Background(), app)
}

func TestEndToEnd_StaticSeedsNewMonth(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add", "static", "Rent", "-1000"))
	assert.Contains(t, h.stdout.String(), "[LineUp] Added new Static: Rent")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add", "entry", "Bonus", "500", "3", "2024"))
	assert.Contains(t, h.stdout.String(), "[LineUp] Added new Entry: Bonus")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "show", "3", "2024"))
	out := h.stdout.String()
	assert.Contains(t, out, "      Rent                          -1000\n")
	assert.Contains(t, out, "      Bonus                           500\n")
	assert.Contains(t, out, "      Summe                          -500\n")
	assert.Less(t, strings.Index(out, "Rent"), strings.Index(out, "Bonus"), "seeded entries come first")
}

func TestEndToEnd_DeletedStaticNotSeeded(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add", "static", "Gym", "-50"))
	statics, err := h.repo.ListStatics(context.Background())
	require.NoError(t, err)
	require.Len(t, statics, 1)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "show-statics"))
	assert.Contains(t, h.stdout.String(), "Gym")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "delete-static", "1"))
	assert.Contains(t, h.stdout.String(), "Deleted static value with id = 1.")

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add", "entry", "Salary", "2000", "7", "2025"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "show", "7", "2025"))
	out := h.stdout.String()
	assert.NotContains(t, out, "Gym")
	assert.Contains(t, out, "Salary")
}

func TestEndToEnd_ZeroMeansCurrentMonth(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add", "entry", "Coffee", "-3"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add", "entry", "Tea", "-2", "10"))
	require.Equal(t, subcommands.ExitSuccess, h.run(t, "add", "entry", "Cake", "-5", "0", "2026"))

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "show"))
	out := h.stdout.String()
	assert.Contains(t, out, "Coffee")
	assert.Contains(t, out, "Tea")
	assert.Contains(t, out, "Cake")
	assert.Contains(t, out, "Summe                           -10")

	n, err := h.repo.CountMonths(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestEndToEnd_ShowUnknownMonthIsEmpty(t *testing.T) {
	h := newHarness(t)

	require.Equal(t, subcommands.ExitSuccess, h.run(t, "show", "1", "1999"))
	assert.Contains(t, h.stdout.String(), "Summe                             0")

	n, err := h.repo.CountMonths(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, n, "show must not create months")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing kind", []string{"add"}, "wrong number of arguments"},
		{"unknown kind", []string{"add", "budget", "x", "1"}, "unknown kind"},
		{"missing amount", []string{"add", "entry", "Rent"}, "wrong number of arguments"},
		{"bad amount", []string{"add", "entry", "Rent", "ten"}, "invalid amount"},
		{"decimal amount", []string{"add", "static", "Rent", "10.5"}, "invalid amount"},
		{"bad month", []string{"add", "entry", "Rent", "10", "13"}, "invalid month"},
		{"bad year", []string{"show", "3", "-1"}, "invalid year"},
		{"empty name", []string{"add", "static", " ", "10"}, "empty name"},
		{"too many show args", []string{"show", "1", "2", "3"}, "wrong number of arguments"},
		{"bad id", []string{"delete-static", "abc"}, "invalid id"},
		{"missing id", []string{"delete-static"}, "wrong number of arguments"},
		{"extra statics arg", []string{"show-statics", "x"}, "wrong number of arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			assert.Equal(t, subcommands.ExitUsageError, h.run(t, tt.args...))
			assert.Contains(t, h.stderr.String(), tt.want)
			assert.Contains(t, h.stderr.String(), "Usage: lineup")
		})
	}
}

func TestDeleteUnknownStaticFails(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, subcommands.ExitFailure, h.run(t, "delete-static", "99"))
	assert.Contains(t, h.stderr.String(), "static not found")
}

func TestStoreFailureExitsWithFailure(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.repo.Close())

	assert.Equal(t, subcommands.ExitFailure, h.run(t, "show-statics"))
	assert.Contains(t, h.stderr.String(), "Error: list statics")
}
