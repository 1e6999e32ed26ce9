package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lineup/internal/core"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestEntries_PlainLayout(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Entries([]core.Entry{
		{Name: "Rent", Amount: -1000},
		{Name: "Salary", Amount: 2000},
	})

	want := "\n[LineUp]\n\n" +
		"      Rent                          -1000\n" +
		"      Salary                         2000\n" +
		"      -----------------------------------\n" +
		"      Summe                          1000\n\n"
	assert.Equal(t, want, buf.String())
}

func TestEntries_SumColoredBySign(t *testing.T) {
	tests := []struct {
		name    string
		entries []core.Entry
		sum     string
		color   string
	}{
		{
			name:    "non-negative sum",
			entries: []core.Entry{{Name: "Rent", Amount: -1000}, {Name: "Salary", Amount: 2000}},
			sum:     "1000",
			color:   ansiGreen,
		},
		{
			name:    "negative sum",
			entries: []core.Entry{{Name: "Rent", Amount: -1000}},
			sum:     "-1000",
			color:   ansiRed,
		},
		{
			name:    "zero sum",
			entries: nil,
			sum:     "0",
			color:   ansiGreen,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			New(&buf, true).Entries(tt.entries)

			out := lines(buf.String())
			sumLine := out[len(out)-1]
			assert.True(t, strings.HasPrefix(sumLine, indent+sumLabel), sumLine)
			assert.Contains(t, sumLine, tt.color)
			assert.Contains(t, sumLine, tt.sum)
		})
	}
}

func TestEntries_RowColors(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Entries([]core.Entry{
		{Name: "Rent", Amount: -1000},
		{Name: "Salary", Amount: 2000},
	})

	out := lines(buf.String())
	require.GreaterOrEqual(t, len(out), 5)
	assert.Contains(t, out[3], ansiRed)
	assert.Contains(t, out[4], ansiGreen)
}

func TestExactWidth(t *testing.T) {
	assert.Equal(t, "ab   ", exactWidth("ab", 5))
	assert.Equal(t, "abcde", exactWidth("abcdefgh", 5))
	assert.Equal(t, 25, len(exactWidth(strings.Repeat("x", 40), nameWidth)))
}

func TestStatics_Layout(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Statics([]core.Static{
		{ID: 1, Name: "Rent", Amount: -1000, IsExpense: true},
		{ID: 12, Name: "Salary", Amount: 2500},
	})

	want := "\n[LineUp]\n\n" +
		"      1    Rent                          -1000\n" +
		"      12   Salary                         2500\n" +
		"\n\n"
	assert.Equal(t, want, buf.String())
}

func TestMessage(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Message("Added new Entry: %s", "Bonus")
	assert.Equal(t, "\n[LineUp] Added new Entry: Bonus\n\n", buf.String())
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, ColorEnabled(ColorAlways))
	assert.False(t, ColorEnabled(ColorNever))
}
