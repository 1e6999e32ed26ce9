// Package render prints ledger data as fixed-width columns colored by sign.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lineup/internal/core"
)

const (
	Banner = "[LineUp]"

	indent      = "      "
	nameWidth   = 25
	idWidth     = 5
	amountWidth = 10
	sumWidth    = 30
	sumLabel    = "Summe"
)

// Color modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled resolves a color mode. Auto defers to fatih/color, which turns
// colors off when stdout is not a terminal or NO_COLOR is set.
func ColorEnabled(mode string) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return !color.NoColor
	}
}

type Formatter struct {
	w        io.Writer
	negative *color.Color
	positive *color.Color
}

func New(w io.Writer, colored bool) *Formatter {
	f := &Formatter{
		w:        w,
		negative: color.New(color.FgRed),
		positive: color.New(color.FgGreen),
	}
	if colored {
		f.negative.EnableColor()
		f.positive.EnableColor()
	} else {
		f.negative.DisableColor()
		f.positive.DisableColor()
	}
	return f
}

// Month prints the entries of a month followed by a separator and their sum.
func (f *Formatter) Month(s core.MonthSummary) {
	f.banner()
	for _, e := range s.Entries {
		fmt.Fprintf(f.w, "%s%s%s\n", indent, exactWidth(e.Name, nameWidth), f.amount(e.Amount, amountWidth))
	}
	fmt.Fprintf(f.w, "%s%s\n", indent, strings.Repeat("-", nameWidth+amountWidth))
	fmt.Fprintf(f.w, "%s%s%s\n\n", indent, sumLabel, f.amount(s.Total, sumWidth))
}

// Entries prints entries with their sum, without period totals.
func (f *Formatter) Entries(entries []core.Entry) {
	f.Month(core.MonthSummary{Entries: entries, Total: core.Sum(entries)})
}

// Statics prints the templates with their ids.
func (f *Formatter) Statics(statics []core.Static) {
	f.banner()
	for _, s := range statics {
		fmt.Fprintf(f.w, "%s%s%s%s\n",
			indent,
			exactWidth(strconv.FormatInt(s.ID, 10), idWidth),
			exactWidth(s.Name, nameWidth),
			f.amount(s.Amount, amountWidth))
	}
	fmt.Fprint(f.w, "\n\n")
}

// Message prints a one-line confirmation after the banner.
func (f *Formatter) Message(format string, args ...any) {
	fmt.Fprintf(f.w, "\n%s %s\n\n", f.negative.Sprint(Banner), fmt.Sprintf(format, args...))
}

func (f *Formatter) banner() {
	fmt.Fprintf(f.w, "\n%s\n\n", f.negative.Sprint(Banner))
}

// amount right-aligns a in width cells, red when negative.
func (f *Formatter) amount(a core.Amount, width int) string {
	s := runewidth.FillLeft(a.String(), width)
	if a < 0 {
		return f.negative.Sprint(s)
	}
	return f.positive.Sprint(s)
}

// exactWidth truncates or pads s to exactly width display cells.
func exactWidth(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
