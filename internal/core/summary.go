package core

import (
	"fmt"
	"time"
)

// MonthSummary is the content of one month view.
type MonthSummary struct {
	Period   Period
	Entries  []Entry
	Income   Amount
	Expenses Amount // negative or zero
	Total    Amount
}

// Summarize totals the entries of a period.
func Summarize(p Period, entries []Entry) MonthSummary {
	s := MonthSummary{Period: p, Entries: entries}
	for _, e := range entries {
		if e.Amount.IsExpense() {
			s.Expenses += e.Amount
		} else {
			s.Income += e.Amount
		}
	}
	s.Total = s.Income + s.Expenses
	return s
}

// Sum adds up the amounts of the entries.
func Sum(entries []Entry) Amount {
	var total Amount
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

// ResolvePeriod fills zero month or year from now. Each defaults independently.
func ResolvePeriod(month, year int, now time.Time) (Period, error) {
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	p := Period{Month: month, Year: year}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
