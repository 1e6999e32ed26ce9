package storage

type Month struct {
	ID    int64
	Month int64
	Year  int64
}

type Entry struct {
	ID        int64
	Name      string
	Amount    int64
	IsExpense int64
	MonthID   int64
}

type Static struct {
	ID        int64
	Name      string
	Amount    int64
	IsExpense int64
}

// EntryWithMonth is a row of the entries/month join.
type EntryWithMonth struct {
	ID         int64
	Name       string
	Amount     int64
	IsExpense  int64
	MonthID    int64
	MonthMonth int64
	MonthYear  int64
}
