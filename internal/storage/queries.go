package storage

import (
	"context"
	"database/sql"
)

const createMonth = `INSERT INTO month (month, year) VALUES (?, ?)
ON CONFLICT (month, year) DO NOTHING
RETURNING id, month, year`

type CreateMonthParams struct {
	Month int64
	Year  int64
}

// CreateMonth returns sql.ErrNoRows when the month already exists.
func (q *Queries) CreateMonth(ctx context.Context, arg CreateMonthParams) (Month, error) {
	row := q.db.QueryRowContext(ctx, createMonth, arg.Month, arg.Year)
	var i Month
	err := row.Scan(&i.ID, &i.Month, &i.Year)
	return i, err
}

const getMonth = `SELECT id, month, year FROM month WHERE month = ? AND year = ? ORDER BY id LIMIT 1`

type GetMonthParams struct {
	Month int64
	Year  int64
}

func (q *Queries) GetMonth(ctx context.Context, arg GetMonthParams) (Month, error) {
	row := q.db.QueryRowContext(ctx, getMonth, arg.Month, arg.Year)
	var i Month
	err := row.Scan(&i.ID, &i.Month, &i.Year)
	return i, err
}

const countMonths = `SELECT COUNT(*) FROM month`

func (q *Queries) CountMonths(ctx context.Context) (int64, error) {
	row := q.db.QueryRowContext(ctx, countMonths)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createEntry = `INSERT INTO entries (name, amount, is_expense, month_id) VALUES (?, ?, ?, ?)
RETURNING id, name, amount, is_expense, month_id`

type CreateEntryParams struct {
	Name      string
	Amount    int64
	IsExpense int64
	MonthID   int64
}

func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) (Entry, error) {
	row := q.db.QueryRowContext(ctx, createEntry,
		arg.Name,
		arg.Amount,
		arg.IsExpense,
		arg.MonthID,
	)
	var i Entry
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Amount,
		&i.IsExpense,
		&i.MonthID,
	)
	return i, err
}

const getEntriesByMonth = `SELECT entries.id, entries.name, entries.amount, entries.is_expense,
       month.id, month.month, month.year
FROM entries
JOIN month ON entries.month_id = month.id
WHERE month.month = ? AND month.year = ?
ORDER BY entries.id`

type GetEntriesByMonthParams struct {
	Month int64
	Year  int64
}

func (q *Queries) GetEntriesByMonth(ctx context.Context, arg GetEntriesByMonthParams) ([]EntryWithMonth, error) {
	rows, err := q.db.QueryContext(ctx, getEntriesByMonth, arg.Month, arg.Year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []EntryWithMonth
	for rows.Next() {
		var i EntryWithMonth
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Amount,
			&i.IsExpense,
			&i.MonthID,
			&i.MonthMonth,
			&i.MonthYear,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createStatic = `INSERT INTO statics (name, amount, is_expense) VALUES (?, ?, ?)
RETURNING id, name, amount, is_expense`

type CreateStaticParams struct {
	Name      string
	Amount    int64
	IsExpense int64
}

func (q *Queries) CreateStatic(ctx context.Context, arg CreateStaticParams) (Static, error) {
	row := q.db.QueryRowContext(ctx, createStatic, arg.Name, arg.Amount, arg.IsExpense)
	var i Static
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Amount,
		&i.IsExpense,
	)
	return i, err
}

const deleteStatic = `DELETE FROM statics WHERE id = ?`

func (q *Queries) DeleteStatic(ctx context.Context, id int64) (sql.Result, error) {
	return q.db.ExecContext(ctx, deleteStatic, id)
}

const getStatics = `SELECT id, name, amount, is_expense FROM statics ORDER BY id`

func (q *Queries) GetStatics(ctx context.Context) ([]Static, error) {
	rows, err := q.db.QueryContext(ctx, getStatics)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Static
	for rows.Next() {
		var i Static
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Amount,
			&i.IsExpense,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
