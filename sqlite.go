package bettrack

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// SQLiteStore is the embedded Store implementation, a single database file
// owned by the user. Use ":memory:" as path for a throwaway store in tests.
//
// Amounts are stored as decimal strings to stay exact, timestamps as RFC3339
// UTC strings so the occurred_at index sorts chronologically.
type SQLiteStore struct {
	notifier
	db       *sql.DB
	currency string
}

var _ Store = (*SQLiteStore)(nil)

// OpenStore opens the database at path, creating and migrating it when
// needed. A fresh database is seeded with the default bankroll in the given
// reporting currency.
func OpenStore(path, currency string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	s := &SQLiteStore{db: db, currency: currency}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot migrate database %q: %w", path, err)
	}
	if err := s.seed(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot seed database %q: %w", path, err)
	}
	return s, nil
}

// Close closes the database file.
func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS wagers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		occurred_at TEXT NOT NULL,
		stake TEXT NOT NULL,
		odds TEXT NOT NULL,
		potential_return TEXT NOT NULL,
		bookmaker TEXT NOT NULL,
		category TEXT NOT NULL,
		status TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_wagers_occurred_at ON wagers(occurred_at);
	CREATE INDEX IF NOT EXISTS idx_wagers_status ON wagers(status);
	CREATE INDEX IF NOT EXISTS idx_wagers_category ON wagers(category);

	CREATE TABLE IF NOT EXISTS bankrolls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		initial_capital TEXT NOT NULL,
		current_balance TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// seed inserts the default bankroll into an empty database.
func (s *SQLiteStore) seed() error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM bankrolls").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	b := DefaultBankroll(s.currency)
	_, err := s.db.Exec(
		"INSERT INTO bankrolls (name, initial_capital, current_balance) VALUES (?, ?, ?)",
		b.Name, b.InitialCapital.Amount().String(), b.CurrentBalance.Amount().String(),
	)
	return err
}

// AddWager validates and inserts the record, returning the store assigned id.
func (s *SQLiteStore) AddWager(r WagerRecord) (int64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	res, err := s.db.Exec(
		`INSERT INTO wagers (occurred_at, stake, odds, potential_return, bookmaker, category, status, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.OccurredAt.String(), r.Stake.Amount().String(), r.Odds.String(),
		r.PotentialReturn.Amount().String(), r.Bookmaker, r.Category, string(r.Status), r.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("cannot insert wager: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("cannot read inserted wager id: %w", err)
	}
	s.notify()
	return id, nil
}

const selectWager = `SELECT id, occurred_at, stake, odds, potential_return, bookmaker, category, status, notes FROM wagers`

// Wager returns the record with the given id, or [ErrNotFound].
func (s *SQLiteStore) Wager(id int64) (WagerRecord, error) {
	r, err := s.scanWager(s.db.QueryRow(selectWager+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return WagerRecord{}, fmt.Errorf("wager %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return WagerRecord{}, fmt.Errorf("cannot read wager %d: %w", id, err)
	}
	return r, nil
}

// UpdateWager overwrites the whole record identified by r.ID.
func (s *SQLiteStore) UpdateWager(r WagerRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}
	res, err := s.db.Exec(
		`UPDATE wagers SET occurred_at = ?, stake = ?, odds = ?, potential_return = ?,
		 bookmaker = ?, category = ?, status = ?, notes = ? WHERE id = ?`,
		r.OccurredAt.String(), r.Stake.Amount().String(), r.Odds.String(),
		r.PotentialReturn.Amount().String(), r.Bookmaker, r.Category, string(r.Status), r.Notes,
		r.ID,
	)
	if err != nil {
		return fmt.Errorf("cannot update wager %d: %w", r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cannot update wager %d: %w", r.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("wager %d: %w", r.ID, ErrNotFound)
	}
	s.notify()
	return nil
}

// DeleteWager removes the record with the given id, or returns [ErrNotFound].
func (s *SQLiteStore) DeleteWager(id int64) error {
	res, err := s.db.Exec("DELETE FROM wagers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("cannot delete wager %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cannot delete wager %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("wager %d: %w", id, ErrNotFound)
	}
	s.notify()
	return nil
}

// Wagers returns the whole collection ordered by occurrence then id.
func (s *SQLiteStore) Wagers() ([]WagerRecord, error) {
	rows, err := s.db.Query(selectWager + " ORDER BY occurred_at, id")
	if err != nil {
		return nil, fmt.Errorf("cannot query wagers: %w", err)
	}
	defer rows.Close()

	var records []WagerRecord
	for rows.Next() {
		r, err := s.scanWager(rows)
		if err != nil {
			return nil, fmt.Errorf("cannot read wager: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// ReplaceWagers clears the collection and inserts rs verbatim, ids included,
// in one transaction. Everything is validated up front: a bad record leaves
// the store untouched.
func (s *SQLiteStore) ReplaceWagers(rs []WagerRecord) error {
	for i, r := range rs {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM wagers"); err != nil {
		return fmt.Errorf("cannot clear wagers: %w", err)
	}
	for _, r := range rs {
		if _, err := tx.Exec(
			`INSERT INTO wagers (id, occurred_at, stake, odds, potential_return, bookmaker, category, status, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.OccurredAt.String(), r.Stake.Amount().String(), r.Odds.String(),
			r.PotentialReturn.Amount().String(), r.Bookmaker, r.Category, string(r.Status), r.Notes,
		); err != nil {
			return fmt.Errorf("cannot insert wager %d: %w", r.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cannot commit replace: %w", err)
	}
	s.notify()
	return nil
}

// AddBankroll validates and inserts the pool, returning the store assigned id.
func (s *SQLiteStore) AddBankroll(b BankrollRecord) (int64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	res, err := s.db.Exec(
		"INSERT INTO bankrolls (name, initial_capital, current_balance) VALUES (?, ?, ?)",
		b.Name, b.InitialCapital.Amount().String(), b.CurrentBalance.Amount().String(),
	)
	if err != nil {
		return 0, fmt.Errorf("cannot insert bankroll %q: %w", b.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("cannot read inserted bankroll id: %w", err)
	}
	s.notify()
	return id, nil
}

// Bankrolls returns every pool, oldest first.
func (s *SQLiteStore) Bankrolls() ([]BankrollRecord, error) {
	rows, err := s.db.Query("SELECT id, name, initial_capital, current_balance FROM bankrolls ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("cannot query bankrolls: %w", err)
	}
	defer rows.Close()

	var pools []BankrollRecord
	for rows.Next() {
		var b BankrollRecord
		var capital, balance string
		if err := rows.Scan(&b.ID, &b.Name, &capital, &balance); err != nil {
			return nil, fmt.Errorf("cannot read bankroll: %w", err)
		}
		if b.InitialCapital, err = ParseMoney(capital, s.currency); err != nil {
			return nil, fmt.Errorf("corrupt initial_capital for %q: %w", b.Name, err)
		}
		if b.CurrentBalance, err = ParseMoney(balance, s.currency); err != nil {
			return nil, fmt.Errorf("corrupt current_balance for %q: %w", b.Name, err)
		}
		pools = append(pools, b)
	}
	return pools, rows.Err()
}

// SetBankrollBalance overwrites the current balance of the named pool.
func (s *SQLiteStore) SetBankrollBalance(name string, balance Money) error {
	res, err := s.db.Exec("UPDATE bankrolls SET current_balance = ? WHERE name = ?",
		balance.Amount().String(), name)
	if err != nil {
		return fmt.Errorf("cannot update bankroll %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("cannot update bankroll %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("bankroll %q: %w", name, ErrNotFound)
	}
	s.notify()
	return nil
}

// rowScanner abstracts sql.Row and sql.Rows for scanWager.
type rowScanner interface{ Scan(dest ...any) error }

func (s *SQLiteStore) scanWager(row rowScanner) (WagerRecord, error) {
	var r WagerRecord
	var occurredAt, stake, odds, ret, status string
	if err := row.Scan(&r.ID, &occurredAt, &stake, &odds, &ret, &r.Bookmaker, &r.Category, &status, &r.Notes); err != nil {
		return r, err
	}
	var err error
	if r.OccurredAt, err = ParseDateTime(occurredAt); err != nil {
		return r, fmt.Errorf("corrupt occurred_at: %w", err)
	}
	if r.Stake, err = ParseMoney(stake, s.currency); err != nil {
		return r, fmt.Errorf("corrupt stake: %w", err)
	}
	if r.Odds, err = decimal.NewFromString(odds); err != nil {
		return r, fmt.Errorf("corrupt odds: %w", err)
	}
	if r.PotentialReturn, err = ParseMoney(ret, s.currency); err != nil {
		return r, fmt.Errorf("corrupt potential_return: %w", err)
	}
	r.Status = Status(status)
	return r, nil
}
