package bettrack

// this file handles the backup format.
// It must remain a single human readable JSON document that round trips
// losslessly through export then import.

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// amounts are persisted as plain JSON numbers.
func init() { decimal.MarshalJSONWithoutQuotes = true }

// ErrInvalidBackup wraps every parse or shape error of a backup document.
var ErrInvalidBackup = errors.New("invalid backup document")

// jwager is the backup shape of a single record.
type jwager struct {
	ID              int64           `json:"id"`
	OccurredAt      DateTime        `json:"occurredAt"`
	Stake           decimal.Decimal `json:"stake"`
	Odds            decimal.Decimal `json:"odds"`
	PotentialReturn decimal.Decimal `json:"potentialReturn"`
	Bookmaker       string          `json:"bookmaker"`
	Category        string          `json:"category"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
}

// ExportWagers writes the whole collection to 'w' as one JSON array, one
// object per record, ids included, so that a later import restores the
// ledger verbatim. Timestamps are written as RFC3339 strings.
func ExportWagers(w io.Writer, records []WagerRecord) error {
	jws := make([]jwager, 0, len(records))
	for _, r := range records {
		jws = append(jws, jwager{
			ID:              r.ID,
			OccurredAt:      r.OccurredAt,
			Stake:           r.Stake.Amount(),
			Odds:            r.Odds,
			PotentialReturn: r.PotentialReturn.Amount(),
			Bookmaker:       r.Bookmaker,
			Category:        r.Category,
			Status:          string(r.Status),
			Notes:           r.Notes,
		})
	}
	data, err := json.MarshalIndent(jws, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// ImportWagers parses and validates a backup document read from 'r'.
// Every element must carry the full record shape: a parseable timestamp, a
// positive stake, positive odds and a valid status. The first bad element
// fails the whole import; the store is never touched here, replacing it is
// the caller's decision.
func ImportWagers(r io.Reader, currency string) ([]WagerRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup: %w", err)
	}
	var jws []jwager
	if err := json.Unmarshal(data, &jws); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	records := make([]WagerRecord, 0, len(jws))
	for i, jw := range jws {
		status, err := ParseStatus(jw.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidBackup, i, err)
		}
		rec := WagerRecord{
			ID:              jw.ID,
			OccurredAt:      jw.OccurredAt,
			Stake:           M(jw.Stake, currency),
			Odds:            jw.Odds,
			PotentialReturn: M(jw.PotentialReturn, currency),
			Bookmaker:       jw.Bookmaker,
			Category:        jw.Category,
			Status:          status,
			Notes:           jw.Notes,
		}
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrInvalidBackup, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// BackupFilename is the default name for a backup written on 'on'.
func BackupFilename(on DateTime) string {
	return "bettrack-backup-" + on.Format("2006-01-02") + ".json"
}
