package bettrack

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestExportImportRoundTrip(t *testing.T) {
	records := sampleLedger(t)

	var buf bytes.Buffer
	if err := ExportWagers(&buf, records); err != nil {
		t.Fatalf("ExportWagers returned error: %v", err)
	}

	back, err := ImportWagers(&buf, "PLN")
	if err != nil {
		t.Fatalf("ImportWagers returned error: %v", err)
	}
	if len(back) != len(records) {
		t.Fatalf("got %d records, want %d", len(back), len(records))
	}
	for i := range records {
		if !back[i].Equal(records[i]) {
			t.Errorf("record %d: got %+v, want %+v", i, back[i], records[i])
		}
	}
}

func TestExportShape(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportWagers(&buf, sampleLedger(t)[:1]); err != nil {
		t.Fatalf("ExportWagers returned error: %v", err)
	}

	// the document root must be an array of objects with amounts as numbers
	// and the timestamp as an ISO string.
	var doc []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("export is not a JSON array: %v", err)
	}
	if len(doc) != 1 {
		t.Fatalf("got %d elements, want 1", len(doc))
	}
	if _, ok := doc[0]["stake"].(float64); !ok {
		t.Errorf("stake = %v (%T), want a JSON number", doc[0]["stake"], doc[0]["stake"])
	}
	if on, ok := doc[0]["occurredAt"].(string); !ok || !strings.HasPrefix(on, "2026-03-01T") {
		t.Errorf("occurredAt = %v, want an ISO string", doc[0]["occurredAt"])
	}
	if doc[0]["id"].(float64) != 1 {
		t.Errorf("id = %v, want 1", doc[0]["id"])
	}
}

func TestImportWagersInvalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: "definitely not json"},
		{name: "object root", doc: `{"wagers": []}`},
		{name: "bad status", doc: `[{"id":1,"occurredAt":"2026-03-01T12:00:00Z","stake":10,"odds":2,"potentialReturn":20,"bookmaker":"b","category":"football","status":"maybe"}]`},
		{name: "missing stake", doc: `[{"id":1,"occurredAt":"2026-03-01T12:00:00Z","odds":2,"potentialReturn":20,"bookmaker":"b","category":"football","status":"pending"}]`},
		{name: "missing date", doc: `[{"id":1,"stake":10,"odds":2,"potentialReturn":20,"bookmaker":"b","category":"football","status":"pending"}]`},
		{name: "garbage date", doc: `[{"id":1,"occurredAt":"someday","stake":10,"odds":2,"potentialReturn":20,"bookmaker":"b","category":"football","status":"pending"}]`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ImportWagers(strings.NewReader(tc.doc), "PLN")
			if !errors.Is(err, ErrInvalidBackup) {
				t.Errorf("error = %v, want ErrInvalidBackup", err)
			}
		})
	}
}

func TestImportWagersAcceptsMilliseconds(t *testing.T) {
	// backups written by other tools carry millisecond timestamps.
	doc := `[{"id":1,"occurredAt":"2026-03-01T12:00:00.000Z","stake":10,"odds":2,"potentialReturn":20,"bookmaker":"b","category":"football","status":"pending"}]`
	records, err := ImportWagers(strings.NewReader(doc), "PLN")
	if err != nil {
		t.Fatalf("ImportWagers returned error: %v", err)
	}
	want := NewDateTime(2026, time.March, 1, 12, 0)
	if !records[0].OccurredAt.Equal(want) {
		t.Errorf("OccurredAt = %v, want %v", records[0].OccurredAt, want)
	}
}

func TestBackupFilename(t *testing.T) {
	on := NewDateTime(2026, time.August, 30, 9, 15)
	if got := BackupFilename(on); got != "bettrack-backup-2026-08-30.json" {
		t.Errorf("BackupFilename = %q", got)
	}
}
