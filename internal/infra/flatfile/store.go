// Package flatfile implements the repository ports over pipe-delimited text
// tables, one file per table. It exists to prove the allocation engine is
// storage-agnostic: all booking rules live in the usecase layer, this backend
// only lists, appends and rewrites rows.
package flatfile

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"stayledger/internal/infra"
	"stayledger/internal/pkg/clock"
)

const (
	clientsFile  = "clients.txt"
	roomsFile    = "rooms.txt"
	bookingsFile = "bookings.txt"

	fieldSep = "|"
)

var tableHeaders = map[string][]string{
	clientsFile:  {"id", "first_name", "last_name", "passport_number", "phone", "email", "created_at"},
	roomsFile:    {"id", "room_number", "room_type", "nightly_rate_cents", "capacity", "description", "lettable", "created_at", "updated_at"},
	bookingsFile: {"id", "client_id", "room_id", "check_in", "check_out", "total_price_cents", "status", "created_at", "updated_at"},
}

// Store serializes all table access behind one mutex. Throughput is not the
// point of this backend; correctness under concurrent commands is.
type Store struct {
	mu    sync.RWMutex
	dir   string
	clock clock.Clock
}

func NewStore(dir string) (*Store, error) {
	return NewStoreWithClock(dir, clock.NewRealClock())
}

func NewStoreWithClock(dir string, clk clock.Clock) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr("failed to create data directory", err)
	}

	s := &Store{dir: dir, clock: clk}
	for name, header := range tableHeaders {
		if err := s.initTable(name, header); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// now stamps rows; injectable so tests can pin timestamps.
func (s *Store) now() time.Time {
	return s.clock.Now().UTC()
}

func (s *Store) initTable(name string, header []string) error {
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	line := strings.Join(header, fieldSep) + "\n"
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return infra.WrapRepoErr("failed to init table "+name, err)
	}
	return nil
}

// readTable returns all data rows (header excluded), split into fields.
// Callers must hold s.mu.
func (s *Store) readTable(name string) ([][]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read table "+name, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) <= 1 {
		return nil, nil
	}

	rows := make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, fieldSep))
	}
	return rows, nil
}

// appendRow adds one record. Callers must hold s.mu for writing.
func (s *Store) appendRow(name string, row []string) error {
	if err := validateFields(row); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return infra.WrapRepoErr("failed to open table "+name, err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.Join(row, fieldSep) + "\n"); err != nil {
		return infra.WrapRepoErr("failed to append to table "+name, err)
	}
	return nil
}

// rewriteTable atomically replaces the table contents via temp-file rename.
// Callers must hold s.mu for writing.
func (s *Store) rewriteTable(name string, rows [][]string) error {
	var sb strings.Builder
	sb.WriteString(strings.Join(tableHeaders[name], fieldSep) + "\n")
	for _, row := range rows {
		if err := validateFields(row); err != nil {
			return err
		}
		sb.WriteString(strings.Join(row, fieldSep) + "\n")
	}

	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(sb.String()), 0o644); err != nil {
		return infra.WrapRepoErr("failed to write temp table "+name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return infra.WrapRepoErr("failed to replace table "+name, err)
	}
	return nil
}

func validateFields(row []string) error {
	for _, field := range row {
		if strings.ContainsAny(field, fieldSep+"\n") {
			return infra.WrapRepoErr("field contains delimiter character", nil, infra.KindDBFailure)
		}
	}
	return nil
}
