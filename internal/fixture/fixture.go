// Package fixture loads the read-only school dataset the service is built on.
//
// Each table is a JSON file named after the table. Two layouts are accepted:
//   - a plain array of rows
//   - a phpMyAdmin JSON export: an array of envelope objects where the one
//     with "type":"table" carries the rows in "data"
//
// The dataset is loaded exactly once at startup; any decoding problem is fatal.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jadwal-guru/internal/model"
	apperrors "jadwal-guru/pkg/errors"
)

// Dataset the nine fixture tables
type Dataset struct {
	Users          []model.User
	Teachers       []model.Teacher
	Programs       []model.Program
	Levels         []model.Level
	StudyGroups    []model.StudyGroup
	Days           []model.Day
	StudyTimes     []model.StudyTime
	StudyLocations []model.StudyLocation
	Schedules      []model.Schedule
}

// table binds a table name to the Dataset slice it fills
type table struct {
	name string
	dst  interface{}
}

func (ds *Dataset) tables() []table {
	return []table{
		{model.User{}.TableName(), &ds.Users},
		{model.Teacher{}.TableName(), &ds.Teachers},
		{model.Program{}.TableName(), &ds.Programs},
		{model.Level{}.TableName(), &ds.Levels},
		{model.StudyGroup{}.TableName(), &ds.StudyGroups},
		{model.Day{}.TableName(), &ds.Days},
		{model.StudyTime{}.TableName(), &ds.StudyTimes},
		{model.StudyLocation{}.TableName(), &ds.StudyLocations},
		{model.Schedule{}.TableName(), &ds.Schedules},
	}
}

// envelopeTablePosition position of the table envelope in a phpMyAdmin export
// (header, database, table)
const envelopeTablePosition = 2

// LoadDir reads <table>.json for every table from dir.
func LoadDir(dir string) (*Dataset, error) {
	ds := &Dataset{}
	for _, t := range ds.tables() {
		path := filepath.Join(dir, t.name+".json")
		if err := decodeFile(path, t.dst); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

func decodeFile(path string, dst interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", apperrors.ErrMalformedFixture, path, err)
	}
	defer f.Close()

	if err := Decode(f, dst); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// Decode reads one table from r into dst (a pointer to a slice of rows).
func Decode(r io.Reader, dst interface{}) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: read: %v", apperrors.ErrMalformedFixture, err)
	}

	rows, err := unwrap(raw)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(rows, dst); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMalformedFixture, err)
	}
	return nil
}

// unwrap returns the JSON array holding the rows, peeling off a phpMyAdmin
// envelope when present.
func unwrap(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", apperrors.ErrMalformedFixture)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedFixture, err)
	}

	envelopes := make([]map[string]json.RawMessage, len(items))
	isExport := false
	for i, item := range items {
		var obj map[string]json.RawMessage
		if json.Unmarshal(item, &obj) != nil {
			continue
		}
		envelopes[i] = obj
		if kind := envelopeType(obj); kind == "header" || kind == "database" || kind == "table" {
			isExport = true
		}
	}

	if !isExport {
		return raw, nil
	}

	for _, obj := range envelopes {
		if envelopeType(obj) == "table" {
			if data, ok := obj["data"]; ok {
				return data, nil
			}
		}
	}
	if len(envelopes) > envelopeTablePosition {
		if data, ok := envelopes[envelopeTablePosition]["data"]; ok {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: export has no table data", apperrors.ErrMalformedFixture)
}

func envelopeType(obj map[string]json.RawMessage) string {
	if obj == nil {
		return ""
	}
	var kind string
	if err := json.Unmarshal(obj["type"], &kind); err != nil {
		return ""
	}
	return kind
}

// Counts number of rows per table, used for startup logging
func (ds *Dataset) Counts() map[string]int {
	counts := make(map[string]int, 9)
	for _, t := range ds.tables() {
		counts[t.name] = rowCount(t.dst)
	}
	return counts
}

func rowCount(dst interface{}) int {
	switch v := dst.(type) {
	case *[]model.User:
		return len(*v)
	case *[]model.Teacher:
		return len(*v)
	case *[]model.Program:
		return len(*v)
	case *[]model.Level:
		return len(*v)
	case *[]model.StudyGroup:
		return len(*v)
	case *[]model.Day:
		return len(*v)
	case *[]model.StudyTime:
		return len(*v)
	case *[]model.StudyLocation:
		return len(*v)
	case *[]model.Schedule:
		return len(*v)
	}
	return 0
}
