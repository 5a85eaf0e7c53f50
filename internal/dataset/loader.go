package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/aliskhannn/cranial-nerves-bot/internal/domain/entities"
)

// columns holds resolved column indexes. role is -1 when the file has no role column.
type columns struct {
	name     int
	nerve    int
	function int
	role     int
}

// Load parses the study guide. Columns may come in any order, unknown columns
// are ignored and short rows read their missing trailing fields as empty.
// A quote inside an unquoted field is kept as text.
// The first invalid row aborts the load and no entries are returned.
func Load(r io.Reader) ([]entities.Entry, error) {
	reader := csv.NewReader(skipBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &MissingColumnError{Column: ColumnName}
		}
		return nil, &RowError{Row: 0, Err: err}
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var entries []entities.Entry
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}

		entry, err := parseRow(record, row, cols)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// skipBOM drops a leading UTF-8 byte order mark so a quoted first header
// cell still parses.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, _ := br.Peek(len(bom)); bytes.Equal(head, []byte(bom)) {
		_, _ = br.Discard(len(bom))
	}
	return br
}

func resolveColumns(header []string) (columns, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		if key := NormalizeHeader(h); key != "" {
			index[key] = i
		}
	}

	cols := columns{role: -1}
	for _, required := range []struct {
		key string
		dst *int
	}{
		{ColumnName, &cols.name},
		{ColumnType, &cols.nerve},
		{ColumnFunction, &cols.function},
	} {
		i, ok := index[required.key]
		if !ok {
			return columns{}, &MissingColumnError{Column: required.key}
		}
		*required.dst = i
	}

	if i, ok := index[ColumnSwallowingRole]; ok {
		cols.role = i
	}

	return cols, nil
}

func parseRow(record []string, row int, cols columns) (entities.Entry, error) {
	name := strings.TrimSpace(field(record, cols.name))
	if name == "" {
		return entities.Entry{}, &MissingFieldError{Row: row, Field: ColumnName}
	}

	rawType := field(record, cols.nerve)
	nerveType, err := entities.ParseNerveType(rawType)
	if errors.Is(err, entities.ErrNerveTypeEmpty) {
		return entities.Entry{}, &MissingFieldError{Row: row, Field: ColumnType}
	}
	if err != nil {
		return entities.Entry{}, &InvalidValueError{
			Row:   row,
			Field: ColumnType,
			Value: strings.TrimSpace(rawType),
			Err:   err,
		}
	}

	function := strings.TrimSpace(field(record, cols.function))
	if function == "" {
		return entities.Entry{}, &MissingFieldError{Row: row, Field: ColumnFunction}
	}

	var role string
	if cols.role >= 0 {
		role = NormalizeRole(field(record, cols.role))
	}

	return entities.Entry{
		Name:           name,
		Type:           nerveType,
		Function:       function,
		SwallowingRole: role,
		Order:          row,
	}, nil
}

// field returns record[i] or "" when the row is shorter than the header.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
