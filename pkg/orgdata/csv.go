package orgdata

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the first line of every dataset file.
const Header = "Id,firstName,lastName,salary,managerId"

var headerFields = strings.Split(Header, ",")

// Encode writes the header followed by one row per record.
func Encode(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headerFields); err != nil {
		return err
	}

	row := make([]string, len(headerFields))
	for _, rec := range records {
		row[0] = strconv.Itoa(rec.ID)
		row[1] = rec.FirstName
		row[2] = rec.LastName
		row[3] = strconv.Itoa(rec.Salary)
		row[4] = strconv.Itoa(rec.ManagerID)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Marshal encodes records into a byte slice.
func Marshal(records []Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode reads a dataset. The header line is required. A row with only four
// fields has no manager and gets NoManager.
func Decode(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingHeader
	}
	if err != nil {
		return nil, err
	}
	if strings.Join(header, ",") != Header {
		return nil, fmt.Errorf("%w: got %q", ErrMissingHeader, strings.Join(header, ","))
	}

	var records []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		records = append(records, rec)
	}
}

func parseRow(row []string) (Record, error) {
	if len(row) != 4 && len(row) != 5 {
		return Record{}, fmt.Errorf("expected 4 or 5 fields, got %d", len(row))
	}

	id, err := strconv.Atoi(row[0])
	if err != nil {
		return Record{}, fmt.Errorf("id: %w", err)
	}
	salary, err := strconv.Atoi(row[3])
	if err != nil {
		return Record{}, fmt.Errorf("salary: %w", err)
	}

	managerID := NoManager
	if len(row) == 5 {
		managerID, err = strconv.Atoi(row[4])
		if err != nil {
			return Record{}, fmt.Errorf("managerId: %w", err)
		}
	}

	return Record{
		ID:        id,
		FirstName: row[1],
		LastName:  row[2],
		Salary:    salary,
		ManagerID: managerID,
	}, nil
}
