package importfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

type csvColumns struct {
	firstName   int
	lastName    int
	email       int
	companyName int
	phone       int
	password    int
}

// ParseCSV reads a header row followed by one customer per line. Columns are
// matched loosely by header name, so "FirstName" and "first_name" both work.
// A file with a header and no rows yields no records.
func ParseCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	rows = dropBlankRows(rows)
	if len(rows) < 2 {
		return []Record{}, nil
	}

	headers := rows[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	cols := matchColumns(headers)

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, Record{
			FirstName:   field(row, cols.firstName),
			LastName:    field(row, cols.lastName),
			Email:       field(row, cols.email),
			CompanyName: field(row, cols.companyName),
			Phone:       field(row, cols.phone),
			Password:    field(row, cols.password),
		})
	}
	return records, nil
}

func matchColumns(headers []string) csvColumns {
	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = strings.ToLower(strings.TrimSpace(h))
	}

	find := func(names ...string) int {
		for i, h := range normalized {
			for _, name := range names {
				if strings.Contains(h, name) {
					return i
				}
			}
		}
		return -1
	}

	return csvColumns{
		firstName:   find("first_name", "firstname"),
		lastName:    find("last_name", "lastname"),
		email:       find("email"),
		companyName: find("company_name", "company"),
		phone:       find("phone"),
		password:    find("password"),
	}
}

func field(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	value := strings.TrimSpace(row[index])
	value = strings.TrimPrefix(value, "'")
	return strings.TrimSuffix(value, "'")
}

func dropBlankRows(rows [][]string) [][]string {
	kept := rows[:0]
	for _, row := range rows {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		kept = append(kept, row)
	}
	return kept
}
