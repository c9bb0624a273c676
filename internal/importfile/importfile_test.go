package importfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohammadpnp/customer-import/internal/importfile"
)

func TestParseCSV(t *testing.T) {
	input := "\ufeffFirst_Name, LastName ,EMAIL,Company,phone,password\n" +
		"John,Doe,john.doe@example.com,\"Acme, Inc.\",+1234567890,temppass123\n" +
		"\n" +
		"'Jane',Smith,jane.smith@example.com,,, temppass456\n"

	records, err := importfile.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []importfile.Record{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", CompanyName: "Acme, Inc.", Phone: "+1234567890", Password: "temppass123"},
		{FirstName: "Jane", LastName: "Smith", Email: "jane.smith@example.com", Password: "temppass456"},
	}, records)
}

func TestParseCSVWithoutOptionalColumns(t *testing.T) {
	input := "first_name,last_name,email,password\nJohn,Doe,john@example.com,secret1\n"

	records, err := importfile.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Empty(t, records[0].CompanyName)
	require.Empty(t, records[0].Phone)
}

func TestParseCSVShortRowsAndHeaderOnly(t *testing.T) {
	records, err := importfile.ParseCSV(strings.NewReader("first_name,last_name,email,password\n"))
	require.NoError(t, err)
	require.Empty(t, records)

	records, err = importfile.ParseCSV(strings.NewReader("first_name,last_name,email,password\nJohn\n"))
	require.NoError(t, err)
	require.Equal(t, []importfile.Record{{FirstName: "John"}}, records)
}

func TestParseCSVMalformed(t *testing.T) {
	_, err := importfile.ParseCSV(strings.NewReader("first_name,last_name\n\"John,Doe\n"))
	require.ErrorIs(t, err, importfile.ErrInvalidCSV)
}

func TestParseJSON(t *testing.T) {
	records, err := importfile.ParseJSON(strings.NewReader(`[
	  {"first_name":"John","last_name":"Doe","email":"john.doe@example.com","password":"temppass123"}
	]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "john.doe@example.com", records[0].Email)

	_, err = importfile.ParseJSON(strings.NewReader(`{"first_name":"John"}`))
	require.ErrorIs(t, err, importfile.ErrNotArray)

	_, err = importfile.ParseJSON(strings.NewReader(`[{"first_name":`))
	require.ErrorIs(t, err, importfile.ErrInvalidJSON)

	_, err = importfile.ParseJSON(strings.NewReader(`[1, 2]`))
	require.ErrorIs(t, err, importfile.ErrInvalidJSON)
}

func TestValidate(t *testing.T) {
	require.Empty(t, importfile.Validate(importfile.SampleRecords()))

	problems := importfile.Validate([]importfile.Record{
		{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com", Password: "temppass123"},
		{FirstName: " ", LastName: "", Email: "jane@example", Password: "123"},
	})
	require.Equal(t, []string{
		"Row 2: First name is required",
		"Row 2: Last name is required",
		"Row 2: Invalid email",
		"Row 2: Password must be at least 6 characters",
	}, problems)
}

func TestDetectFormat(t *testing.T) {
	format, err := importfile.DetectFormat("customers.CSV")
	require.NoError(t, err)
	require.Equal(t, importfile.FormatCSV, format)

	format, err = importfile.DetectFormat("/tmp/customers.json")
	require.NoError(t, err)
	require.Equal(t, importfile.FormatJSON, format)

	_, err = importfile.DetectFormat("customers.xlsx")
	require.ErrorIs(t, err, importfile.ErrUnknownFormat)
}
