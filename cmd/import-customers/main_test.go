package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mohammadpnp/customer-import/internal/importfile"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunPrintsSample(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(context.Background(), []string{"-sample"}, nil, &out, zap.NewNop())

	require.NoError(t, err)
	var records []importfile.Record
	require.NoError(t, json.Unmarshal(out.Bytes(), &records))
	require.Equal(t, importfile.SampleRecords(), records)
}

func TestRunImportsFromStdin(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"imported":2,"failed":0,"customers":[],"results":[{"success":true,"email":"a@example.com"},{"success":true,"email":"b@example.com"}]}`))
	}))
	defer server.Close()

	csv := "first_name,last_name,email,password\nA,One,a@example.com,secret1\nB,Two,b@example.com,secret2\n"
	var out bytes.Buffer
	err := run(context.Background(),
		[]string{"-file", "-", "-format", "csv", "-url", server.URL, "-token", "t"},
		strings.NewReader(csv), &out, zap.NewNop())

	require.NoError(t, err)
	require.Equal(t, "Successfully imported 2 customers\n", out.String())
}

func TestRunStopsOnValidationProblems(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"first_name":"","last_name":"Doe","email":"bad","password":"123"}]`), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), []string{"-file", path, "-url", "http://127.0.0.1:0"}, nil, &out, zap.NewNop())

	require.ErrorIs(t, err, errValidation)
	require.Contains(t, out.String(), "Row 1: First name is required")
	require.Contains(t, out.String(), "Row 1: Invalid email")
}

func TestRunRefusesEmptyList(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(context.Background(), []string{"-file", "-", "-format", "json"}, strings.NewReader("[]"), &out, zap.NewNop())

	require.ErrorIs(t, err, importfile.ErrNoCustomers)
	require.Contains(t, out.String(), "No valid customers to import")
}

func TestRunRequiresFile(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	err := run(context.Background(), nil, nil, &out, zap.NewNop())

	require.EqualError(t, err, "-file is required")
}
