package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mohammadpnp/customer-import/internal/client"
	"github.com/mohammadpnp/customer-import/internal/importfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	t.Parallel()

	var (
		gotAuth      string
		gotRequestID string
		gotBody      map[string][]importfile.Record
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/admin/customers/import", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"import_id": "cimp_1",
			"imported": 1,
			"failed": 1,
			"customers": [{"id": "cus_1", "email": "john.doe@example.com"}],
			"results": [
				{"success": true, "email": "john.doe@example.com", "customer": {"id": "cus_1"}},
				{"success": false, "email": "jane.smith@example.com", "error": "Customer with this email already exists"}
			]
		}`))
	}))
	defer server.Close()

	c := client.New(server.URL+"/", "token")
	out, err := c.Import(context.Background(), importfile.SampleRecords())

	require.NoError(t, err)
	require.Equal(t, "Bearer token", gotAuth)
	require.NotEmpty(t, gotRequestID)
	require.Len(t, gotBody["customers"], 2)
	require.Equal(t, 1, out.Imported)
	require.Equal(t, 1, out.Failed)
	require.Equal(t, []string{"jane.smith@example.com"}, out.FailedEmails())
}

func TestImportErrorEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_data","message":"Invalid request body","details":["customers[0].email must be a valid email"]}}`))
	}))
	defer server.Close()

	_, err := client.New(server.URL, "token").Import(context.Background(), importfile.SampleRecords())

	require.Error(t, err)
	require.True(t, errors.Is(err, client.ErrImportRequest))
	require.Contains(t, err.Error(), "status 400: Invalid request body: customers[0].email must be a valid email")
}

func TestImportUnexpectedBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	_, err := client.New(server.URL, "").Import(context.Background(), nil)

	require.ErrorIs(t, err, client.ErrImportRequest)
	require.Contains(t, err.Error(), "status 502")
}
