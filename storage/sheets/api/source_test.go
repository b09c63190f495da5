package sheetsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/absedu/campus/core"
	"github.com/absedu/campus/core/sheet"
)

func newTestSource(t *testing.T, handler http.HandlerFunc) *Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	src, err := New(core.SheetsConfig{BaseURL: srv.URL + "/", SpreadsheetID: "sheet-1", APIKey: "k3y"})
	require.NoError(t, err)
	return src
}

func TestNew_requiresCredentials(t *testing.T) {
	_, err := New(core.SheetsConfig{APIKey: "k"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spreadsheet id")

	_, err = New(core.SheetsConfig{SpreadsheetID: "s"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestSource_Values(t *testing.T) {
	var gotPath, gotKey string
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"range":"Lectures!A1:M3","majorDimension":"ROWS","values":[["Subject","Date"],["Maths","2024-05-01"],["Physics"]]}`))
	})

	grid, err := src.Values(context.Background(), "Lectures!A:M")
	require.NoError(t, err)
	assert.Equal(t, sheet.Grid{{"Subject", "Date"}, {"Maths", "2024-05-01"}, {"Physics"}}, grid)
	assert.Equal(t, "/sheet-1/values/Lectures!A:M", gotPath)
	assert.Equal(t, "k3y", gotKey)
}

func TestSource_Values_noValues(t *testing.T) {
	src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"range":"banners!A:F"}`))
	})

	grid, err := src.Values(context.Background(), "banners!A:F")
	require.NoError(t, err)
	assert.Empty(t, grid)

	_, err = sheet.Fetch(context.Background(), src, "banners!A:F")
	assert.True(t, sheet.IsEmptyGrid(err))
}

func TestSource_Values_errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"forbidden", http.StatusForbidden, `{"error":{}}`, "sheet: students!A:K fetch failed: 403 Forbidden"},
		{"server error", http.StatusInternalServerError, ``, "sheet: students!A:K fetch failed: 500 Internal Server Error"},
		{"bad json", http.StatusOK, `<html>`, "decoding values"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newTestSource(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := src.Values(context.Background(), "students!A:K")
			require.Error(t, err)
			assert.True(t, sheet.IsTransport(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSource_Values_network(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	src, err := New(core.SheetsConfig{BaseURL: srv.URL, SpreadsheetID: "s", APIKey: "k"})
	require.NoError(t, err)

	_, err = src.Values(context.Background(), "x!A:B")
	require.Error(t, err)
	var terr *sheet.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, 0, terr.StatusCode)
	assert.NotNil(t, terr.Err)
}
