package sheets

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	assert.Equal(t, "Sheet1!A1", Range("", "A1"))
	assert.Equal(t, "Vacatures!A2:Z", Range("Vacatures", "A2:Z"))
	assert.Equal(t, "'Mijn tab'!A1", Range("Mijn tab", "A1"))
	assert.Equal(t, "'Jan''s'!A1", Range("Jan's", "A1"))
	assert.Equal(t, "Vacatures", Range("Vacatures", ""))
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(context.Background(), Config{})
	assert.Error(t, err)
}

func TestAppendValuesAgainstLocalEndpoint(t *testing.T) {
	var gotPath string
	var gotBody struct {
		Values [][]any `json:"values"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"updates":{"updatedRows":2}}`))
	}))
	defer srv.Close()

	c, err := NewClient(context.Background(), Config{Endpoint: srv.URL + "/"})
	require.NoError(t, err)

	n, err := c.AppendValues(context.Background(), "sheet-1", Range("Vacatures", "A1"), [][]interface{}{
		{"Titel", "Gemeente"},
		{"Monteur", "Rotterdam"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	assert.True(t, strings.HasPrefix(gotPath, "/v4/spreadsheets/sheet-1/values/"), gotPath)
	assert.True(t, strings.HasSuffix(gotPath, ":append"), gotPath)
	require.Len(t, gotBody.Values, 2)
	assert.Equal(t, "Monteur", gotBody.Values[1][0])
}
