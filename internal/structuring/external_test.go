package structuring

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func TestParserService_Parse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/parse", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req parseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "raw resume text", req.Text)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.StructuredProfile{
			PersonalInfo: types.PersonalInfo{Name: "Jordan Smith"},
			Summary:      "parsed",
		})
	}))
	defer server.Close()

	profile, err := NewParserService(server.URL).Parse(context.Background(), "raw resume text")
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", profile.PersonalInfo.Name)
	assert.Equal(t, "parsed", profile.Summary)
}

func TestParserService_Parse_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewParserService(server.URL).Parse(context.Background(), "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestParserService_Parse_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	_, err := NewParserService(server.URL).Parse(context.Background(), "text")
	assert.Error(t, err)
}

func TestParserService_Parse_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := NewParserService(server.URL).Parse(context.Background(), "text")
	assert.Error(t, err)
}
