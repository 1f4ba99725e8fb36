package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/lumenops/vendor-extract-service/extractor"
	"github.com/lumenops/vendor-extract-service/search"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearch struct {
	records []search.RawRecord
	err     error
}

func (s *stubSearch) Search(ctx context.Context, q search.QuerySpec, start, end int) ([]search.RawRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if start >= len(s.records) {
		return []search.RawRecord{}, nil
	}
	if end > len(s.records) {
		end = len(s.records)
	}
	return s.records[start:end], nil
}

func stubRecords(n int) []search.RawRecord {
	records := make([]search.RawRecord, n)
	for i := range records {
		records[i] = search.RawRecord{
			"internalid":  {Value: strconv.Itoa(i + 1)},
			"entityid":    {Value: fmt.Sprintf("V-%04d", i+1)},
			"companyname": {Value: fmt.Sprintf("Company %d", i+1)},
			"isinactive":  {Value: "F"},
		}
	}
	return records
}

func newTestHandler(s search.RecordSearch) *VendorHandler {
	ex := extractor.New(s, zerolog.Nop())
	return NewVendorHandler(ex, nil, nil)
}

func TestExtractAllEnvelope(t *testing.T) {
	h := newTestHandler(&stubSearch{records: stubRecords(3)})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(3), body["totalVendors"])
	assert.Equal(t, false, body["hasMore"])
	assert.Contains(t, body, "message")

	extractedAt, ok := body["extractedAt"].(string)
	require.True(t, ok, "extractedAt must be a string")
	_, err := time.Parse(time.RFC3339, extractedAt)
	assert.NoError(t, err, "extractedAt must be ISO-8601")

	vendors, ok := body["vendors"].([]interface{})
	require.True(t, ok, "vendors must be an array")
	require.Len(t, vendors, 3)

	first, ok := vendors[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1", first["id"])
	assert.Equal(t, "V-0001", first["entityCode"])
	assert.Equal(t, "Company 1", first["displayLabel"])
	assert.Equal(t, "Company 1", first["companyName"])
	assert.Equal(t, false, first["isInactive"])
	assert.Nil(t, first["subsidiaryLabel"], "absent subsidiary must serialize as null")
	assert.Nil(t, first["categoryId"], "absent category must serialize as null")
}

func TestExtractAllEmptyDataset(t *testing.T) {
	h := newTestHandler(&stubSearch{})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"vendors":[]`, "empty result must serialize as [], not null")
}

func TestExtractAllFailureEnvelope(t *testing.T) {
	h := newTestHandler(&stubSearch{err: errors.New("backend unavailable")})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "backend unavailable")
	assert.Equal(t, "Vendor extraction failed", body["message"])
	assert.NotContains(t, body, "vendors", "a failure must never carry a partial list")
}

func TestExtractPageDefaults(t *testing.T) {
	h := newTestHandler(&stubSearch{records: stubRecords(500)})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["startIndex"])
	assert.Equal(t, float64(1000), body["pageSize"])
	assert.Equal(t, float64(500), body["returnedCount"])
	assert.Equal(t, false, body["hasMore"])
}

func TestExtractPageWindow(t *testing.T) {
	h := newTestHandler(&stubSearch{records: stubRecords(1500)})

	payload := strings.NewReader(`{"startIndex": 1000, "pageSize": 1000}`)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", payload))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, float64(1000), body["startIndex"])
	assert.Equal(t, float64(500), body["returnedCount"])
	assert.Equal(t, false, body["hasMore"])
	assert.Len(t, body["vendors"], 500)
}

func TestExtractPageClampsPageSize(t *testing.T) {
	h := newTestHandler(&stubSearch{records: stubRecords(1500)})

	payload := strings.NewReader(`{"pageSize": 5000}`)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", payload))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, float64(1000), body["pageSize"])
	assert.Equal(t, float64(1000), body["returnedCount"])
	assert.Equal(t, true, body["hasMore"])
}

func TestExtractPageInvalidBody(t *testing.T) {
	h := newTestHandler(&stubSearch{records: stubRecords(10)})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractPageNegativeStartRejected(t *testing.T) {
	h := newTestHandler(&stubSearch{records: stubRecords(10)})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"startIndex": -1}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExtractPageFailureEnvelope(t *testing.T) {
	h := newTestHandler(&stubSearch{err: errors.New("query rejected")})

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"pageSize": 10}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "query rejected")
	assert.NotContains(t, body, "vendors")
}
