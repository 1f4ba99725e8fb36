package search

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lumenops/vendor-extract-service/common"
)

func testQuery() QuerySpec {
	return NewQuerySpec("vendor",
		[]Filter{{Field: "isinactive", Op: "is", Value: "F"}},
		[]string{"internalid", "entityid"})
}

func TestClientSearch(t *testing.T) {
	var captured searchRequest
	var apiKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != searchPath {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		apiKey = r.Header.Get("X-API-KEY")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatal(err)
		}

		json.NewEncoder(w).Encode(searchResponse{Rows: []RawRecord{
			{"internalid": {Value: "1"}, "entityid": {Value: "V-0001"}},
			{"internalid": {Value: "2"}, "entityid": {Value: "V-0002"}},
		}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret", 5*time.Second)

	rows, err := client.Search(context.Background(), testQuery(), 0, 1000)
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[1].Value("entityid") != "V-0002" {
		t.Errorf("Unexpected row mapping: %+v", rows[1])
	}

	if apiKey != "secret" {
		t.Errorf("Expected API key header, got %q", apiKey)
	}
	if captured.RecordType != "vendor" {
		t.Errorf("Expected record type vendor, got %q", captured.RecordType)
	}
	if len(captured.Filters) != 1 || captured.Filters[0] != [3]string{"isinactive", "is", "F"} {
		t.Errorf("Unexpected filter encoding: %v", captured.Filters)
	}
	if captured.Range.Start != 0 || captured.Range.End != 1000 {
		t.Errorf("Unexpected range: %+v", captured.Range)
	}
}

func TestClientSearchBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "query rejected", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)

	_, err := client.Search(context.Background(), testQuery(), 0, 10)
	if !errors.Is(err, common.ErrSearchFailed) {
		t.Errorf("Expected ErrSearchFailed, got %v", err)
	}
}

func TestClientSearchUnreachableHost(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "", time.Second)

	_, err := client.Search(context.Background(), testQuery(), 0, 10)
	if !errors.Is(err, common.ErrSearchFailed) {
		t.Errorf("Expected ErrSearchFailed, got %v", err)
	}
}

func TestClientSearchInvalidQuery(t *testing.T) {
	client := NewClient("http://localhost:9090", "", time.Second)

	if _, err := client.Search(context.Background(), QuerySpec{}, 0, 10); !errors.Is(err, common.ErrInvalidQuery) {
		t.Errorf("Expected ErrInvalidQuery for missing record type, got %v", err)
	}

	if _, err := client.Search(context.Background(), testQuery(), -1, 10); !errors.Is(err, common.ErrInvalidQuery) {
		t.Errorf("Expected ErrInvalidQuery for negative start, got %v", err)
	}

	if _, err := client.Search(context.Background(), testQuery(), 10, 5); !errors.Is(err, common.ErrInvalidQuery) {
		t.Errorf("Expected ErrInvalidQuery for inverted range, got %v", err)
	}
}

func TestQuerySpecImmutability(t *testing.T) {
	filters := []Filter{{Field: "isinactive", Op: "is", Value: "F"}}
	columns := []string{"internalid"}

	q := NewQuerySpec("vendor", filters, columns)

	filters[0].Value = "T"
	columns[0] = "mutated"

	if q.Filters[0].Value != "F" {
		t.Error("QuerySpec filters must not alias the caller's slice")
	}
	if q.Columns[0] != "internalid" {
		t.Error("QuerySpec columns must not alias the caller's slice")
	}
}
