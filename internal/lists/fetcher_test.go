package lists

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	gateerrors "github.com/mhazell/inspircd-auth-gate/internal/errors"
)

func TestFetch_SuccessfulDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("1.2.3.4/32\n5.6.7.8/24\n"))
	}))
	defer server.Close()

	entries, err := Fetch(server.URL, 10*time.Second)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := []string{"1.2.3.4/32", "5.6.7.8/24"}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Expected entries %v, got %v", expected, entries)
	}
}

func TestFetch_NonOKStatusIsLenient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("access denied\n"))
	}))
	defer server.Close()

	// Non-OK status must not abort: the returned body is still used
	entries, err := Fetch(server.URL, 10*time.Second)
	if err != nil {
		t.Fatalf("Expected no error for non-OK status, got: %v", err)
	}

	expected := []string{"access denied"}
	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Expected body to be kept, got %v", entries)
	}
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := Fetch(server.URL, 10*time.Second)
	if err == nil {
		t.Fatal("Expected error for closed server")
	}

	if !errors.Is(err, gateerrors.New(gateerrors.ErrCodeFetch, "")) {
		t.Errorf("Expected a FETCH_ERROR, got: %v", err)
	}
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	_, err := Fetch(server.URL, 50*time.Millisecond)
	if err == nil {
		t.Fatal("Expected timeout error")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected []string
	}{
		{
			name:     "simple list",
			body:     "1.2.3.4/32\n5.6.7.8/24\n",
			expected: []string{"1.2.3.4/32", "5.6.7.8/24"},
		},
		{
			name:     "windows line endings",
			body:     "1.2.3.4/32\r\n5.6.7.8/24\r\n",
			expected: []string{"1.2.3.4/32", "5.6.7.8/24"},
		},
		{
			name:     "empty lines dropped",
			body:     "1.2.3.4/32\n\n\n5.6.7.8/24\n\n",
			expected: []string{"1.2.3.4/32", "5.6.7.8/24"},
		},
		{
			name:     "no trailing newline",
			body:     "1.2.3.4/32\n5.6.7.8/24",
			expected: []string{"1.2.3.4/32", "5.6.7.8/24"},
		},
		{
			name:     "empty body",
			body:     "",
			expected: nil,
		},
		{
			name:     "entries are not validated",
			body:     "not-an-ip\n<html>\n",
			expected: []string{"not-an-ip", "<html>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.body); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("SplitLines() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitLines_PreservesOrder(t *testing.T) {
	body := "9.9.9.9/32\n1.1.1.1/32\n8.8.8.8/32\n"

	entries := SplitLines(body)
	expected := []string{"9.9.9.9/32", "1.1.1.1/32", "8.8.8.8/32"}

	if !reflect.DeepEqual(entries, expected) {
		t.Errorf("Expected input order preserved, got %v", entries)
	}
}
