package clients

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDatasetArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"iata":"JFK","name":"John F. Kennedy International Airport","latitude":40.6413,"longitude":-73.7781}]`))
	}))
	defer srv.Close()

	list, err := NewAirportsClient(srv.URL).FetchDataset()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "JFK", list[0].IATA)
}

func TestFetchDatasetWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"airports":[{"iata":"LHR","name":"London Heathrow Airport","latitude":51.47,"longitude":-0.4543}]}`))
	}))
	defer srv.Close()

	list, err := NewAirportsClient(srv.URL).FetchDataset()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "LHR", list[0].IATA)
}

func TestFetchDatasetHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewAirportsClient(srv.URL).FetchDataset()
	assert.Error(t, err)
}

func TestFetchDatasetUnrecognizedFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rows": 3}`))
	}))
	defer srv.Close()

	_, err := NewAirportsClient(srv.URL).FetchDataset()
	assert.Error(t, err)
}
