package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsPayload struct {
	PE *float64 `json:"pe"`
	PB *float64 `json:"pb"`
}

func TestDecodeJSONObject(t *testing.T) {
	obj, err := DecodeJSONObject[statsPayload](strings.NewReader(`{"pe": 24.5, "pb": 3.1}`))
	require.NoError(t, err)
	require.NotNil(t, obj.PE)
	assert.Equal(t, 24.5, *obj.PE)
	require.NotNil(t, obj.PB)
	assert.Equal(t, 3.1, *obj.PB)
}

func TestDecodeJSONObjectMissingFields(t *testing.T) {
	obj, err := DecodeJSONObject[statsPayload](strings.NewReader(`{}`))
	require.NoError(t, err)
	assert.Nil(t, obj.PE)
	assert.Nil(t, obj.PB)
}

func TestDecodeJSONObjectInvalid(t *testing.T) {
	_, err := DecodeJSONObject[statsPayload](strings.NewReader(`not json`))
	require.Error(t, err)
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pe": 18.2}`))
	}))
	defer srv.Close()

	f := newTestFetcher()
	obj, err := FetchJSON[statsPayload](context.Background(), f, srv.URL)
	require.NoError(t, err)
	require.NotNil(t, obj.PE)
	assert.Equal(t, 18.2, *obj.PE)
	assert.Nil(t, obj.PB)
}

func TestFetchJSONHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := newTestFetcher()
	_, err := FetchJSON[statsPayload](context.Background(), f, srv.URL)
	require.Error(t, err)
}
