package services_test

import (
	"context"
	"dao_governance_system/internal/services"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStakeService_GetStake(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stake/addr1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_, _ = w.Write([]byte(`{"voter":"addr1","amount":150}`))
	}))
	defer server.Close()

	stake, err := services.NewStakeService(server.URL, time.Second).GetStake(context.Background(), "addr1")
	require.NoError(t, err)
	assert.Equal(t, uint64(150), stake)
}

func TestStakeService_UnknownVoterHasNoStake(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	stake, err := services.NewStakeService(server.URL, time.Second).GetStake(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, stake)
}

func TestStakeService_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	_, err := services.NewStakeService(server.URL, time.Second).GetStake(context.Background(), "addr1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestStakeService_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"amount":-1}`))
	}))
	defer server.Close()

	_, err := services.NewStakeService(server.URL, time.Second).GetStake(context.Background(), "addr1")
	assert.Error(t, err)
}
