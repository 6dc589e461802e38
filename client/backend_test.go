package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smartslot/models"

	"github.com/stretchr/testify/require"
)

func TestFetchCreatedDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/available-dates", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"dates": []models.CreatedDate{
				{ID: "d-1", Date: "2025-06-10", SlotDuration: 60, StartTime: "09:00", EndTime: "13:00"},
			},
		})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL, 5*time.Second)
	dates, err := c.FetchCreatedDates(context.Background())
	require.NoError(t, err)
	require.Len(t, dates, 1)
	require.Equal(t, "d-1", dates[0].ID)
	require.Equal(t, models.DateKey("2025-06-10"), dates[0].Date)
}

func TestCreateDatesSendsPayload(t *testing.T) {
	var received models.BulkCreateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/available-dates/bulk", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(models.BulkCreateResponse{Success: true, Message: "ok"})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL, 5*time.Second)
	resp, err := c.CreateDates(context.Background(), models.BulkCreateRequest{
		Dates: []models.BulkDateEntry{
			{Date: "2025-06-10", StartTime: "09:00", EndTime: "13:00", SlotDuration: 60},
		},
		SkipExisting: true,
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.True(t, received.SkipExisting)
	require.Len(t, received.Dates, 1)
	require.Equal(t, "09:00", received.Dates[0].StartTime)
}

func TestDeleteDateEscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/available-dates/d%2F1", r.RequestURI)
		json.NewEncoder(w).Encode(models.DeleteResponse{Success: true})
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL, 5*time.Second)
	resp, err := c.DeleteDate(context.Background(), "d/1")
	require.NoError(t, err)
	require.True(t, resp.Success)
}

func TestStatusErrorCarriesCodeAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "date not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewBackendClient(srv.URL, 5*time.Second)
	_, err := c.DeleteDate(context.Background(), "missing")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Code)
	require.Contains(t, statusErr.Body, "date not found")
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening any more

	c := NewBackendClient(srv.URL, time.Second)
	_, err := c.FetchCreatedDates(context.Background())
	require.True(t, errors.Is(err, ErrUnreachable), "got %v", err)
}
