package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	bookingRepo "wellbook/database/repository/booking"
	clientRepo "wellbook/database/repository/client"
	providerRepo "wellbook/database/repository/provider"
	"wellbook/models"
	"wellbook/services/booking"
)

type fixedClock struct{ now time.Time }

func (f fixedClock) Now() time.Time { return f.now }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := providerRepo.NewMemoryRegistry()
	require.NoError(t, registry.Register(models.Provider{
		ID:         1,
		Name:       "Dr. A",
		Categories: []string{"anxiety"},
		Slots: []models.Slot{
			{ID: 101, StartTime: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC), Status: models.SlotAvailable},
		},
	}))

	clients := clientRepo.NewMemoryRepo()
	require.NoError(t, clients.Register(models.Client{ID: 101, Name: "Alice"}))
	require.NoError(t, clients.Register(models.Client{ID: 102, Name: "Bob"}))

	svc := &booking.DefaultReservationService{
		Registry: registry,
		Ledger:   bookingRepo.NewMemoryLedger(),
		Clients:  clients,
		Clock:    fixedClock{now: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)},
	}
	h := NewReservationHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/api/providers/search", h.SearchProviders)
	r.GET("/api/providers", h.GetProvidersHandler)
	r.POST("/api/bookings", h.CreateBooking)
	r.GET("/api/clients/:id/bookings", h.ListClientBookings)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchReturnsAvailableProviders(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/providers/search", `{"category":"anxiety"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message   string            `json:"message"`
		Providers []models.Provider `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Found 1 available providers.", resp.Message)
	require.Len(t, resp.Providers, 1)
	assert.Equal(t, 1, resp.Providers[0].ID)

	// Timestamps go out in RFC 3339.
	assert.True(t, strings.Contains(w.Body.String(), "2026-08-30T09:00:00Z"))
}

func TestSearchNoMatch(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/providers/search", `{"category":"grief"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "grief")
}

func TestSearchRejectsMissingCategory(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/providers/search", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/bookings", `{"client_id":101,"provider_id":1,"slot_id":101}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Message string         `json:"message"`
		Booking models.Booking `json:"booking_details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Booking confirmed!", created.Message)
	assert.Equal(t, int64(1), created.Booking.ID)
	assert.Equal(t, "Dr. A", created.Booking.ProviderName)
	assert.Equal(t, models.BookingConfirmed, created.Booking.Status)

	// Same slot again conflicts.
	w = do(r, http.MethodPost, "/api/bookings", `{"client_id":102,"provider_id":1,"slot_id":101}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The booked slot shows up in the full dump.
	w = do(r, http.MethodGet, "/api/providers", "")
	require.Equal(t, http.StatusOK, w.Code)
	var providers []models.Provider
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &providers))
	require.Len(t, providers, 1)
	assert.Equal(t, models.SlotBooked, providers[0].Slots[0].Status)

	// And the client's history holds exactly the one booking.
	w = do(r, http.MethodGet, "/api/clients/101/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)
}

func TestBookingNotFoundVariants(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name string
		body string
		want string
	}{
		{"unknown client", `{"client_id":999,"provider_id":1,"slot_id":101}`, "Client not found"},
		{"unknown provider", `{"client_id":101,"provider_id":99,"slot_id":101}`, "Provider not found"},
		{"unknown slot", `{"client_id":101,"provider_id":1,"slot_id":999}`, "Time slot not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/bookings", tc.body)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestListBookingsUnknownClient(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/clients/999/bookings", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/clients/abc/bookings", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsEmptyForKnownClient(t *testing.T) {
	r := newTestRouter(t)

	w := do(r, http.MethodGet, "/api/clients/102/bookings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
