package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

type stubHandler struct{}

func (stubHandler) Register(c *ginext.Context) { c.String(http.StatusOK, "Register") }
func (stubHandler) Login(c *ginext.Context) { c.String(http.StatusOK, "Login") }
func (stubHandler) SearchListings(c *ginext.Context) { c.String(http.StatusOK, "SearchListings") }
func (stubHandler) GetListing(c *ginext.Context) { c.String(http.StatusOK, "GetListing") }
func (stubHandler) CreateListing(c *ginext.Context) { c.String(http.StatusOK, "CreateListing") }
func (stubHandler) UpdateListing(c *ginext.Context) { c.String(http.StatusOK, "UpdateListing") }
func (stubHandler) DeleteListing(c *ginext.Context) { c.String(http.StatusOK, "DeleteListing") }
func (stubHandler) ListOwnerListings(c *ginext.Context) { c.String(http.StatusOK, "ListOwnerListings") }
func (stubHandler) AddRoom(c *ginext.Context) { c.String(http.StatusOK, "AddRoom") }
func (stubHandler) UpdateRoom(c *ginext.Context) { c.String(http.StatusOK, "UpdateRoom") }
func (stubHandler) DeleteRoom(c *ginext.Context) { c.String(http.StatusOK, "DeleteRoom") }
func (stubHandler) ListBeds(c *ginext.Context) { c.String(http.StatusOK, "ListBeds") }
func (stubHandler) AddBed(c *ginext.Context) { c.String(http.StatusOK, "AddBed") }
func (stubHandler) SelectBeds(c *ginext.Context) { c.String(http.StatusOK, "SelectBeds") }
func (stubHandler) DeleteBed(c *ginext.Context) { c.String(http.StatusOK, "DeleteBed") }
func (stubHandler) CreateBooking(c *ginext.Context) { c.String(http.StatusOK, "CreateBooking") }
func (stubHandler) ListMyBookings(c *ginext.Context) { c.String(http.StatusOK, "ListMyBookings") }
func (stubHandler) GetBooking(c *ginext.Context) { c.String(http.StatusOK, "GetBooking") }
func (stubHandler) UpdateBookingStatus(c *ginext.Context) { c.String(http.StatusOK, "UpdateBookingStatus") }

func denyAll(c *ginext.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestInitRouter_Routes(t *testing.T) {
	r := InitRouter("test", stubHandler{}, denyAll)

	tests := []struct {
		method string
		path   string
		code   int
		body   string
	}{
		{http.MethodGet, "/health", http.StatusOK, `{"status":"ok"}`},
		{http.MethodPost, "/api/auth/register", http.StatusOK, "Register"},
		{http.MethodPost, "/api/auth/login", http.StatusOK, "Login"},
		{http.MethodGet, "/api/listings", http.StatusOK, "SearchListings"},
		{http.MethodGet, "/api/listings/l1", http.StatusOK, "GetListing"},
		{http.MethodGet, "/api/rooms/r1/beds", http.StatusOK, "ListBeds"},
		{http.MethodGet, "/api/rooms/r1/beds/select", http.StatusOK, "SelectBeds"},

		{http.MethodPost, "/api/listings", http.StatusUnauthorized, ""},
		{http.MethodPut, "/api/listings/l1", http.StatusUnauthorized, ""},
		{http.MethodDelete, "/api/listings/l1", http.StatusUnauthorized, ""},
		{http.MethodGet, "/api/owner/listings", http.StatusUnauthorized, ""},
		{http.MethodPost, "/api/listings/l1/rooms", http.StatusUnauthorized, ""},
		{http.MethodPatch, "/api/rooms/r1", http.StatusUnauthorized, ""},
		{http.MethodDelete, "/api/rooms/r1", http.StatusUnauthorized, ""},
		{http.MethodPost, "/api/rooms/r1/beds", http.StatusUnauthorized, ""},
		{http.MethodDelete, "/api/beds/b1", http.StatusUnauthorized, ""},
		{http.MethodPost, "/api/bookings", http.StatusUnauthorized, ""},
		{http.MethodGet, "/api/bookings", http.StatusUnauthorized, ""},
		{http.MethodGet, "/api/bookings/bk1", http.StatusUnauthorized, ""},
		{http.MethodPatch, "/api/bookings/bk1/status", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.code, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestInitRouter_PrivateRoutesPassAuth(t *testing.T) {
	allow := func(c *ginext.Context) { c.Next() }
	r := InitRouter("test", stubHandler{}, allow)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/bookings/bk1/status", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "UpdateBookingStatus", w.Body.String())
}
