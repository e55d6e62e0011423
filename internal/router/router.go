package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)

	SearchListings(c *ginext.Context)
	GetListing(c *ginext.Context)
	CreateListing(c *ginext.Context)
	UpdateListing(c *ginext.Context)
	DeleteListing(c *ginext.Context)
	ListOwnerListings(c *ginext.Context)

	AddRoom(c *ginext.Context)
	UpdateRoom(c *ginext.Context)
	DeleteRoom(c *ginext.Context)
	ListBeds(c *ginext.Context)
	AddBed(c *ginext.Context)
	SelectBeds(c *ginext.Context)
	DeleteBed(c *ginext.Context)

	CreateBooking(c *ginext.Context)
	ListMyBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
}

// InitRouter mounts the API. auth guards every route that acts on behalf of a
// user; listing and bed reads stay public.
func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		// Public catalog
		api.GET("/listings", h.SearchListings)
		api.GET("/listings/:id", h.GetListing)
		api.GET("/rooms/:id/beds", h.ListBeds)
		api.GET("/rooms/:id/beds/select", h.SelectBeds)
	}

	private := router.Group("/api", auth)
	{
		// Listings
		private.POST("/listings", h.CreateListing)
		private.PUT("/listings/:id", h.UpdateListing)
		private.DELETE("/listings/:id", h.DeleteListing)
		private.GET("/owner/listings", h.ListOwnerListings)

		// Rooms & beds
		private.POST("/listings/:id/rooms", h.AddRoom)
		private.PATCH("/rooms/:id", h.UpdateRoom)
		private.DELETE("/rooms/:id", h.DeleteRoom)
		private.POST("/rooms/:id/beds", h.AddBed)
		private.DELETE("/beds/:id", h.DeleteBed)

		// Bookings
		private.POST("/bookings", h.CreateBooking)
		private.GET("/bookings", h.ListMyBookings)
		private.GET("/bookings/:id", h.GetBooking)
		private.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
