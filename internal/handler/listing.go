package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// SearchListings serves GET /api/listings. Without query parameters every
// listing is returned.
func (h *Handler) SearchListings(c *ginext.Context) {
	filters, err := parseFilters(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	listings, err := h.listingService.Search(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponses(listings))
}

func (h *Handler) GetListing(c *ginext.Context) {
	id, ok := h.pathID(c, "id", "listing")
	if !ok {
		return
	}

	details, err := h.listingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingDetailsResponse(details))
}

func (h *Handler) CreateListing(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req dto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.listingService.Create(c.Request.Context(), session, toListingInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToListingResponse(listing))
}

func (h *Handler) UpdateListing(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	listing, err := h.listingService.Update(c.Request.Context(), session, id, toListingInput(req))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponse(listing))
}

func (h *Handler) DeleteListing(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c, "id", "listing")
	if !ok {
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), session, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListOwnerListings(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	listings, err := h.listingService.ListByOwner(c.Request.Context(), session)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListingResponses(listings))
}

func toListingInput(req dto.ListingRequest) domain.ListingInput {
	return domain.ListingInput{
		Name:             req.Name,
		Address:          req.Address,
		Description:      req.Description,
		Price:            req.Price,
		GenderPreference: domain.GenderPreference(req.GenderPreference),
		Amenities:        req.Amenities,
		ImageURL:         req.ImageURL,
		Availability:     req.Availability,
	}
}

// parseFilters builds FilterOptions from the query string. Only a missing
// max_price means no upper bound; max_price=0 matches free listings.
func parseFilters(c *ginext.Context) (domain.FilterOptions, error) {
	f := domain.FilterOptions{
		PriceRange: domain.PriceRange{Min: 0, Max: math.MaxInt},
		Location:   strings.TrimSpace(c.Query("location")),
	}

	var err error
	if f.PriceRange.Min, err = queryInt(c, "min_price", 0); err != nil {
		return f, err
	}
	if f.PriceRange.Max, err = queryInt(c, "max_price", math.MaxInt); err != nil {
		return f, err
	}
	if f.PriceRange.Min > f.PriceRange.Max {
		return f, validationErr("min_price must not exceed max_price")
	}

	if g := strings.TrimSpace(c.Query("gender")); g != "" {
		f.GenderPreference = domain.GenderPreference(strings.ToLower(g))
		if !f.GenderPreference.IsValid() {
			return f, validationErr("gender must be one of male, female, any")
		}
	}

	if raw := c.Query("amenities"); raw != "" {
		for _, a := range strings.Split(raw, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}

	return f, nil
}

func queryInt(c *ginext.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, validationErr(key + " must be a non-negative integer")
	}
	return v, nil
}
