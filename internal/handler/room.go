package handler

import (
	"net/http"

	"github.com/MustaliSadikot/pg-finder-ms/internal/domain"
	"github.com/MustaliSadikot/pg-finder-ms/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) AddRoom(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	listingID, ok := h.pathID(c, "id", "listing")
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.AddRoom(c.Request.Context(), session, listingID, domain.CreateRoomInput{
		RoomNumber:     req.RoomNumber,
		TotalBeds:      req.TotalBeds,
		CapacityPerBed: req.CapacityPerBed,
		Availability:   req.Availability,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// UpdateRoom toggles availability or edits the number and bed capacity of a room.
func (h *Handler) UpdateRoom(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	roomID, ok := h.pathID(c, "id", "room")
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), session, roomID, domain.UpdateRoomInput{
		RoomNumber:     req.RoomNumber,
		CapacityPerBed: req.CapacityPerBed,
		Availability:   req.Availability,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	roomID, ok := h.pathID(c, "id", "room")
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), session, roomID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListBeds(c *ginext.Context) {
	roomID, ok := h.pathID(c, "id", "room")
	if !ok {
		return
	}

	beds, err := h.roomService.ListBeds(c.Request.Context(), roomID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBedResponses(beds))
}

func (h *Handler) AddBed(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	roomID, ok := h.pathID(c, "id", "room")
	if !ok {
		return
	}

	var req dto.CreateBedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	bed, err := h.roomService.AddBed(c.Request.Context(), session, roomID, req.BedNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBedResponse(bed))
}

func (h *Handler) DeleteBed(c *ginext.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	bedID, ok := h.pathID(c, "id", "bed")
	if !ok {
		return
	}

	if err := h.roomService.DeleteBed(c.Request.Context(), session, bedID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
