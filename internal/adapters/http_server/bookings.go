package httpserver

import (
	"net/http"

	"hotelbook/internal/domain"
)

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var in domain.NewBooking
	if !h.decode(w, r, &in) {
		return
	}
	booking, err := h.Bookings.Create(r.Context(), in)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusCreated, booking, "booking created successfully")
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Bookings.List(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, bookings, "bookings retrieved successfully")
}

func (h *Handlers) listBookingsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	bookings, err := h.Bookings.ListByUser(r.Context(), userID)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, bookings, "bookings retrieved successfully")
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	booking, err := h.Bookings.Get(r.Context(), id)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, booking, "booking retrieved successfully")
}

func (h *Handlers) setBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	var in struct {
		Status string `json:"status" validate:"required"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	if _, err := h.Bookings.SetStatus(r.Context(), id, domain.BookingStatus(in.Status)); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "booking status updated successfully")
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if _, err := h.Bookings.Cancel(r.Context(), id); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "booking cancelled successfully")
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := h.Bookings.Delete(r.Context(), id); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "booking deleted successfully")
}
