package httpserver

import (
	"net/http"

	"hotelbook/internal/domain"
)

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var in domain.NewHotel
	if !h.decode(w, r, &in) {
		return
	}
	hotel, err := h.Hotels.Create(r.Context(), in)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusCreated, hotel, "hotel created successfully")
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Hotels.List(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, hotels, "hotels retrieved successfully")
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}
	hotel, err := h.Hotels.Get(r.Context(), id)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, hotel, "hotel retrieved successfully")
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}
	var patch domain.HotelPatch
	if !h.decode(w, r, &patch) {
		return
	}
	if err := h.Hotels.Update(r.Context(), id, patch); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "hotel updated successfully")
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}
	if err := h.Hotels.Delete(r.Context(), id); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "hotel deleted successfully")
}
