package httpserver

import (
	"net/http"

	"hotelbook/internal/domain"
)

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var in domain.NewRoom
	if !h.decode(w, r, &in) {
		return
	}
	room, err := h.Rooms.Create(r.Context(), in)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusCreated, room, "room created successfully")
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Rooms.List(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, rooms, "rooms retrieved successfully")
}

func (h *Handlers) listRoomsByHotel(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := idParam(r, "hotelID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}
	rooms, err := h.Rooms.ListByHotel(r.Context(), hotelID)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, rooms, "rooms retrieved successfully")
}

func (h *Handlers) listAvailableRooms(w http.ResponseWriter, r *http.Request) {
	hotelID, ok := idParam(r, "hotelID")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid hotel id")
		return
	}
	rooms, err := h.Rooms.ListAvailableByHotel(r.Context(), hotelID)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, rooms, "available rooms retrieved successfully")
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}
	room, err := h.Rooms.Get(r.Context(), id)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, room, "room retrieved successfully")
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}
	var patch domain.RoomPatch
	if !h.decode(w, r, &patch) {
		return
	}
	if err := h.Rooms.Update(r.Context(), id, patch); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "room updated successfully")
}

func (h *Handlers) setRoomAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}
	var in struct {
		IsAvailable *bool `json:"is_available" validate:"required"`
	}
	if !h.decode(w, r, &in) {
		return
	}
	if err := h.Rooms.SetAvailability(r.Context(), id, *in.IsAvailable); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "room availability updated successfully")
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}
	if err := h.Rooms.Delete(r.Context(), id); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "room deleted successfully")
}
