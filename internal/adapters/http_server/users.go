package httpserver

import (
	"net/http"

	"hotelbook/internal/domain"
)

func (h *Handlers) createUser(w http.ResponseWriter, r *http.Request) {
	var in domain.NewUser
	if !h.decode(w, r, &in) {
		return
	}
	user, err := h.Users.Create(r.Context(), in)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusCreated, user, "user created successfully")
}

func (h *Handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, users, "users retrieved successfully")
}

func (h *Handlers) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := h.Users.Get(r.Context(), id)
	if err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, user, "user retrieved successfully")
}

func (h *Handlers) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	var patch domain.UserPatch
	if !h.decode(w, r, &patch) {
		return
	}
	if err := h.Users.Update(r.Context(), id, patch); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "user updated successfully")
}

func (h *Handlers) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if err := h.Users.Delete(r.Context(), id); err != nil {
		fail(w, err)
		return
	}
	writeData(w, http.StatusOK, nil, "user deleted successfully")
}
