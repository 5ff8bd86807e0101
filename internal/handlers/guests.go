package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	v1 "github.com/cordial-dev/cordial/api/v1"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
)

// GetHealth reports liveness without touching the database
// (GET /health)
func (h *Handler) GetHealth(c *gin.Context) {
	h.respondEmpty(c)
}

// GetBook returns the database server version. A failed query is reported
// in the body, still with status 200.
// (GET /book)
func (h *Handler) GetBook(c *gin.Context) {
	version, err := h.versions.Version(c.Request.Context())
	if err != nil {
		h.respondText(c, err.Error())
		return
	}
	h.respondText(c, version)
}

// ListGuests returns every guest in insertion order
// (GET /guests)
func (h *Handler) ListGuests(c *gin.Context) {
	guests, err := h.guests.GetAll(c.Request.Context())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondJSON(c, v1.NewGuestsFromModel(guests))
}

// CreateGuest stores the guest in the body
// (POST /guests)
func (h *Handler) CreateGuest(c *gin.Context) {
	body, ok := h.bindGuest(c)
	if !ok {
		return
	}

	created, err := h.guests.Create(c.Request.Context(), body.ToModel())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondJSON(c, v1.NewGuestFromModel(created))
}

// GetGuest returns one guest
// (GET /guests/{id})
func (h *Handler) GetGuest(c *gin.Context, id uuid.UUID) {
	guest, err := h.guests.Get(c.Request.Context(), id)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondJSON(c, v1.NewGuestFromModel(guest))
}

// UpdateGuest overwrites the guest and echoes the body
// (PUT /guests/{id})
func (h *Handler) UpdateGuest(c *gin.Context, id uuid.UUID) {
	body, ok := h.bindGuestFor(c, id)
	if !ok {
		return
	}

	updated, err := h.guests.Update(c.Request.Context(), body.ToModel())
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondJSON(c, v1.NewGuestFromModel(updated))
}

// DeleteGuest removes the guest. Deleting a missing guest succeeds.
// (DELETE /guests/{id})
func (h *Handler) DeleteGuest(c *gin.Context, id uuid.UUID) {
	body, ok := h.bindGuestFor(c, id)
	if !ok {
		return
	}

	if err := h.guests.Delete(c.Request.Context(), body.ToModel()); err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondEmpty(c)
}

// bindGuest decodes a guest body. A missing or nil id is rejected.
func (h *Handler) bindGuest(c *gin.Context) (v1.Guest, bool) {
	var body v1.Guest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.RespondError(c, srvErrors.NewSerializationError("invalid guest body", err))
		return v1.Guest{}, false
	}
	if body.Id == uuid.Nil {
		h.RespondError(c, srvErrors.NewSerializationError("guest id is missing", nil))
		return v1.Guest{}, false
	}
	return body, true
}

// bindGuestFor decodes the body and rejects it when its id differs from the path id.
func (h *Handler) bindGuestFor(c *gin.Context, id uuid.UUID) (v1.Guest, bool) {
	body, ok := h.bindGuest(c)
	if !ok {
		return v1.Guest{}, false
	}
	if body.Id != id {
		h.RespondError(c, srvErrors.NewSerializationError("guest id "+body.Id.String()+" does not match path id "+id.String(), nil))
		return v1.Guest{}, false
	}
	return body, true
}
