package handlers

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/cordial-dev/cordial/api/v1"
	srvErrors "github.com/cordial-dev/cordial/pkg/errors"
	"github.com/cordial-dev/cordial/pkg/improv"
)

// GetName returns a plain made-up name
// (GET /improv/name)
func (h *Handler) GetName(c *gin.Context) {
	h.name(c, false)
}

// GetNumberedName returns a made-up name with a numeric suffix
// (GET /improv/name/num)
func (h *Handler) GetNumberedName(c *gin.Context) {
	h.name(c, true)
}

func (h *Handler) name(c *gin.Context, numbered bool) {
	name, err := improv.New(numbered).Name()
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondText(c, name)
}

// GetPass returns a password under the default policy
// (GET /improv/pass)
func (h *Handler) GetPass(c *gin.Context) {
	pass, err := improv.New(true).Pass()
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondText(c, pass)
}

// CreatePass returns a password under the policy in the body
// (POST /improv/pass)
func (h *Handler) CreatePass(c *gin.Context) {
	body := v1.DefaultPasswordPolicy()
	if err := c.ShouldBindJSON(&body); err != nil {
		h.RespondError(c, srvErrors.NewSerializationError("invalid password policy body", err))
		return
	}

	pass, err := improv.New(true, improv.WithPolicy(body.ToPolicy())).Pass()
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondText(c, pass)
}

// GetImprovGuest returns a made-up guest without storing it
// (GET /improv/guest)
func (h *Handler) GetImprovGuest(c *gin.Context) {
	guest, err := improv.New(true).Guest()
	if err != nil {
		h.RespondError(c, err)
		return
	}
	h.respondJSON(c, v1.NewGuestFromModel(guest))
}
