package controllers

import (
	"net/http"

	apperrors "github.com/Greendayy/Ali-Express/errors"
	"github.com/Greendayy/Ali-Express/guard"
	"github.com/Greendayy/Ali-Express/services"

	"github.com/gin-gonic/gin"
)

// NavigationController answers route-guard queries for a frontend doing
// client-side routing: given a destination, may this visitor go there.
type NavigationController struct {
	Policy   guard.Policy
	Sessions services.SessionVerifier
}

// Decide resolves GET /navigate?to=<path> into an allow/redirect decision.
func (nc *NavigationController) Decide(c *gin.Context) {
	to := c.Query("to")
	if to == "" {
		respondError(c, apperrors.Validation("Missing 'to' query parameter", nil))
		return
	}

	authenticated := false
	if token := services.TokenFromRequest(c.Request); token != "" {
		if _, err := nc.Sessions.Verify(c.Request.Context(), token); err == nil {
			authenticated = true
		}
	}

	c.JSON(http.StatusOK, nc.Policy.Decide(to, authenticated))
}
