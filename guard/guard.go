// Package guard decides whether a navigation may proceed. The policy is one
// configurable set of protected paths; there is deliberately no pattern
// matching or role logic here.
package guard

import (
	"net/http"

	"github.com/Greendayy/Ali-Express/services"

	"github.com/gin-gonic/gin"
)

// Policy holds the protected path set and the auth entry point visitors get
// redirected to.
type Policy struct {
	protected  map[string]struct{}
	redirectTo string
}

func NewPolicy(protectedPaths []string, redirectTo string) Policy {
	p := Policy{
		protected:  make(map[string]struct{}, len(protectedPaths)),
		redirectTo: redirectTo,
	}
	for _, path := range protectedPaths {
		p.protected[path] = struct{}{}
	}
	return p
}

// Decision is the guard's answer for one navigation attempt.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// Protects reports whether path requires an authenticated session. Matching
// is exact; "/checkout/" and "/checkout" are different paths.
func (p Policy) Protects(path string) bool {
	_, ok := p.protected[path]
	return ok
}

// Decide resolves one navigation: unauthenticated visitors headed to a
// protected path get redirected to the auth entry point, everything else
// proceeds unchanged.
func (p Policy) Decide(path string, authenticated bool) Decision {
	if !authenticated && p.Protects(path) {
		return Decision{Allow: false, RedirectTo: p.redirectTo}
	}
	return Decision{Allow: true}
}

// Middleware applies the policy to every in-flight request. It only acts on
// protected paths, so it is safe to install on the whole engine.
func Middleware(policy Policy, verifier services.SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.Protects(c.Request.URL.Path) {
			c.Next()
			return
		}

		authenticated := false
		if token := services.TokenFromRequest(c.Request); token != "" {
			if _, err := verifier.Verify(c.Request.Context(), token); err == nil {
				authenticated = true
			}
		}

		decision := policy.Decide(c.Request.URL.Path, authenticated)
		if !decision.Allow {
			c.Redirect(http.StatusFound, decision.RedirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
