// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file provides BasicAuth, the access gate in front of the admin
// listing. It performs an exact match of HTTP Basic credentials against the
// configured operator identity and issues the standard challenge on mismatch.
// There is no lockout or rate limiting on failed attempts.
package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// basicAuthDeniedBody mirrors the response body browsers historically got
// from this site on a failed login.
const basicAuthDeniedBody = "Could not verify your access level for that URL.\n" +
	"You have to login with proper credentials"

// BasicAuth returns a Gin middleware enforcing HTTP Basic authentication
// against a single configured username/password pair.
//
// Behavior:
//   - Missing or mismatched credentials abort the request with 401 and a
//     WWW-Authenticate challenge carrying the given realm.
//   - Comparison is constant-time over SHA-256 digests, so neither length
//     nor prefix of the configured secret leaks through timing.
//   - An empty configured password rejects every request; the gate never
//     falls open when the operator identity is unconfigured.
func BasicAuth(username, password, realm string) gin.HandlerFunc {
	wantUser := sha256.Sum256([]byte(username))
	wantPass := sha256.Sum256([]byte(password))
	configured := password != ""

	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if ok && configured {
			gotUser := sha256.Sum256([]byte(user))
			gotPass := sha256.Sum256([]byte(pass))
			userOK := subtle.ConstantTimeCompare(gotUser[:], wantUser[:]) == 1
			passOK := subtle.ConstantTimeCompare(gotPass[:], wantPass[:]) == 1
			if userOK && passOK {
				c.Next()
				return
			}
		}

		c.Header("WWW-Authenticate", `Basic realm="`+realm+`"`)
		c.String(http.StatusUnauthorized, basicAuthDeniedBody)
		c.Abort()
	}
}
