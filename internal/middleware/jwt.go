package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/keyvanm/inventory-sales-api/internal/utils" // token verification
)

// sessionInvalidMsg is the single message returned for every authentication
// failure: missing header, malformed token, bad signature, expired token or
// an absent subject claim.  Collapsing them keeps the response from acting
// as an oracle for which check failed.
const sessionInvalidMsg = "Session invalid or expired"

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's subject (the username) into the request context
// under "username".  The provided secret must match the one used when
// issuing tokens.  This middleware wraps all mutating routes so handlers
// can read the authenticated user via `c.Get("username")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
    // The outer function returns a middleware function.  Echo executes this
    // once when registering the middleware.
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        // The returned handler is invoked for each incoming HTTP request.
        return func(c echo.Context) error {
            // Read the Authorization header.  A valid header starts with
            // "Bearer " followed by the JWT.  Anything else is rejected
            // with the generic session message.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"detail": sessionInvalidMsg})
            }
            // Remove the "Bearer " prefix to obtain the raw token string.
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Delegate signature, algorithm, expiry and subject checks to
            // the token helper.  All failures come back as one error value,
            // and all map to the same 401 body.
            subject, err := utils.VerifyAccessToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"detail": sessionInvalidMsg})
            }

            // Store the subject in the context for handlers and downstream
            // middleware, then continue the chain.
            c.Set("username", subject)
            return next(c)
        }
    }
}
