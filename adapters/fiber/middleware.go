package fiber

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/drossler/wicket"
)

// RequireAuth validates the bearer session token and stores the account
// id it asserts in the request locals for downstream handlers.
func RequireAuth(w *wicket.Wicket) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return fail(c, http.StatusUnauthorized, wicket.ErrMissingAuthHeader.Error())
		}

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			return fail(c, http.StatusUnauthorized, wicket.ErrInvalidAuthHeader.Error())
		}

		accountID, err := w.Sessions.Verify(token)
		if err != nil {
			return handleAuthError(c, w, err)
		}

		c.Locals("accountID", accountID)

		return c.Next()
	}
}
