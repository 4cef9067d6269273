package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/drossler/wicket"
)

// response is the fixed envelope every auth endpoint answers with. No
// internal detail crosses this boundary; errors collapse to a message.
type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Token   string          `json:"token,omitempty"`
	User    *wicket.Profile `json:"user,omitempty"`
}

// handleSignUp returns a handler for the signup endpoint
func handleSignUp(w *wicket.Wicket) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input wicket.SignUpInput
		if err := c.Bind().Body(&input); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}

		result, err := w.SignUp(c.Context(), input)
		if err != nil {
			return handleAuthError(c, w, err)
		}

		return c.Status(http.StatusCreated).JSON(response{
			Success: true,
			Message: "Account created successfully",
			Token:   result.Token,
			User:    result.User,
		})
	}
}

// handleLogIn returns a handler for the login endpoint
func handleLogIn(w *wicket.Wicket) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input wicket.LogInInput
		if err := c.Bind().Body(&input); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}

		result, err := w.LogIn(c.Context(), input)
		if err != nil {
			return handleAuthError(c, w, err)
		}

		return c.Status(http.StatusOK).JSON(response{
			Success: true,
			Message: "Login successful",
			Token:   result.Token,
			User:    result.User,
		})
	}
}

// handleProfile returns a handler for the profile endpoint. RequireAuth
// runs first and stores the verified account id in the request locals.
func handleProfile(w *wicket.Wicket) fiber.Handler {
	return func(c fiber.Ctx) error {
		accountID, _ := c.Locals("accountID").(string)

		profile, err := w.Profile(c.Context(), accountID)
		if err != nil {
			return handleAuthError(c, w, err)
		}

		return c.Status(http.StatusOK).JSON(response{
			Success: true,
			User:    profile,
		})
	}
}

// handleForgotPassword returns a handler for the forgot-password endpoint
func handleForgotPassword(w *wicket.Wicket) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input struct {
			Email string `json:"email"`
		}
		if err := c.Bind().Body(&input); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}

		if err := w.ForgotPassword(c.Context(), input.Email); err != nil {
			return handleAuthError(c, w, err)
		}

		return c.Status(http.StatusOK).JSON(response{
			Success: true,
			Message: "Password reset link sent to your email",
		})
	}
}

// handleResetPassword returns a handler for the reset-password endpoint
func handleResetPassword(w *wicket.Wicket) fiber.Handler {
	return func(c fiber.Ctx) error {
		var input struct {
			Token       string `json:"token"`
			NewPassword string `json:"newPassword"`
		}
		if err := c.Bind().Body(&input); err != nil {
			return fail(c, http.StatusBadRequest, "invalid request body")
		}

		if err := w.ResetPassword(c.Context(), input.Token, input.NewPassword); err != nil {
			return handleAuthError(c, w, err)
		}

		return c.Status(http.StatusOK).JSON(response{
			Success: true,
			Message: "Password has been reset successfully",
		})
	}
}

// handleVerifyResetToken returns a handler for the verify-token endpoint,
// used by the reset form to pre-flight a token before rendering.
func handleVerifyResetToken(w *wicket.Wicket) fiber.Handler {
	return func(c fiber.Ctx) error {
		if err := w.VerifyResetToken(c.Context(), c.Params("token")); err != nil {
			return handleAuthError(c, w, err)
		}

		return c.Status(http.StatusOK).JSON(response{
			Success: true,
			Message: "Token is valid",
		})
	}
}

func fail(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(response{
		Success: false,
		Message: message,
	})
}

// handleAuthError maps domain errors to HTTP responses
func handleAuthError(c fiber.Ctx, w *wicket.Wicket, err error) error {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError && !errors.Is(err, wicket.ErrEmailDelivery) {
		// Delivery failures were already logged with context by the core.
		w.Logger.Error("auth request failed", "path", c.Path(), "error", err)
	}
	return fail(c, status, clientMessage(err, status))
}

// mapErrorToStatus maps domain error types to HTTP status codes
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, wicket.ErrInvalidCredentials),
		errors.Is(err, wicket.ErrMissingAuthHeader),
		errors.Is(err, wicket.ErrInvalidAuthHeader),
		errors.Is(err, wicket.ErrInvalidToken),
		errors.Is(err, wicket.ErrSessionExpired):
		return http.StatusUnauthorized

	case errors.Is(err, wicket.ErrAccountNotFound):
		return http.StatusNotFound

	case errors.Is(err, wicket.ErrAccountExists),
		errors.Is(err, wicket.ErrEmailRequired),
		errors.Is(err, wicket.ErrPasswordRequired),
		errors.Is(err, wicket.ErrNameRequired),
		errors.Is(err, wicket.ErrResetTokenRequired),
		errors.Is(err, wicket.ErrPasswordTooShort),
		errors.Is(err, wicket.ErrInvalidResetToken),
		errors.Is(err, wicket.ErrResetTokenExpired):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// clientMessage picks the message that crosses the boundary. The two
// reset-token failures read identically so the endpoint does not reveal
// whether a guessed token ever existed.
func clientMessage(err error, status int) string {
	switch {
	case errors.Is(err, wicket.ErrInvalidResetToken),
		errors.Is(err, wicket.ErrResetTokenExpired):
		return "Invalid or expired reset token"
	case errors.Is(err, wicket.ErrEmailDelivery):
		return "Error sending email. Please try again later."
	case status == http.StatusInternalServerError:
		return "An unexpected error occurred. Please try again."
	default:
		return err.Error()
	}
}
