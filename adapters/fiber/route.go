package fiber

import (
	"github.com/gofiber/fiber/v3"

	"github.com/drossler/wicket"
)

type Adapter struct {
	app *fiber.App
}

var _ wicket.HTTPAdapter = (*Adapter)(nil)

func New(app *fiber.App) *Adapter {
	return &Adapter{app: app}
}

func (a *Adapter) RegisterRoutes(w *wicket.Wicket) error {
	api := a.app.Group(w.BasePath)

	// Public routes
	api.Post("/signup", handleSignUp(w))
	api.Post("/login", handleLogIn(w))
	api.Post("/forgot-password", handleForgotPassword(w))
	api.Post("/reset-password", handleResetPassword(w))
	api.Get("/verify-token/:token", handleVerifyResetToken(w))

	// Protected routes
	api.Get("/profile", RequireAuth(w), handleProfile(w))

	return nil
}
