package handler

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/stockroom/auth"
)

// LoginPayload carries the credentials the token endpoint accepts, either
// as a form post or a JSON body.
type LoginPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

// AuthController exposes the token endpoint.
type AuthController struct {
	auther auth.Authenticator
	logger auth.Logger
}

func NewAuthController(auther auth.Authenticator, logger auth.Logger) *AuthController {
	return &AuthController{
		auther: auther,
		logger: logger,
	}
}

// RegisterRoutes mounts the auth endpoints on the given router.
func (ctrl *AuthController) RegisterRoutes(router fiber.Router) {
	router.Post("/login", ctrl.Login)
}

// Login exchanges credentials for a signed bearer token. Every failure mode
// collapses into one generic rejection; the reason survives only in logs.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	payload := LoginPayload{}
	if err := c.BodyParser(&payload); err != nil {
		ctrl.logger.Error("login: failed to parse payload: %v", err)
		return respondError(c, auth.ErrInvalidCredentials)
	}

	if err := payload.Validate(); err != nil {
		return respondValidation(c, err)
	}

	token, err := ctrl.auther.Login(c.UserContext(), payload.Username, payload.Password)
	if err != nil {
		ctrl.logger.Error("login rejected for %q: %v", payload.Username, err)
		return respondError(c, auth.ErrInvalidCredentials)
	}

	return c.JSON(fiber.Map{
		"access_token": token,
		"token_type":   "bearer",
	})
}
