package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	h "eventregistry/internal/delivery/http/helpers"
	"eventregistry/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CredentialsRequest is the request body for POST /usuarios and GET /usuarios.
// The "pw" field name is part of the wire contract; it is never echoed back.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"pw"`
}

// Validate implements Validator.
func (c CredentialsRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if c.Password == "" {
		errs = append(errs, "pw is required")
	}
	return errs
}

type UserController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewUserController(logger *slog.Logger, svc domain.AuthService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account keyed by email and return a bearer token for it. The password is stored as a salted hash.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Credentials"
// @Success 200 {object} helpers.TokenResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 409 {object} helpers.MessageResponse "email already registered"
// @Failure 500 {object} helpers.MessageResponse
// @Router /usuarios [post]
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	token, err := c.Service.Register(r.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.WriteMessage(w, http.StatusConflict, fmt.Sprintf("El correo %s ya está registrado", email))
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteMessage(w, http.StatusInternalServerError, "Ha ocurrido un error")
		return
	}
	h.WriteJSON(w, http.StatusOK, h.TokenResponse{
		Message:     fmt.Sprintf("El correo %s ha sido registrado", email),
		AccessToken: token,
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password supplied in the request body and return a bearer token.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Credentials"
// @Success 200 {object} helpers.TokenResponse
// @Failure 400 {object} helpers.MessageResponse
// @Failure 401 {object} helpers.MessageResponse "wrong password"
// @Failure 404 {object} helpers.MessageResponse "unknown email"
// @Failure 500 {object} helpers.MessageResponse
// @Router /usuarios [get]
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	token, err := c.Service.Login(r.Context(), email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.WriteMessage(w, http.StatusNotFound, "Usuario no encontrado")
			return
		}
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteMessage(w, http.StatusUnauthorized, "Contraseña incorrecta")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteMessage(w, http.StatusInternalServerError, "Ha ocurrido un error")
		return
	}
	h.WriteJSON(w, http.StatusOK, h.TokenResponse{
		Message:     "Sesion iniciada",
		AccessToken: token,
	})
}
