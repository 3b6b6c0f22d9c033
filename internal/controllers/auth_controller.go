package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/models"
	"snaplink-be/internal/password"
	"snaplink-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
	logger      *slog.Logger
}

func NewAuthController(authService service.AuthService, logger *slog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	response, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrConflict):
			errorDetail(c, http.StatusBadRequest, "Username already taken")
		case errors.Is(err, password.ErrTooLong):
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: []models.FieldError{
				{Field: "password", Message: err.Error()},
			}})
		case errors.Is(err, apperrors.ErrValidation):
			errorDetail(c, http.StatusUnprocessableEntity, err.Error())
		default:
			internalError(c, ac.logger, err)
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Login handles POST /token with an OAuth2 password form. Only the request
// body is read; credentials in the query string are ignored.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindWith(&req, binding.FormPost); err != nil {
		bindError(c, err)
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.Header("WWW-Authenticate", "Bearer")
			errorDetail(c, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		internalError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
