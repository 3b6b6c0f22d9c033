package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/middleware"
	"snaplink-be/internal/models"
	"snaplink-be/internal/service"
)

const notFoundDetail = "URL not found"

type ShortenerController struct {
	urlService service.URLService
	logger     *slog.Logger
}

func NewShortenerController(urlService service.URLService, logger *slog.Logger) *ShortenerController {
	return &ShortenerController{
		urlService: urlService,
		logger:     logger,
	}
}

// CreateShortURL handles POST /shorten
func (sc *ShortenerController) CreateShortURL(c *gin.Context) {
	var req models.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		errorDetail(c, http.StatusUnauthorized, middleware.CredentialsErrorDetail)
		return
	}

	response, err := sc.urlService.Shorten(c.Request.Context(), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			errorDetail(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, apperrors.ErrUnauthorized):
			c.Header("WWW-Authenticate", "Bearer")
			errorDetail(c, http.StatusUnauthorized, middleware.CredentialsErrorDetail)
		default:
			internalError(c, sc.logger, err)
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// RedirectToURL handles GET /:shortKey - counts the click and redirects
func (sc *ShortenerController) RedirectToURL(c *gin.Context) {
	shortKey := c.Param("shortKey")

	targetURL, err := sc.urlService.Resolve(c.Request.Context(), shortKey)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			errorDetail(c, http.StatusNotFound, notFoundDetail)
			return
		}
		internalError(c, sc.logger, err)
		return
	}

	// Location carries the stored target verbatim; http.Redirect would resolve
	// scheme-less targets against the request path.
	c.Header("Location", targetURL)
	c.Status(http.StatusTemporaryRedirect)
}

// GetUserURLs handles GET /urls - all links of the authenticated user
func (sc *ShortenerController) GetUserURLs(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		errorDetail(c, http.StatusUnauthorized, middleware.CredentialsErrorDetail)
		return
	}

	urls, err := sc.urlService.GetUserLinks(c.Request.Context(), user.ID)
	if err != nil {
		internalError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, urls)
}

// GetURLStats handles GET /urls/:shortKey - one link of the authenticated user
func (sc *ShortenerController) GetURLStats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		errorDetail(c, http.StatusUnauthorized, middleware.CredentialsErrorDetail)
		return
	}

	link, err := sc.urlService.GetUserLink(c.Request.Context(), c.Param("shortKey"), user.ID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			errorDetail(c, http.StatusNotFound, notFoundDetail)
			return
		}
		internalError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, link)
}
