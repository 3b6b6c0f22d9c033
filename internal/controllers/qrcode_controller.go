package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"snaplink-be/internal/apperrors"
	"snaplink-be/internal/service"
)

const qrCodeSize = 256

type QRCodeController struct {
	urlService service.URLService
	baseURL    string
	logger     *slog.Logger
}

func NewQRCodeController(urlService service.URLService, baseURL string, logger *slog.Logger) *QRCodeController {
	return &QRCodeController{
		urlService: urlService,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// GenerateQRCode handles GET /qrcode/:shortKey - PNG encoding the short URL
func (qc *QRCodeController) GenerateQRCode(c *gin.Context) {
	link, err := qc.urlService.Lookup(c.Request.Context(), c.Param("shortKey"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			errorDetail(c, http.StatusNotFound, notFoundDetail)
			return
		}
		internalError(c, qc.logger, err)
		return
	}

	shortURL := qc.baseURL + "/" + link.ShortKey

	pngData, err := qrcode.Encode(shortURL, qrcode.Medium, qrCodeSize)
	if err != nil {
		internalError(c, qc.logger, err)
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
