package http

import (
	_ "embed"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/itsaddyon/The-Zodiac-Chat/internal/app"
	"github.com/itsaddyon/The-Zodiac-Chat/internal/domain"
)

//go:embed web/index.html
var indexPage []byte

// maxBodyBytes bounds how much of the request body is read.
const maxBodyBytes = 64 << 10

type Handler struct {
	svc    *app.OracleService
	logger *slog.Logger
}

func NewHandler(svc *app.OracleService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/healthz", h.Healthz)
	e.POST("/ask_oracle", h.AskOracle)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Index(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexPage)
}

// AskOracle always answers 200; the style field carries success or failure.
func (h *Handler) AskOracle(c echo.Context) error {
	raw, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		raw = nil
	}
	req := decodeAskBody(raw).toRequest()

	requestID, _ := c.Get(ctxKeyRequestID).(string)
	h.logger.InfoContext(c.Request().Context(), "horoscope requested",
		"request_id", requestID,
		"sign", domain.TitleCase(req.Sign),
		"day", req.Day,
		"name", req.Name,
		"dob", req.DOB,
		"crush", req.Crush,
		"ex", req.Ex,
	)

	resp := h.svc.Consult(c.Request().Context(), req)
	return c.JSON(http.StatusOK, OracleResponse{Text: resp.Text, Style: string(resp.Style)})
}
