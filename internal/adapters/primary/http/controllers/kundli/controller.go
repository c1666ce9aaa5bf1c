package kundli

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	kundliUsecase "github.com/admin/astro-services/kundli-api/internal/usecases/kundli"
)

// birthDateLayout локальное время рождения без смещения, таймзона передаётся отдельно
const birthDateLayout = "2006-01-02T15:04:05"

type Controller struct {
	KundliService *kundliUsecase.Service
	Log           *slog.Logger
}

func New(kundliService *kundliUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		KundliService: kundliService,
		Log:           log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.POST("/kundli", c.generate)
		api.GET("/kundli", c.listRecent)
		api.GET("/kundli/:id", c.getByID)
		api.GET("/kundli/:id/transits", c.transits)
		api.POST("/kundli/:id/report", c.requestReport)
	}
}

// GenerateRequest запрос на расчёт натальной карты
type GenerateRequest struct {
	Name      string  `json:"name" binding:"required"`
	BirthDate string  `json:"birth_date" binding:"required"` // локальное время, формат 2006-01-02T15:04:05
	Latitude  float64 `json:"latitude"`                      // ноль валиден (экватор), проверяется в домене
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone" binding:"required"` // IANA идентификатор
	Gender    string  `json:"gender"`

	Ayanamsa    string `json:"ayanamsa"`
	HouseSystem string `json:"house_system"`
	NodeMode    string `json:"node_mode"`
}

func (r *GenerateRequest) toSettings() domain.CalculationSettings {
	settings := domain.DefaultSettings()
	if r.Ayanamsa != "" {
		settings.Ayanamsa = domain.AyanamsaSystem(r.Ayanamsa)
	}
	if r.HouseSystem != "" {
		settings.HouseSystem = domain.HouseSystem(r.HouseSystem)
	}
	if r.NodeMode != "" {
		settings.NodeMode = domain.NodeMode(r.NodeMode)
	}
	return settings
}

// generate рассчитывает и сохраняет натальную карту
func (c *Controller) generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind generate request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid birth_date, expected format " + birthDateLayout})
		return
	}

	birth := domain.BirthDetails{
		Name:      req.Name,
		BirthDate: birthDate,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Timezone:  req.Timezone,
		Gender:    req.Gender,
	}

	kundli, err := c.KundliService.Generate(ctx.Request.Context(), birth, req.toSettings())
	if err != nil {
		c.respondError(ctx, err, "failed to generate kundli")
		return
	}

	ctx.JSON(http.StatusCreated, kundli)
}

// getByID возвращает сохранённую карту
func (c *Controller) getByID(ctx *gin.Context) {
	id, ok := c.chartID(ctx)
	if !ok {
		return
	}

	kundli, err := c.KundliService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err, "failed to get kundli")
		return
	}

	ctx.JSON(http.StatusOK, kundli)
}

// listRecent возвращает последние рассчитанные карты
func (c *Controller) listRecent(ctx *gin.Context) {
	limit := 20
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	charts, err := c.KundliService.ListRecent(ctx.Request.Context(), limit)
	if err != nil {
		c.respondError(ctx, err, "failed to list charts")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"charts": charts})
}

// transits проецирует текущие (или указанные) позиции на натальную карту
func (c *Controller) transits(ctx *gin.Context) {
	id, ok := c.chartID(ctx)
	if !ok {
		return
	}

	at := time.Now().UTC()
	if raw := ctx.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid at, expected RFC3339"})
			return
		}
		at = parsed
	}

	data, err := c.KundliService.Transits(ctx.Request.Context(), id, at)
	if err != nil {
		c.respondError(ctx, err, "failed to build transits")
		return
	}

	ctx.JSON(http.StatusOK, data)
}

// ReportRequest запрос на интерпретацию карты
type ReportRequest struct {
	Prompt string `json:"prompt"`
}

// requestReport ставит карту в очередь на интерпретацию
func (c *Controller) requestReport(ctx *gin.Context) {
	id, ok := c.chartID(ctx)
	if !ok {
		return
	}

	var req ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind report request", "error", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	requestID, err := c.KundliService.RequestReport(ctx.Request.Context(), id, req.Prompt)
	if err != nil {
		c.respondError(ctx, err, "failed to request report")
		return
	}

	ctx.JSON(http.StatusAccepted, gin.H{"request_id": requestID})
}

func (c *Controller) chartID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid chart id"})
		return uuid.Nil, false
	}
	return id, true
}

func (c *Controller) respondError(ctx *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, domain.ErrChartNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "chart not found"})
	case errors.Is(err, domain.ErrInvalidBirthDetails),
		errors.Is(err, domain.ErrUnsupportedConfiguration),
		errors.Is(err, domain.ErrDateOutOfRange),
		domain.IsBusinessError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.Log.Error(logMessage, "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
