package panchang

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/admin/astro-services/kundli-api/internal/domain"
	panchangUsecase "github.com/admin/astro-services/kundli-api/internal/usecases/panchang"
)

const dateLayout = "2006-01-02"

type Controller struct {
	PanchangService *panchangUsecase.Service
	Log             *slog.Logger
}

func New(panchangService *panchangUsecase.Service, log *slog.Logger) *Controller {
	return &Controller{
		PanchangService: panchangService,
		Log:             log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/api/v1/panchang", c.forDate)
}

// forDate возвращает панчанг на дату в указанном месте.
// Параметры: date (2006-01-02, по умолчанию сегодня), lat, lon, tz.
func (c *Controller) forDate(ctx *gin.Context) {
	tz := ctx.DefaultQuery("tz", "UTC")

	loc, err := time.LoadLocation(tz)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown timezone"})
		return
	}

	date := time.Now().In(loc)
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation(dateLayout, raw, loc)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected format " + dateLayout})
			return
		}
		date = parsed
	}

	lat, err := strconv.ParseFloat(ctx.Query("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid lat"})
		return
	}

	lon, err := strconv.ParseFloat(ctx.Query("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid lon"})
		return
	}

	result, err := c.PanchangService.ForDate(ctx.Request.Context(), date, lat, lon, tz)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidBirthDetails),
			errors.Is(err, domain.ErrUnsupportedConfiguration),
			errors.Is(err, domain.ErrDateOutOfRange):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.Log.Error("failed to build panchang", "error", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, result)
}
