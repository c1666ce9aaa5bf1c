package healthcheck

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// Controller отвечает за liveness/readiness пробы
type Controller struct {
	db  *sqlx.DB
	log *slog.Logger
}

func New(db *sqlx.DB, log *slog.Logger) *Controller {
	return &Controller{db: db, log: log}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", ctrl.health)
	router.GET("/ready", ctrl.ready)
}

func (ctrl *Controller) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (ctrl *Controller) ready(c *gin.Context) {
	if err := ctrl.db.PingContext(c.Request.Context()); err != nil {
		ctrl.log.Error("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
