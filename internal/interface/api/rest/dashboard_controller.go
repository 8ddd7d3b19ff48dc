package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storage-dashboard/internal/application/ports"
	"storage-dashboard/internal/interface/api/rest/middleware"
)

type DashboardController struct {
	logger    *zap.Logger
	directory ports.DirectoryService
}

func NewDashboardController(
	r *gin.Engine,
	logger *zap.Logger,
	directory ports.DirectoryService,
	guard ports.Guard,
) *DashboardController {
	dc := &DashboardController{
		logger:    logger,
		directory: directory,
	}

	r.GET(RouteDashboard, middleware.SessionGuard(guard), dc.DashboardHandler)

	return dc
}

// DashboardHandler backs the landing view: who is signed in plus the
// per-category tile counters, all derived from a single list fetch.
func (dc *DashboardController) DashboardHandler(c *gin.Context) {
	s, ok := middleware.SessionFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"redirect": LoginRedirect})
		return
	}

	counts, err := dc.directory.Counts(c.Request.Context(), s)
	if err != nil {
		c.JSON(
			http.StatusBadGateway,
			gin.H{"error": "storage backend unavailable"},
		)
		dc.logger.Error("Counts() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email":    s.Email,
		"username": s.Username,
		"counts":   counts,
	})
}
