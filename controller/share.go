package controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fieldtrack/utils"
	"fieldtrack/views"
)

// ErrShareCancelled marks a share the user backed out of. Explicitly not a
// failure: it produces no notification and no fallback download.
var ErrShareCancelled = errors.New("share cancelled by user")

// Sharer hands a built artifact to the host platform's native share action.
// Hosts without one leave the dashboard's sharer nil and every export goes
// down the direct download path.
type Sharer interface {
	Share(ctx context.Context, art *views.Artifact) error
}

// deliver routes a finished artifact to the share hook when configured,
// falling back to a direct attachment download on any share failure other
// than user cancellation.
func (d *Dashboard) deliver(c *gin.Context, art *views.Artifact) {
	if d.sharer != nil {
		err := d.sharer.Share(c.Request.Context(), art)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"shared": true, "filename": art.Filename})
			return
		case errors.Is(err, ErrShareCancelled):
			c.JSON(http.StatusOK, gin.H{"shared": false})
			return
		default:
			utils.L().Warn("share failed, falling back to download: %v", err)
		}
	}

	c.Header("Content-Disposition", `attachment; filename="`+art.Filename+`"`)
	c.Data(http.StatusOK, art.ContentType, art.Data)
}
