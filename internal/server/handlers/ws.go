package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mmsports/backoffice/internal/websocket"
)

// Subscribe upgrades the connection and replays the current snapshots so a
// fresh client does not wait for the next database change.
func (a *API) Subscribe(c *gin.Context) {
	if err := websocket.Serve(a.hub, c.Writer, c.Request); err != nil {
		return
	}
	a.state.RebroadcastAll()
}
