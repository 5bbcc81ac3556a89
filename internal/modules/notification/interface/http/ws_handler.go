package handler

import (
	"net/http"

	"JobTracker/pkg/util/myjwt"
	"JobTracker/pkg/ws"
	"JobTracker/pkg/zlog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

type WsHandler struct {
	hub *ws.Hub
	jwt *myjwt.Manager
}

func NewWsHandler(hub *ws.Hub, jwt *myjwt.Manager) *WsHandler {
	return &WsHandler{hub: hub, jwt: jwt}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connect 浏览器原生 WebSocket 不能带自定义 Header，token 走 query 参数
func (h *WsHandler) Connect(c *gin.Context) {
	claims, err := h.jwt.ParseToken(c.Query("token"))
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Warn("ws upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(claims.UserID, conn)
	h.hub.Register(client)
	zlog.Debug("ws connected", zap.String("user_id", claims.UserID))

	// 任一方向断开都从 hub 摘除，Unregister 可重复调用
	unregister := func() { h.hub.Unregister(client) }
	go client.WritePump(unregister)
	go client.ReadPump(unregister)
}
