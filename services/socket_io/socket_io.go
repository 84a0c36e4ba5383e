package socket_io

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"

	"skirmish/services/sessions"
)

/*
 * 'SocketServer' owns the socket.io server and its room registry. Every
 * connection is bound to exactly one authenticated session id at connect
 * time and placed in a room named after it; the session is reloaded before
 * any inbound packet is processed, and a failed reload cuts the connection.
 */
type SocketServer struct {
	Server *socket.Server
}

func NewSocketServer() *SocketServer {
	return &SocketServer{}
}

func (sio *SocketServer) Start(router *gin.Engine, sessionStore *sessions.Store) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and
	// 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	sio.Server = socket.NewServer(nil, nil)
	sio.Server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)
		bindToSession(client, sessionStore)
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Server.ServeHandler(c)))

	signalC := make(chan os.Signal, 1)
	signal.Notify(signalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range signalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				sio.Server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	log.Println("Socket server started")
}

// bindToSession associates the connection with the authenticated session it
// presented at handshake. The session reload on every inbound packet is the
// sole authorization check for realtime input; a connection whose session
// was invalidated or expired is cut immediately.
func bindToSession(client *socket.Socket, sessionStore *sessions.Store) {
	sessionID, ok := sessionIDFromHandshake(client)
	if !ok {
		log.Printf("[SOCKET] connection %s rejected: no session id in handshake", client.Id())
		client.Disconnect(true)
		return
	}

	if _, err := sessionStore.Load(context.Background(), sessionID); err != nil {
		log.Printf("[SOCKET] connection %s rejected: %v", client.Id(), err)
		client.Disconnect(true)
		return
	}

	client.Join(socket.Room(sessionID))
	log.Printf("[SOCKET] client connected with session id %s", sessionID)

	client.Use(func(_ []any, next func(error)) {
		if _, err := sessionStore.Load(context.Background(), sessionID); err != nil {
			log.Printf("[SOCKET] session %s no longer valid, disconnecting: %v", sessionID, err)
			client.Disconnect(true)
			return
		}
		next(nil)
	})

	client.On("disconnecting", func(...interface{}) {
		log.Printf("[SOCKET] client disconnected with session id %s", sessionID)
	})
}

// sessionIDFromHandshake pulls the opaque session id the browser client
// passes in the socket.io auth payload.
func sessionIDFromHandshake(client *socket.Socket) (string, bool) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		return "", false
	}

	sessionID, ok := authData["session_id"].(string)
	if !ok || sessionID == "" {
		return "", false
	}
	return sessionID, true
}
