package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/dreamtides/dreamtides-server-go/internal/battle/core"
	"github.com/dreamtides/dreamtides-server-go/internal/config"
	"github.com/dreamtides/dreamtides-server-go/internal/session"
)

// Server exposes one battle session over websockets. Each client connects
// as a player slot and receives a fresh view after every state change.
type Server struct {
	cfg     config.ServerConfig
	session *session.Session
	logger  *zap.Logger

	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]core.PlayerName
}

// New builds a server around a session.
func New(cfg config.ServerConfig, sess *session.Session, logger *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		session: sess,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]core.PlayerName),
	}
}

// ListenAndServe blocks serving websocket connections on /ws until the
// context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	httpServer := &http.Server{
		Addr:         s.cfg.Address,
		Handler:      mux,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	go func() {
		<-ctx.Done()
		httpServer.Close()
	}()
	s.logger.Info("websocket server listening", zap.String("address", s.cfg.Address))
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	player := core.PlayerOne
	if r.URL.Query().Get("player") == "2" {
		player = core.PlayerTwo
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.conns[conn] = player
	s.mu.Unlock()
	s.logger.Info("client connected", zap.String("player", player.String()))

	s.sendView(conn, player)
	s.readLoop(r.Context(), conn, player)

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	conn.Close()
	s.logger.Info("client disconnected", zap.String("player", player.String()))
}

func (s *Server) readLoop(ctx context.Context, conn *websocket.Conn, player core.PlayerName) {
	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("read error", zap.Error(err))
			}
			return
		}
		switch msg.Type {
		case "action":
			if msg.Action == nil {
				s.sendError(conn, "action message without action")
				continue
			}
			action, err := msg.Action.ToAction()
			if err != nil {
				s.sendError(conn, err.Error())
				continue
			}
			if err := s.session.HandleAction(ctx, player, action); err != nil {
				s.sendError(conn, err.Error())
				continue
			}
			s.broadcastViews()
		case "view":
			s.sendView(conn, player)
		default:
			s.sendError(conn, "unknown message type "+msg.Type)
		}
	}
}

// broadcastViews pushes a fresh view to every connected client.
func (s *Server) broadcastViews() {
	s.mu.Lock()
	conns := make(map[*websocket.Conn]core.PlayerName, len(s.conns))
	for conn, player := range s.conns {
		conns[conn] = player
	}
	s.mu.Unlock()
	for conn, player := range conns {
		s.sendView(conn, player)
	}
}

func (s *Server) sendView(conn *websocket.Conn, player core.PlayerName) {
	view := s.session.View(player)
	var legal []ActionMessage
	for _, action := range s.session.LegalActions(player) {
		legal = append(legal, FromAction(action))
	}
	msg := ServerMessage{Type: "view", View: &view, LegalActions: legal}
	if err := conn.WriteJSON(msg); err != nil {
		s.logger.Warn("write failed", zap.Error(err))
	}
}

func (s *Server) sendError(conn *websocket.Conn, text string) {
	if err := conn.WriteJSON(ServerMessage{Type: "error", Error: text}); err != nil {
		s.logger.Warn("write failed", zap.Error(err))
	}
}
