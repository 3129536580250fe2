// Package websocket exposes the connection hub to browsers over fiber websockets.
package websocket

import (
	"chat-relay/domain"
	"chat-relay/observability"
	"chat-relay/runtime"
	"context"
	"encoding/json"
	"log/slog"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	ws "github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const welcomeMessage = "Welcome agent"

type Config struct {
	// InboundRate is the number of messages per second a connection may send.
	InboundRate  float64
	InboundBurst int
	// Gatherer backs /metrics; nil disables the route.
	Gatherer prometheus.Gatherer
}

type Server struct {
	log     *slog.Logger
	app     *fiber.App
	hub     *runtime.Hub
	metrics *observability.Metrics
	limit   rate.Limit
	burst   int
}

func NewServer(log *slog.Logger, hub *runtime.Hub, metrics *observability.Metrics, config Config) *Server {
	limit, burst := rate.Inf, config.InboundBurst
	if config.InboundRate > 0 {
		limit = rate.Limit(config.InboundRate)
	}
	if burst <= 0 {
		burst = 1
	}
	s := &Server{
		log:     log,
		app:     fiber.New(fiber.Config{DisableStartupMessage: true}),
		hub:     hub,
		metrics: metrics,
		limit:   limit,
		burst:   burst,
	}
	s.app.Get("/", s.welcome)
	if config.Gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(config.Gatherer, promhttp.HandlerOpts{})))
	}
	s.app.Use("/ws", upgradeOnly)
	s.app.Get("/ws", ws.New(s.handle))
	return s
}

func (s *Server) welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"msg": welcomeMessage})
}

func upgradeOnly(c *fiber.Ctx) error {
	if ws.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// handle serves one websocket for its whole life.
// Outbound frames go through the hub; the read loop only parses inbound frames.
func (s *Server) handle(conn *ws.Conn) {
	client := s.hub.Connect(func(frame []byte) error {
		if err := conn.WriteMessage(ws.TextMessage, frame); err != nil {
			// unblocks the read loop below
			_ = conn.Close()
			return err
		}
		return nil
	})
	defer func() {
		_ = conn.Close()
		s.hub.Disconnect(client)
	}()

	limiter := rate.NewLimiter(s.limit, s.burst)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.log.Debug("Websocket closed", "client", client.ID, "error", err)
			return
		}
		if !limiter.Allow() {
			s.metrics.Outcome(domain.OutcomeRejected, "rate_limited")
			s.log.Warn("Inbound rate exceeded, message dropped", "client", client.ID)
			continue
		}
		var frame domain.Frame
		if err = json.Unmarshal(data, &frame); err != nil || frame.Event == "" {
			s.log.Warn("Malformed websocket frame", "client", client.ID, "error", err)
			continue
		}
		s.hub.Receive(client.ID, frame.Event, frame.Data)
	}
}

func (s *Server) Listen(address string) error {
	s.log.Info("Starting websocket server", "address", address)
	return s.app.Listen(address)
}

func (s *Server) Listener(listener net.Listener) error {
	s.log.Info("Starting websocket server", "address", listener.Addr().String())
	return s.app.Listener(listener)
}

// Shutdown stops accepting connections and waits for pending HTTP requests.
// Upgraded websockets are left to the hub.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
