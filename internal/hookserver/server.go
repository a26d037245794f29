// Package hookserver runs the HTTP endpoint Trello delivers webhook
// callbacks to. Trello verifies a callback URL with a HEAD request before
// accepting the registration, so every method is acknowledged with 200;
// only POST bodies carry actions.
package hookserver

import (
	"encoding/json"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/go-trello/trello/internal/hookstore"
)

// Payload is the action envelope Trello posts to a callback URL.
type Payload struct {
	Action struct {
		ID   string `json:"id"`
		Type string `json:"type"`
		Date string `json:"date"`
		Data struct {
			Card struct {
				ID        string `json:"id"`
				Name      string `json:"name"`
				Due       string `json:"due"`
				ShortLink string `json:"shortLink"`
				Closed    bool   `json:"closed"`
			} `json:"card"`
			Board struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"board"`
		} `json:"data"`
	} `json:"action"`
	Model struct {
		ID string `json:"id"`
	} `json:"model"`
}

// Server receives webhook deliveries and journals them.
type Server struct {
	store  *hookstore.Store
	log    *zap.Logger
	engine *gin.Engine
}

// New builds a Server journaling into store.
func New(store *hookstore.Store, logger *zap.Logger) *Server {
	s := &Server{store: store, log: logger}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger, true))

	r.HEAD("/trello-webhook", s.handle)
	r.GET("/trello-webhook", s.handle)
	r.POST("/trello-webhook", s.handle)

	s.engine = r
	return s
}

// Handler exposes the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handle(c *gin.Context) {
	// Trello sends HEAD and GET to verify the callback URL is alive.
	if c.Request.Method != http.MethodPost {
		c.Status(http.StatusOK)
		return
	}

	raw, err := c.GetRawData()
	if err != nil || len(raw) == 0 {
		// Empty POSTs show up during webhook verification as well.
		c.Status(http.StatusOK)
		return
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.log.Warn("could not decode webhook payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	delivery := &hookstore.Delivery{
		ActionID:   payload.Action.ID,
		ActionType: payload.Action.Type,
		ModelID:    payload.Model.ID,
		CardID:     payload.Action.Data.Card.ID,
		CardName:   payload.Action.Data.Card.Name,
		BoardID:    payload.Action.Data.Board.ID,
		BoardName:  payload.Action.Data.Board.Name,
		Payload:    string(raw),
	}
	if err := s.store.Record(delivery); err != nil {
		s.log.Error("failed to journal webhook delivery", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record delivery"})
		return
	}

	s.log.Info("webhook delivery recorded",
		zap.String("action", payload.Action.Type),
		zap.String("card", payload.Action.Data.Card.ID))
	c.JSON(http.StatusOK, gin.H{"message": "recorded"})
}
