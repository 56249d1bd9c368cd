package server

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/M0hammad-yasin/portfolio/internal/session"
)

const (
	liveReadLimit   = 64 << 10
	liveIdleTimeout = 10 * time.Minute
	liveWriteWait   = 5 * time.Second
)

// handleLive upgrades to a websocket and runs one session for the page view.
func (s *Server) handleLive(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		log.Printf("Live upgrade failed: %v", err)
		return
	}
	sess := session.New(uuid.NewString(), s.newTracker(), themeFrom(c))
	s.serveLive(conn, sess)
}

// serveLive processes the session's events strictly one at a time: each
// message is read, applied and answered before the next is read.
func (s *Server) serveLive(conn *websocket.Conn, sess *session.Session) {
	defer conn.Close()
	conn.SetReadLimit(liveReadLimit)

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-s.done:
			msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(liveWriteWait))
			conn.Close()
		case <-stop:
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(liveIdleTimeout)); err != nil {
			return
		}
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Live session %s closed: %v", sess.ID, err)
			}
			return
		}

		var ev session.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			log.Printf("Live session %s: malformed event: %v", sess.ID, err)
			continue
		}

		update, err := sess.Handle(ev)
		if err != nil && !errors.Is(err, session.ErrNotMounted) {
			log.Printf("Live session %s: %v", sess.ID, err)
		}

		if err := conn.SetWriteDeadline(time.Now().Add(liveWriteWait)); err != nil {
			return
		}
		if err := conn.WriteJSON(update); err != nil {
			return
		}
	}
}
