package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/solarsense-dev/solarsense/internal/types"
	"github.com/solarsense-dev/solarsense/internal/utils"
)

// watchers maps a project id to the dashboard connections subscribed to it.
var (
	watchers   = make(map[uint]map[*watcher]struct{})
	watchersMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 8
)

type refreshEvent struct {
	Type      string `json:"type"`
	ProjectID uint   `json:"project_id"`
}

// watcher is one subscribed connection. All writes, events and pings alike,
// go through writeLoop; gorilla conns allow a single concurrent writer.
type watcher struct {
	conn *websocket.Conn
	send chan refreshEvent
}

// writeLoop is the connection's only writer. It drains the send channel and
// keeps the ping cadence; on any failure, or once send closes, it closes the
// conn, which unblocks the read loop.
func (w *watcher) writeLoop() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		w.conn.Close()
	}()

	for {
		select {
		case event, ok := <-w.send:
			if !ok {
				return
			}

			if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if err := w.conn.WriteJSON(event); err != nil {
				return
			}
		case <-ticker.C:
			if err := w.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}

			if err := w.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// BroadcastProjectRefresh tells every dashboard watching the project that its
// daily data or report state changed.
func BroadcastProjectRefresh(projectID uint) {
	event := refreshEvent{Type: "refresh", ProjectID: projectID}

	watchersMu.RLock()
	defer watchersMu.RUnlock()

	for w := range watchers[projectID] {
		select {
		case w.send <- event:
		default:
			// Slow consumer; refresh hints are safe to drop.
		}
	}
}

func watch(projectID uint, w *watcher) {
	watchersMu.Lock()
	defer watchersMu.Unlock()

	if watchers[projectID] == nil {
		watchers[projectID] = make(map[*watcher]struct{})
	}
	watchers[projectID][w] = struct{}{}
}

func unwatch(projectID uint, w *watcher) {
	watchersMu.Lock()
	defer watchersMu.Unlock()

	delete(watchers[projectID], w)

	if len(watchers[projectID]) == 0 {
		delete(watchers, projectID)
	}
}

// WebSocket subscribes the caller to refresh events for one of their
// projects. Ownership is checked before the upgrade so foreign projects get
// a plain HTTP error instead of a dropped socket.
func WebSocket(c *gin.Context) {
	userID, err := utils.GetCurrentUserID(c)

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.GetWatchedProjectID(c)

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := fetchOwnedProject(projectID, userID); err != nil {
		respondError(c, err)
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)

	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	w := &watcher{conn: conn, send: make(chan refreshEvent, sendBuffer)}

	watch(projectID, w)
	go w.writeLoop()

	// Unwatch before closing send: broadcasts only reach watchers still in
	// the map, so nothing can send on the closed channel.
	defer func() {
		unwatch(projectID, w)
		close(w.send)
	}()

	w.send <- refreshEvent{Type: "connected", ProjectID: projectID}

	conn.SetReadLimit(maxMessageSize)
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for project %d: %v", projectID, err)
			}
			break
		}
	}
}
