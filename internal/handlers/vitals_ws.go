package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KeertanaGupta/Keertana-Mediprior/internal/services"
)

var vitalsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS for WebSocket is handled at the HTTP layer already.
		return true
	},
}

const vitalsStreamInterval = 2 * time.Second

// VitalsWebSocket streams simulated vital-sign readings while a device is
// "connected". Authentication uses the session token (Authorization: Bearer
// <token>, or ?token= for browser WebSocket clients).
func VitalsWebSocket(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing session token", http.StatusUnauthorized)
			return
		}
	}

	if _, ok, err := services.ValidateSession(token); err != nil || !ok {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return
	}

	conn, err := vitalsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// Reader goroutine: discard client frames, notice when the peer closes.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(vitalsStreamInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(services.SimulatedVitals()); err != nil {
				return
			}
		}
	}
}
