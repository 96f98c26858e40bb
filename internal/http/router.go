package http

import nethttp "net/http"

// WSHandler serves WebSocket upgrade requests for the push channel.
type WSHandler interface {
	ServeWS(w nethttp.ResponseWriter, r *nethttp.Request)
}

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *Handler, ws WSHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/api/players", handler.Players)
	mux.HandleFunc("/api/draft-picks", handler.Picks)
	mux.HandleFunc("/api/data", handler.Data)
	if ws != nil {
		mux.HandleFunc("/ws", ws.ServeWS)
	}
	return mux
}
