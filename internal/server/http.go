package server

import (
	"encoding/json"
	"net/http"
	_ "net/http/pprof" // Profiling

	"github.com/g1tyx/idle-dungeon-runner/internal/engine"
	"github.com/g1tyx/idle-dungeon-runner/internal/network"
	"github.com/g1tyx/idle-dungeon-runner/internal/version"
	"github.com/g1tyx/idle-dungeon-runner/pkg/logger"
)

type Server struct {
	Game *engine.Game
	Hub  *network.Hub
	Port string
}

func New(game *engine.Game, hub *network.Hub, port string) *Server {
	return &Server{
		Game: game,
		Hub:  hub,
		Port: port,
	}
}

// Run запускает HTTP сервер.
func (s *Server) Run() error {
	mux := http.DefaultServeMux

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))
	mux.HandleFunc("/run", enableCORS(s.handleRun))

	logger.Log.Infof("⚔️  Idle Dungeon Runner listening on :%s", s.Port)
	return http.ListenAndServe(":"+s.Port, mux)
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Разрешаем запросы с фронтенда
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Error("Upgrade error:", err)
		return
	}

	client := NewClient(s.Game, s.Hub, conn)

	go client.writePump()
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}

// handleRun отдает плоский снимок текущего забега (для дашбордов).
func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Game.RunSnapshot())
}
