package main

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/novakj/ringside/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("bad configuration", "err", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, cfg.Dump())
	})

	addr := net.JoinHostPort(cfg.WebHost, cfg.WebPort)
	log.Info("starting diagnostics server", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("server error", "err", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response", "err", err)
	}
}
