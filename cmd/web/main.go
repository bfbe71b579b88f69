package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"bolamiga/internal/config"
	"bolamiga/internal/score"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "5030"
)

//go:embed index.html
var htmlPage string

// mockHighScores is the fixed leaderboard served until a real score
// store exists. The engine treats fetch failures as an empty list, so
// this endpoint is purely cosmetic.
var mockHighScores = []score.HighScore{
	{Name: "ACE", Score: 125000},
	{Name: "PWR", Score: 98750},
	{Name: "MAX", Score: 87500},
	{Name: "ZAP", Score: 76250},
	{Name: "GUN", Score: 65000},
}

func main() {
	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := strings.Replace(htmlPage, "{{.SSHHost}}", sshHost, -1)
		fmt.Fprint(w, page)
	})

	mux.HandleFunc("/api/highscores", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(mockHighScores); err != nil {
			log.Printf("highscores encode: %v", err)
		}
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"healthy","service":"bolamiga"}`)
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	log.Printf("Starting web server on http://%s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
