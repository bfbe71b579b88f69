package score

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HighScore is one (name, score) pair from the high-score endpoint.
type HighScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// HighScoreClient fetches the read-only high-score list from the
// external web collaborator. Fetches run off the frame path; a failed
// or absent fetch simply leaves the list empty, which the menu renders
// as "no high scores available".
type HighScoreClient struct {
	baseURL string
	httpc   *http.Client

	mu     sync.Mutex
	scores []HighScore
}

// NewHighScoreClient creates a client for the given base URL
// (e.g. "http://localhost:5030"). An empty baseURL disables fetching.
func NewHighScoreClient(baseURL string) *HighScoreClient {
	return &HighScoreClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: 3 * time.Second},
	}
}

// FetchAsync starts a background fetch and returns immediately. Safe to
// call repeatedly; each call replaces the list on success.
func (c *HighScoreClient) FetchAsync() {
	if c.baseURL == "" {
		return
	}
	go func() {
		scores, err := c.fetch()
		if err != nil {
			return
		}
		c.mu.Lock()
		c.scores = scores
		c.mu.Unlock()
	}()
}

func (c *HighScoreClient) fetch() ([]HighScore, error) {
	resp, err := c.httpc.Get(c.baseURL + "/api/highscores")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("highscores: unexpected status %d", resp.StatusCode)
	}

	var scores []HighScore
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("highscores: decode: %w", err)
	}
	return scores, nil
}

// Scores returns a snapshot of the last successful fetch, ordered as the
// endpoint returned them. Empty when no fetch has succeeded.
func (c *HighScoreClient) Scores() []HighScore {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]HighScore, len(c.scores))
	copy(out, c.scores)
	return out
}
