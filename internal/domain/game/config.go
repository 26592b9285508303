package game

import "time"

// Config holds runtime knobs for the game service.
type Config struct {
	ResultTTL       time.Duration
	LeaderboardSize int
}
