package answer

import "time"

// Config holds runtime knobs for the judging service.
type Config struct {
	Model           string
	Temperature     float32
	SemanticEnabled bool
	SemanticTimeout time.Duration
	Prompt          string
}
