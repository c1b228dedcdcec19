// internal/pipeline/interpret-utterance/config.go
package interpretutterance

type Config struct {
	// MaxUtteranceLength caps how much text is scanned; longer input is
	// truncated, never rejected.
	MaxUtteranceLength int
}

func LoadConfig() *Config {
	return &Config{
		MaxUtteranceLength: 10000,
	}
}
