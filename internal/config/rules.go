package config

// RulesConfig holds settings for optional rule detection.
type RulesConfig struct {
	// DetectInsufficientMaterial ends the game as a draw when neither side
	// can possibly deliver mate (K v K, K+B v K, K+N v K, K+B v K+B on
	// same-coloured squares).
	DetectInsufficientMaterial bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() RulesConfig {
	return RulesConfig{
		DetectInsufficientMaterial: true,
	}
}
