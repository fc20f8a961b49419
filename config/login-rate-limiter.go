package config

import "time"

// Login rate limit configuration
type LoginRateLimitConfig struct {
	MaxAttempts int           // Number of login attempts allowed per window
	Window      time.Duration // Fixed counting window
}

var DefaultLoginRateLimitConfig = LoginRateLimitConfig{
	MaxAttempts: 5,
	Window:      time.Minute,
}
