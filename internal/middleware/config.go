package middleware

import "golang.org/x/time/rate"

// Config carries what route groups need to assemble their middleware chain.
type Config struct {
	JWTSecret      string
	RateLimitRPS   rate.Limit
	RateLimitBurst int
}
