package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

var (
	ErrSignatureMissing  = errors.New("signature missing")
	ErrSignatureInvalid  = errors.New("signature verification failed")
	ErrIPNotAllowed      = errors.New("ip not whitelisted")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
)

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	AppSecret       string   // Meta app secret; signatures are only checked when set
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max messages per sender per minute
}

// SecurityValidator validates webhook requests.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// SignatureRequired reports whether an app secret is configured.
func (v *SecurityValidator) SignatureRequired() bool {
	return v.config.AppSecret != ""
}

// ValidateMetaSignature verifies the X-Hub-Signature-256 header Meta sends
// as "sha256=<hex>" over the raw body.
func (v *SecurityValidator) ValidateMetaSignature(payload []byte, signature string) error {
	if !v.SignatureRequired() {
		return nil
	}
	if signature == "" {
		return ErrSignatureMissing
	}
	if !strings.HasPrefix(signature, "sha256=") {
		return fmt.Errorf("%w: invalid signature format", ErrSignatureInvalid)
	}

	expectedSig, err := hex.DecodeString(signature[len("sha256="):])
	if err != nil {
		return fmt.Errorf("%w: invalid signature hex encoding", ErrSignatureInvalid)
	}

	mac := hmac.New(sha256.New, []byte(v.config.AppSecret))
	mac.Write(payload)
	if !hmac.Equal(expectedSig, mac.Sum(nil)) {
		return ErrSignatureInvalid
	}
	return nil
}

// ValidateIPAddress checks if request IP is whitelisted
func (v *SecurityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil
	}

	ip := extractIP(r)
	for _, allowedIP := range v.config.AllowedIPs {
		if ip == allowedIP {
			return nil
		}

		// Check CIDR range
		if strings.Contains(allowedIP, "/") {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if ipNet.Contains(net.ParseIP(ip)) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces the per-sender limit. A non-positive limit disables it.
func (v *SecurityValidator) CheckRateLimit(sender string) error {
	if v.rateLimiter == nil {
		return nil
	}
	return v.rateLimiter.Allow(sender)
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fallback to RemoteAddr
	ip, _, _ := net.SplitHostPort(r.RemoteAddr)
	return ip
}

// rateLimiter keeps one token bucket per sender and forgets idle senders.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			10000,         // Max unique senders
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimitExceeded, key)
	}
	return nil
}
