package ai

import (
	"strings"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/domain"
)

// quotaMarkers fragmentos con los que los proveedores reportan cuota agotada.
var quotaMarkers = []string{"429", "quota", "resource_exhausted", "rate limit", "rate_limit", "too many requests", "overloaded"}

// classify envuelve err en *domain.RateLimitError cuando el status o el mensaje indican cuota agotada.
func classify(status int, err error) error {
	if err == nil {
		return nil
	}
	if status == 429 || status == 529 {
		return &domain.RateLimitError{Err: err}
	}
	msg := strings.ToLower(err.Error())
	for _, m := range quotaMarkers {
		if strings.Contains(msg, m) {
			return &domain.RateLimitError{Err: err}
		}
	}
	return err
}
