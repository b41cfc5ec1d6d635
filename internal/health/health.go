package health

import (
	"encoding/json"
	"net/http"
)

// Checker is a function that returns an error if the check fails.
type Checker func() error

// Handler returns an HTTP handler reporting liveness plus named checks.
// A failing check degrades the response to 503.
func Handler(checks map[string]Checker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		status := http.StatusOK
		results := map[string]string{}
		for name, check := range checks {
			if check == nil {
				continue
			}
			if err := check(); err != nil {
				results[name] = err.Error()
				status = http.StatusServiceUnavailable
			} else {
				results[name] = "ok"
			}
		}
		resp := map[string]any{
			"status": "ok",
			"checks": results,
		}
		if status != http.StatusOK {
			resp["status"] = "degraded"
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	})
}

// Readiness runs a single checker per request. It gates traffic until the
// card dataset has been published.
type Readiness struct {
	check Checker
}

// NewReadiness returns a readiness checker.
func NewReadiness(check Checker) *Readiness {
	return &Readiness{check: check}
}

// ServeHTTP returns 200 when the check passes, 503 otherwise.
func (rd *Readiness) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if rd.check == nil {
		w.WriteHeader(http.StatusOK)
		return
	}
	err := rd.check()
	w.Header().Set("Content-Type", "application/json")
	if err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "not_ready", "error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}
