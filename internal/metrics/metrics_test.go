package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveCapture(OutcomeFiled, "Admin", "model", 20*time.Millisecond)
	m.ObserveCapture(OutcomeFiled, "Admin", "model", 30*time.Millisecond)
	m.ObserveCapture(OutcomePending, "", "fallback", time.Millisecond)
	m.ObserveCorrection("Ideas", "Admin")
	m.ObserveConfirmation("People", true)
	m.ObserveDigest("cron", nil)
	m.ObserveDigest("cron", errors.New("telegram down"))

	if got := testutil.ToFloat64(m.captures.WithLabelValues(OutcomeFiled, "Admin", "model")); got != 2 {
		t.Errorf("filed captures: got %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.captures.WithLabelValues(OutcomePending, "", "fallback")); got != 1 {
		t.Errorf("pending captures: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.corrections.WithLabelValues("Ideas", "Admin")); got != 1 {
		t.Errorf("corrections: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.confirmations.WithLabelValues("People", "true")); got != 1 {
		t.Errorf("confirmations: got %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.digests.WithLabelValues("cron", "error")); got != 1 {
		t.Errorf("failed digests: got %v, want 1", got)
	}
}

func TestMetrics_Handler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveCorrection("Ideas", "Admin")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `second_brain_corrections_total{from="Ideas",to="Admin"} 1`) {
		t.Errorf("exposition missing correction counter:\n%s", rec.Body.String())
	}
}
