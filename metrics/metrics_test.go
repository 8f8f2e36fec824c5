package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRequest(t *testing.T) {
	counter := HTTPRequests.WithLabelValues("GET", "/metrics-test", "200")
	before := testutil.ToFloat64(counter)

	ObserveRequest("GET", "/metrics-test", "200", time.Now().Add(-10*time.Millisecond))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestObserveError(t *testing.T) {
	counter := ErrorResponses.WithLabelValues("metrics_test")
	before := testutil.ToFloat64(counter)

	ObserveError("metrics_test")
	ObserveError("metrics_test")

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
