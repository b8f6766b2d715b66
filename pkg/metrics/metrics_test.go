package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRegisterCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	RegisterCollectors(reg)

	HTTPRequests.WithLabelValues("GET", "/todos/", "200").Inc()
	StoreOperations.WithLabelValues("memory", "find", "ok").Inc()

	n, err := testutil.GatherAndCount(reg, "todo_http_requests_total", "todo_store_operations_total")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// registering twice on the same registry is a programming error
	require.Panics(t, func() { RegisterCollectors(reg) })
}
