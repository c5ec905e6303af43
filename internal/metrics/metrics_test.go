package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Transition("main_menu", "diet_menu")
	m.Transition("main_menu", "diet_menu")
	m.GatewayCall("db", "UserByID", nil)
	m.GatewayCall("gpt", "Complete", errors.New("boom"))
	m.ObserveGeneration(1500 * time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.transitions.WithLabelValues("main_menu", "diet_menu")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCalls.WithLabelValues("db", "UserByID", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.gatewayCalls.WithLabelValues("gpt", "Complete", "error")))
	require.Equal(t, 1, testutil.CollectAndCount(m.generation))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	require.NotPanics(t, func() {
		m.Transition("a", "b")
		m.GatewayCall("db", "x", nil)
		m.ObserveGeneration(time.Second)
	})
}
