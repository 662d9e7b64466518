package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/and161185/stampcard/internal/model"
)

func TestScan_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveScan(model.OutcomeAccepted, 3*time.Millisecond, false)
	m.ObserveScan(model.OutcomeAccepted, 4*time.Millisecond, true)
	m.ObserveScan(model.OutcomeReplayRejected, time.Millisecond, false)
	m.ObserveVoid()

	require.Equal(t, 2.0, testutil.ToFloat64(m.outcomes.WithLabelValues("accepted")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.outcomes.WithLabelValues("replay_rejected")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.redemptions))
	require.Equal(t, 1.0, testutil.ToFloat64(m.voids))

	expected := `
# HELP stampcard_redemptions_total Scans that completed a card and earned a reward.
# TYPE stampcard_redemptions_total counter
stampcard_redemptions_total 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "stampcard_redemptions_total"))
}

func TestScan_NilIsNoop(t *testing.T) {
	var m *Scan
	m.ObserveScan(model.OutcomeAccepted, time.Millisecond, true)
	m.ObserveVoid()
}

func TestNew_NilRegisterer(t *testing.T) {
	m := New(nil)
	m.ObserveScan(model.OutcomeTooSoon, time.Millisecond, false)
	require.Equal(t, 1.0, testutil.ToFloat64(m.outcomes.WithLabelValues("too_soon")))
}
