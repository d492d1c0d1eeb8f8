package events

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/crossswap/escrowcore/escrowmetrics"
)

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, g.Write(&m))
	return m.GetGauge().GetValue()
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestWithMetricsForwardsAndCounts(t *testing.T) {
	m := escrowmetrics.New()
	rec := NewRecorder()
	sink := WithMetrics(rec, m)

	sink.EmitWalletCreated(WalletCreated{WalletID: 1})
	require.Len(t, rec.WalletCreated, 1)
	require.Equal(t, float64(1), counterValue(t, m.WalletsCreated))
}

func TestWithMetricsTracksActiveEscrowsAcrossLifecycle(t *testing.T) {
	m := escrowmetrics.New()
	sink := WithMetrics(NewRecorder(), m)

	sink.EmitEscrowCreated(EscrowCreated{EscrowID: 1})
	sink.EmitEscrowCreated(EscrowCreated{EscrowID: 2})
	require.Equal(t, float64(2), gaugeValue(t, m.ActiveEscrows))

	sink.EmitEscrowWithdrawn(EscrowWithdrawn{EscrowID: 1})
	require.Equal(t, float64(1), gaugeValue(t, m.ActiveEscrows))
	require.Equal(t, float64(1), counterValue(t, m.EscrowsWithdrawn))

	sink.EmitEscrowCancelled(EscrowCancelled{EscrowID: 2})
	require.Equal(t, float64(0), gaugeValue(t, m.ActiveEscrows))
	require.Equal(t, float64(1), counterValue(t, m.EscrowsCancelled))
}

func TestWithMetricsEscrowRescuedDecrementsActiveAndCounts(t *testing.T) {
	m := escrowmetrics.New()
	sink := WithMetrics(NewRecorder(), m)

	sink.EmitEscrowCreated(EscrowCreated{EscrowID: 1})
	sink.EmitEscrowRescued(EscrowRescued{EscrowID: 1, EscrowType: EscrowTypeDestination})

	require.Equal(t, float64(0), gaugeValue(t, m.ActiveEscrows))
	require.Equal(t, float64(1), counterValue(t, m.EscrowsRescued))
}

func TestWithMetricsWalletRescuedDoesNotTouchActiveEscrows(t *testing.T) {
	m := escrowmetrics.New()
	sink := WithMetrics(NewRecorder(), m)

	sink.EmitWalletRescued(WalletRescued{WalletID: 1})

	require.Equal(t, float64(1), counterValue(t, m.WalletsRescued))
	require.Equal(t, float64(0), gaugeValue(t, m.ActiveEscrows))
}
