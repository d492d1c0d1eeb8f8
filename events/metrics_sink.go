package events

import "github.com/crossswap/escrowcore/escrowmetrics"

// metricsSink wraps another Sink and increments the matching Prometheus
// counter for every record it forwards, so a caller gets both the recorded
// event stream and the operational counters from a single Sink value.
type metricsSink struct {
	next Sink
	m    *escrowmetrics.Collectors
}

// WithMetrics wraps next so every emitted record also updates m.
func WithMetrics(next Sink, m *escrowmetrics.Collectors) Sink {
	return &metricsSink{next: next, m: m}
}

func (s *metricsSink) EmitWalletCreated(e WalletCreated) {
	s.m.WalletsCreated.Inc()
	s.next.EmitWalletCreated(e)
}

func (s *metricsSink) EmitEscrowCreated(e EscrowCreated) {
	s.m.EscrowsCreated.Inc()
	s.m.ActiveEscrows.Inc()
	s.next.EmitEscrowCreated(e)
}

func (s *metricsSink) EmitEscrowWithdrawn(e EscrowWithdrawn) {
	s.m.EscrowsWithdrawn.Inc()
	s.m.ActiveEscrows.Dec()
	s.next.EmitEscrowWithdrawn(e)
}

func (s *metricsSink) EmitEscrowCancelled(e EscrowCancelled) {
	s.m.EscrowsCancelled.Inc()
	s.m.ActiveEscrows.Dec()
	s.next.EmitEscrowCancelled(e)
}

func (s *metricsSink) EmitWalletRescued(e WalletRescued) {
	s.m.WalletsRescued.Inc()
	s.next.EmitWalletRescued(e)
}

func (s *metricsSink) EmitEscrowRescued(e EscrowRescued) {
	s.m.EscrowsRescued.Inc()
	s.m.ActiveEscrows.Dec()
	s.next.EmitEscrowRescued(e)
}

var _ Sink = (*metricsSink)(nil)
