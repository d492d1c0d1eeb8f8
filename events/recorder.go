package events

import "sync"

// Recorder is an in-memory Sink, the settlement core's equivalent of the
// teacher's test mocks (htlcswitch/mock.go): it appends every emitted
// record to a slice so a demo harness or a test can assert on the emitted
// sequence without standing up a real event-bus.
type Recorder struct {
	mu sync.Mutex

	WalletCreated    []WalletCreated
	EscrowCreated    []EscrowCreated
	EscrowWithdrawn  []EscrowWithdrawn
	EscrowCancelled  []EscrowCancelled
	WalletRescued    []WalletRescued
	EscrowRescued    []EscrowRescued
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) EmitWalletCreated(e WalletCreated) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Debugf("WalletCreated: wallet=%d order=%x making=%d taking=%d",
		e.WalletID, e.OrderHash, e.MakingAmount, e.TakingAmount)
	r.WalletCreated = append(r.WalletCreated, e)
}

func (r *Recorder) EmitEscrowCreated(e EscrowCreated) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Debugf("EscrowCreated: escrow=%d order=%x amount=%d lastIndex=%d",
		e.EscrowID, e.OrderHash, e.Amount, e.LastUsedIndex)
	r.EscrowCreated = append(r.EscrowCreated, e)
}

func (r *Recorder) EmitEscrowWithdrawn(e EscrowWithdrawn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Infof("EscrowWithdrawn: escrow=%d by=%s amount=%d",
		e.EscrowID, e.WithdrawnBy, e.Amount)
	r.EscrowWithdrawn = append(r.EscrowWithdrawn, e)
}

func (r *Recorder) EmitEscrowCancelled(e EscrowCancelled) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Infof("EscrowCancelled: escrow=%d by=%s amount=%d",
		e.EscrowID, e.CancelledBy, e.Amount)
	r.EscrowCancelled = append(r.EscrowCancelled, e)
}

func (r *Recorder) EmitWalletRescued(e WalletRescued) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Infof("WalletRescued: wallet=%d by=%s amount=%d",
		e.WalletID, e.RescuedBy, e.Amount)
	r.WalletRescued = append(r.WalletRescued, e)
}

func (r *Recorder) EmitEscrowRescued(e EscrowRescued) {
	r.mu.Lock()
	defer r.mu.Unlock()
	log.Infof("EscrowRescued: escrow=%d type=%s by=%s amount=%d",
		e.EscrowID, e.EscrowType, e.RescuedBy, e.Amount)
	r.EscrowRescued = append(r.EscrowRescued, e)
}

var _ Sink = (*Recorder)(nil)
