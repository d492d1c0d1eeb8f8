// Package auction implements the linear Dutch-auction price function used
// to validate a resolver's submitted taking amount at fill time (spec.md
// §4.3, component C3).
package auction

import "math/big"

// Params bundles the inputs to the auction curve: S (start-high,
// making_amount), E (end-low, taking_amount), t0 (created_at) and d
// (duration), all in the Wallet's native units/milliseconds.
type Params struct {
	StartHigh uint64 // S
	EndLow    uint64 // E
	StartTime uint64 // t0
	Duration  uint64 // d, > 0
}

// clampedTime returns t = clamp(now, t0, t0+d).
func (p Params) clampedTime(nowMs uint64) uint64 {
	end := p.StartTime + p.Duration
	switch {
	case nowMs < p.StartTime:
		return p.StartTime
	case nowMs > end:
		return end
	default:
		return nowMs
	}
}

// currentTakingAmount returns T(t), the auction-wide taking amount at the
// clamped time t, computed with a 128-bit-safe intermediate product so the
// u64*u64 terms in the numerator cannot overflow before the division.
//
//	T(t) = ( S*(t0+d-t) + E*(t-t0) ) / d
func (p Params) currentTakingAmount(nowMs uint64) *big.Int {
	t := p.clampedTime(nowMs)

	remaining := p.StartTime + p.Duration - t // t0+d-t, >= 0 by clamping
	elapsed := t - p.StartTime                // t-t0, >= 0 by clamping

	sTerm := new(big.Int).Mul(big.NewInt(0).SetUint64(p.StartHigh), big.NewInt(0).SetUint64(remaining))
	eTerm := new(big.Int).Mul(big.NewInt(0).SetUint64(p.EndLow), big.NewInt(0).SetUint64(elapsed))

	numerator := new(big.Int).Add(sTerm, eTerm)
	duration := new(big.Int).SetUint64(p.Duration)

	return new(big.Int).Quo(numerator, duration)
}

// ExpectedTakingAmount returns ceilDiv( T(t)*makingAmount, S ), the minimum
// taking amount a resolver must submit to fill makingAmount units at time
// nowMs.
func (p Params) ExpectedTakingAmount(makingAmount, nowMs uint64) uint64 {
	t := p.currentTakingAmount(nowMs)
	numerator := new(big.Int).Mul(t, new(big.Int).SetUint64(makingAmount))
	s := new(big.Int).SetUint64(p.StartHigh)

	return ceilDiv(numerator, s)
}

// ExpectedMakingAmount is the inverse of ExpectedTakingAmount: given a
// taking amount, it returns floor( S*taking / T(t) ), the making amount that
// taking amount is worth at time nowMs.
func (p Params) ExpectedMakingAmount(takingAmount, nowMs uint64) uint64 {
	t := p.currentTakingAmount(nowMs)
	if t.Sign() == 0 {
		return 0
	}
	numerator := new(big.Int).Mul(new(big.Int).SetUint64(p.StartHigh), new(big.Int).SetUint64(takingAmount))

	return new(big.Int).Quo(numerator, t).Uint64()
}

func ceilDiv(numerator, denom *big.Int) uint64 {
	if denom.Sign() == 0 {
		return 0
	}
	q, r := new(big.Int).QuoRem(numerator, denom, new(big.Int))
	if r.Sign() != 0 {
		q.Add(q, big.NewInt(1))
	}
	return q.Uint64()
}
