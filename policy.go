package jsonsync

import (
	"fmt"
	"time"
)

type policyKind int

const (
	policyManual policyKind = iota
	policyImmediate
	policyAsync
)

// FlushPolicy controls when the map gets written to disk. A policy is picked
// once at construction and never changes for the lifetime of the store.
type FlushPolicy struct {
	kind     policyKind
	interval time.Duration
}

// Manual only writes when you call Flush yourself. This is the default.
func Manual() FlushPolicy {
	return FlushPolicy{kind: policyManual}
}

// Immediate writes after every insert/remove. Safest, but most I/O. A flush
// failure is returned from the mutating call itself; the in-memory change has
// already happened at that point, so treat the error as "memory changed, disk
// may lag", not as a rollback.
func Immediate() FlushPolicy {
	return FlushPolicy{kind: policyImmediate}
}

// Async runs a background worker that flushes every interval and whenever the
// map changes. Mutations never block on the flush; a change notification that
// arrives while the worker is busy is coalesced into the next wake-up.
func Async(interval time.Duration) FlushPolicy {
	return FlushPolicy{kind: policyAsync, interval: interval}
}

// Interval reports the worker wake interval for an Async policy, zero
// otherwise.
func (p FlushPolicy) Interval() time.Duration {
	if p.kind == policyAsync {
		return p.interval
	}
	return 0
}

func (p FlushPolicy) String() string {
	switch p.kind {
	case policyImmediate:
		return "immediate"
	case policyAsync:
		return fmt.Sprintf("async(%s)", p.interval)
	default:
		return "manual"
	}
}

// validate rejects policies the store cannot run with.
func (p FlushPolicy) validate() error {
	if p.kind == policyAsync && p.interval <= 0 {
		return wrapConfig("async flush interval must be positive, got %s", p.interval)
	}
	return nil
}
