package jsonsync

import (
	"github.com/unkn0wn-root/jsonsync/backend"
	"github.com/unkn0wn-root/jsonsync/serializer"
)

// Open opens (or creates) a store at path with the Manual flush policy and
// compact JSON on the default ShardMap backend.
func Open[K comparable, V any](path string) (*Handle[K, V], error) {
	return NewBuilder[K, V](path).Build()
}

// OpenWithPolicy opens a store with an explicit flush policy. Shorthand for
// NewBuilder(path).Policy(p).Build().
func OpenWithPolicy[K comparable, V any](path string, policy FlushPolicy) (*Handle[K, V], error) {
	return NewBuilder[K, V](path).Policy(policy).Build()
}

// Builder configures and opens a Store. Obtain one with NewBuilder, chain the
// setters you need, then call Build.
type Builder[K comparable, V any] struct {
	path    string
	policy  FlushPolicy
	pretty  bool
	ser     serializer.Serializer[K, V] // nil => JSON per pretty flag
	backend backend.Backend[K, V]       // nil => fresh ShardMap
	log     Logger
}

// NewBuilder starts configuring a store at path. Defaults: Manual policy,
// compact JSON, ShardMap backend, no logging.
func NewBuilder[K comparable, V any](path string) *Builder[K, V] {
	return &Builder[K, V]{path: path, policy: Manual()}
}

// Policy sets the flush policy (default Manual).
func (b *Builder[K, V]) Policy(p FlushPolicy) *Builder[K, V] {
	b.policy = p
	return b
}

// Pretty toggles human-readable JSON with indentation (default compact).
// Ignored when a custom Serializer is set.
func (b *Builder[K, V]) Pretty(yes bool) *Builder[K, V] {
	b.pretty = yes
	return b
}

// Serializer replaces the JSON default with a custom encoding, e.g.
// serializer.Msgpack or serializer.MustCBOR.
func (b *Builder[K, V]) Serializer(s serializer.Serializer[K, V]) *Builder[K, V] {
	b.ser = s
	return b
}

// Backend replaces the default ShardMap with a custom map implementation.
// The instance must be empty; Build populates it from the snapshot file.
func (b *Builder[K, V]) Backend(m backend.Backend[K, V]) *Builder[K, V] {
	b.backend = m
	return b
}

// Logger sets the logger used for background flush failures and lifecycle
// events. Nil disables logging.
func (b *Builder[K, V]) Logger(l Logger) *Builder[K, V] {
	b.log = l
	return b
}

// Build loads (or creates) the store and returns its handle. Fails with a
// Config error for invalid inputs, an Io error for file system trouble, or a
// Deserialize error when the existing file content is corrupt. A missing or
// empty file is a fresh empty store, never an error.
func (b *Builder[K, V]) Build() (*Handle[K, V], error) {
	if b.path == "" {
		return nil, wrapConfig("path must not be empty")
	}
	if err := b.policy.validate(); err != nil {
		return nil, err
	}

	ser := b.ser
	if ser == nil {
		ser = serializer.JSON[K, V]{Pretty: b.pretty}
	}
	m := b.backend
	if m == nil {
		m = backend.NewShardMap[K, V]()
	}
	log := coalesce[Logger](b.log, NopLogger{})

	loaded, err := Load(b.path, ser)
	if err != nil {
		return nil, err
	}
	for k, v := range loaded {
		m.Insert(k, v)
	}

	store := &Store[K, V]{
		m:      m,
		path:   b.path,
		ser:    ser,
		policy: b.policy,
		log:    log,
	}

	var worker *FlushWorker
	if b.policy.kind == policyAsync {
		// The store keeps the send side so mutations can nudge the worker;
		// the worker gets only the receive side. Flush failures stay inside
		// the worker: logged, never surfaced, never fatal to the loop.
		trigger := make(chan struct{}, 1)
		store.trigger = trigger
		worker = StartFlushWorkerWithChan(b.policy.interval, func() {
			if err := store.Flush(); err != nil {
				log.Error("background flush failed", Fields{"path": b.path, "err": err})
			}
		}, trigger)
		log.Debug("flush worker started", Fields{"path": b.path, "interval": b.policy.interval})
	}

	return &Handle[K, V]{Store: store, worker: worker}, nil
}

// Handle owns the store and, under an Async policy, its background flush
// worker. It exposes the full Store surface through embedding.
//
// Close the handle when done: it shuts the worker down synchronously, so no
// flush can run against a store that has started teardown. Closing may block
// for up to one in-flight flush.
type Handle[K comparable, V any] struct {
	*Store[K, V]
	worker *FlushWorker
}

// Close stops the background flush worker, if any, and waits for it to exit.
// Safe to call more than once.
func (h *Handle[K, V]) Close() error {
	if h.worker != nil {
		h.worker.Stop()
		h.log.Debug("flush worker stopped", Fields{"path": h.path})
	}
	return nil
}
