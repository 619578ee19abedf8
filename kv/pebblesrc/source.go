// Package pebblesrc exposes a key range of a pebble database as a
// multi-pass, bidirectional views.Source of kv.KV entries in key order.
package pebblesrc

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"

	"seqview/kv"
	"seqview/views"
)

// Config selects the scanned key range. Prefix, when set, overrides both
// bounds.
type Config struct {
	LowerBound []byte
	UpperBound []byte
	Prefix     []byte
	Logger     *zap.Logger
}

func (cfg Config) bounds() (lower, upper []byte) {
	if cfg.Prefix != nil {
		return cfg.Prefix, kv.PrefixEnd(cfg.Prefix)
	}
	return cfg.LowerBound, cfg.UpperBound
}

// Source scans db. Every Begin opens a pebble iterator; Close releases all of
// them and must run before the database is closed.
type Source struct {
	db     *pebble.DB
	opts   pebble.IterOptions
	logger *zap.Logger
	iters  []*pebble.Iterator
}

var _ views.Source[kv.KV] = (*Source)(nil)

func New(db *pebble.DB, cfg Config) *Source {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lower, upper := cfg.bounds()
	logger.Debug("pebble source",
		zap.ByteString("lower", lower),
		zap.ByteString("upper", upper),
	)
	return &Source{
		db:     db,
		opts:   pebble.IterOptions{LowerBound: lower, UpperBound: upper},
		logger: logger,
	}
}

func (s *Source) newIter() *pebble.Iterator {
	opts := s.opts
	it := s.db.NewIter(&opts)
	s.iters = append(s.iters, it)
	return it
}

func (s *Source) Begin() views.Cursor[kv.KV] {
	it := s.newIter()
	return &cursor{src: s, it: it, atEnd: !it.First()}
}

func (s *Source) End() views.Sentinel[kv.KV] {
	return end{}
}

func (s *Source) Caps() views.Caps {
	return views.MultiPass | views.Bidirectional
}

// Close closes every iterator handed out so far.
func (s *Source) Close() error {
	var err error
	for _, it := range s.iters {
		err = errors.CombineErrors(err, it.Close())
	}
	s.logger.Debug("pebble source closed", zap.Int("iterators", len(s.iters)))
	s.iters = nil
	return errors.Wrap(err, "pebblesrc: close")
}

type cursor struct {
	src   *Source
	it    *pebble.Iterator
	atEnd bool
}

func (c *cursor) Value() kv.KV {
	return kv.Copy(c.it.Key(), c.it.Value())
}

func (c *cursor) Next() {
	if !c.it.Next() {
		c.atEnd = true
	}
}

// Prev from the end lands on the last key of the range.
func (c *cursor) Prev() {
	if c.atEnd {
		c.atEnd = !c.it.Last()
		return
	}
	c.it.Prev()
}

func (c *cursor) Clone() views.Cursor[kv.KV] {
	it := c.src.newIter()
	if c.atEnd || !c.it.Valid() {
		it.Last()
		it.Next()
		return &cursor{src: c.src, it: it, atEnd: true}
	}
	it.SeekGE(c.it.Key())
	return &cursor{src: c.src, it: it}
}

type end struct{}

func (end) Reached(c views.Cursor[kv.KV]) (bool, error) {
	cc, ok := c.(*cursor)
	if !ok {
		panic(errors.AssertionFailedf("pebblesrc: cursor %T compared against a foreign sentinel", c))
	}
	if err := cc.it.Error(); err != nil {
		return true, errors.Wrap(err, "pebblesrc: scan")
	}
	return !cc.it.Valid(), nil
}
