// Package boltsrc exposes a bolt bucket as a views.Source of kv.KV entries in
// key order, read through one read-only transaction.
package boltsrc

import (
	"bytes"

	"github.com/boltdb/bolt"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"seqview/kv"
	"seqview/views"
)

var ErrBucketNotFound = errors.New("boltsrc: bucket not found")

type Config struct {
	// Prefix restricts the scan to keys starting with it. A prefixed source
	// is not Sized.
	Prefix []byte
	Logger *zap.Logger
}

// Source holds a read transaction open until Close.
type Source struct {
	tx     *bolt.Tx
	bucket *bolt.Bucket
	prefix []byte
	end    []byte // first key past the prefix, nil when unbounded
	logger *zap.Logger
}

var _ views.Source[kv.KV] = (*Source)(nil)

// Open starts a read transaction on db and positions the source on bucket.
func Open(db *bolt.DB, bucket string, cfg Config) (*Source, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tx, err := db.Begin(false)
	if err != nil {
		return nil, errors.Wrap(err, "boltsrc: begin")
	}
	b := tx.Bucket([]byte(bucket))
	if b == nil {
		return nil, errors.CombineErrors(
			errors.Wrapf(ErrBucketNotFound, "bucket %q", bucket),
			tx.Rollback(),
		)
	}
	logger.Debug("bolt source",
		zap.String("bucket", bucket),
		zap.ByteString("prefix", cfg.Prefix),
	)
	return &Source{
		tx:     tx,
		bucket: b,
		prefix: cfg.Prefix,
		end:    kv.PrefixEnd(cfg.Prefix),
		logger: logger,
	}, nil
}

// Close rolls back the read transaction. Cursors must not be used after it.
func (s *Source) Close() error {
	s.logger.Debug("bolt source closed")
	return errors.Wrap(s.tx.Rollback(), "boltsrc: rollback")
}

func (s *Source) Begin() views.Cursor[kv.KV] {
	c := &cursor{src: s, c: s.bucket.Cursor()}
	c.set(c.first())
	return c
}

func (s *Source) End() views.Sentinel[kv.KV] {
	return end{}
}

func (s *Source) Caps() views.Caps {
	caps := views.MultiPass | views.Bidirectional
	if len(s.prefix) == 0 {
		caps |= views.Sized
	}
	return caps
}

// Len is the number of keys in the bucket.
func (s *Source) Len() int {
	return s.bucket.Stats().KeyN
}

type cursor struct {
	src   *Source
	c     *bolt.Cursor
	k, v  []byte
	atEnd bool
}

func (c *cursor) first() ([]byte, []byte) {
	if len(c.src.prefix) == 0 {
		return c.c.First()
	}
	return c.c.Seek(c.src.prefix)
}

// last positions on the last key in range.
func (c *cursor) last() ([]byte, []byte) {
	if c.src.end == nil {
		return c.c.Last()
	}
	if k, _ := c.c.Seek(c.src.end); k == nil {
		return c.c.Last()
	}
	return c.c.Prev()
}

func (c *cursor) set(k, v []byte) {
	c.k, c.v = k, v
	c.atEnd = k == nil || !bytes.HasPrefix(k, c.src.prefix)
}

func (c *cursor) Value() kv.KV {
	return kv.Copy(c.k, c.v)
}

func (c *cursor) Next() {
	c.set(c.c.Next())
}

// Prev from the end lands on the last key in range.
func (c *cursor) Prev() {
	if c.atEnd {
		c.set(c.last())
		return
	}
	c.set(c.c.Prev())
}

func (c *cursor) Clone() views.Cursor[kv.KV] {
	cp := &cursor{src: c.src, c: c.src.bucket.Cursor(), atEnd: true}
	if !c.atEnd {
		cp.set(cp.c.Seek(c.k))
	}
	return cp
}

type end struct{}

func (end) Reached(c views.Cursor[kv.KV]) (bool, error) {
	cc, ok := c.(*cursor)
	if !ok {
		panic(errors.AssertionFailedf("boltsrc: cursor %T compared against a foreign sentinel", c))
	}
	return cc.atEnd, nil
}
