package dataset

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/dmitrijs2005/apibench/internal/common"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/gzip"
)

// Encoding names a serialized form of the dataset, using the
// Content-Encoding token it is served under.
type Encoding string

const (
	Identity Encoding = "identity"
	Gzip     Encoding = "gzip"
	Brotli   Encoding = "br"
)

// Compressed lists the compressed encodings in server preference order.
var Compressed = []Encoding{Brotli, Gzip}

// BuildObserver receives the time it took to produce one encoding.
type BuildObserver func(enc Encoding, took time.Duration)

type variant struct {
	once sync.Once
	data []byte
	err  error
}

// Cache holds the dataset and its serialized forms for the lifetime of the
// process. Each form is produced at most once, on first use, even under
// concurrent callers. Returned slices are shared and must not be modified.
type Cache struct {
	usersOnce sync.Once
	users     []User
	variants  map[Encoding]*variant
	observe   BuildObserver
}

// NewCache returns an empty cache. observe may be nil.
func NewCache(observe BuildObserver) *Cache {
	return &Cache{
		variants: map[Encoding]*variant{
			Identity: {},
			Gzip:     {},
			Brotli:   {},
		},
		observe: observe,
	}
}

// Users returns the generated records.
func (c *Cache) Users() []User {
	c.usersOnce.Do(func() {
		c.users = Generate()
	})
	return c.users
}

// JSON returns the uncompressed JSON array of all users.
func (c *Cache) JSON() ([]byte, error) {
	return c.Encoded(Identity)
}

// Encoded returns the JSON array in the requested encoding.
func (c *Cache) Encoded(enc Encoding) ([]byte, error) {
	v, ok := c.variants[enc]
	if !ok {
		return nil, fmt.Errorf("%q: %w", enc, common.ErrUnsupportedEncoding)
	}
	v.once.Do(func() {
		start := time.Now()
		v.data, v.err = c.build(enc)
		if v.err == nil && c.observe != nil {
			c.observe(enc, time.Since(start))
		}
	})
	return v.data, v.err
}

// Warm builds the given encodings (JSON alone when none are given) so the
// first request does not pay for them.
func (c *Cache) Warm(encs ...Encoding) error {
	if len(encs) == 0 {
		encs = []Encoding{Identity}
	}
	for _, enc := range encs {
		if _, err := c.Encoded(enc); err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) build(enc Encoding) ([]byte, error) {
	if enc == Identity {
		b, err := json.Marshal(c.Users())
		if err != nil {
			return nil, fmt.Errorf("marshal users: %w", err)
		}
		return b, nil
	}

	raw, err := c.Encoded(Identity)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var w io.WriteCloser
	switch enc {
	case Gzip:
		w, err = gzip.NewWriterLevel(&buf, gzip.DefaultCompression)
		if err != nil {
			return nil, err
		}
	case Brotli:
		w = brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	}

	if _, err := w.Write(raw); err != nil {
		return nil, fmt.Errorf("%s write: %w", enc, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s close: %w", enc, err)
	}
	return buf.Bytes(), nil
}
