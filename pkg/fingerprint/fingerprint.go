// Copyright © 2018 One Concern

// Package fingerprint computes blake2b tree digests of files.
//
// Content is split in leaves of a fixed size, hashed concurrently, then the leaf
// digests are hashed into a root digest. The digest only depends on content, leaf size
// and digest size.
package fingerprint

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"runtime"
	"sync"

	units "github.com/docker/go-units"
	blake2b "github.com/minio/blake2b-simd"
	"github.com/oneconcern/igvsession/pkg/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultLeafSize is the size of the leaves of the hash tree
	DefaultLeafSize = 5 * units.MiB

	// DefaultSize is the size of digests, in bytes
	DefaultSize = blake2b.Size
)

type chunkInput struct {
	part       int
	partBuffer []byte
	lastChunk  bool
}

// Option to configure a Maker
type Option func(*Maker)

// LeafSize sets the size of the leaves of the hash tree, in bytes
func LeafSize(sz int64) Option {
	return func(m *Maker) {
		m.leafSize = sz
	}
}

// NumberOfWorkers sets the number of leaves hashed concurrently
func NumberOfWorkers(no int) Option {
	return func(m *Maker) {
		if no > 0 {
			m.numberOfWorkers = no
		}
	}
}

// Size sets the size of digests, in bytes (at most 64)
func Size(sz uint8) Option {
	return func(m *Maker) {
		m.size = sz
	}
}

// Logger for the maker
func Logger(l *zap.Logger) Option {
	return func(m *Maker) {
		if l != nil {
			m.l = l
		}
	}
}

// New digest maker
func New(opts ...Option) *Maker {
	m := &Maker{
		leafSize:        DefaultLeafSize,
		numberOfWorkers: runtime.NumCPU(),
		size:            DefaultSize,
		l:               zap.NewNop(),
	}

	for _, apply := range opts {
		apply(m)
	}
	return m
}

// Maker computes digests
type Maker struct {
	size            uint8
	leafSize        int64
	numberOfWorkers int
	l               *zap.Logger
}

func (m *Maker) validate() error {
	if m.size == 0 || m.size > blake2b.Size {
		return fmt.Errorf("digest size must be between 1 and %d bytes, got %d", blake2b.Size, m.size)
	}
	if m.leafSize <= 0 || m.leafSize > math.MaxUint32 {
		return fmt.Errorf("leaf size must be between 1 and %d bytes, got %d", uint32(math.MaxUint32), m.leafSize)
	}
	return nil
}

// Process computes the digest of an object in store
func (m *Maker) Process(ctx context.Context, store storage.Store, key string) ([]byte, error) {
	rdr, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rdr.Close()

	digest, err := m.Sum(ctx, rdr)
	if err != nil {
		return nil, err
	}
	m.l.Debug("fingerprint", zap.String("key", key), zap.Binary("digest", digest))
	return digest, nil
}

// Sum computes the digest of the content of a reader
func (m *Maker) Sum(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	var (
		mx      sync.Mutex
		digests = make(map[int][]byte)
	)
	chunks := make(chan chunkInput)
	grp, gctx := errgroup.WithContext(ctx)

	for i := 0; i < m.numberOfWorkers; i++ {
		grp.Go(func() error {
			for c := range chunks {
				digest, err := m.leafDigest(c)
				if err != nil {
					return err
				}
				mx.Lock()
				digests[c.part] = digest
				mx.Unlock()
			}
			return nil
		})
	}

	grp.Go(func() error {
		defer close(chunks)
		return m.split(gctx, r, chunks)
	})

	if err := grp.Wait(); err != nil {
		return nil, err
	}

	// concatenate digests of leaves, in order
	sz := int(m.size)
	b := make([]byte, len(digests)*sz)
	for index, val := range digests {
		offset := sz * index
		copy(b[offset:offset+sz], val)
	}

	rootBlake, err := blake2b.New(&blake2b.Config{
		Size: m.size,
		Tree: &blake2b.Tree{
			Fanout:        0,
			MaxDepth:      2,
			LeafSize:      uint32(m.leafSize),
			NodeOffset:    0,
			NodeDepth:     1,
			InnerHashSize: m.size,
			IsLastNode:    true,
		},
	})
	if err != nil {
		return nil, err
	}
	_, _ = rootBlake.Write(b)
	return rootBlake.Sum(nil), nil
}

// split reads leaves and feeds them to the workers. Empty content yields a single empty leaf.
func (m *Maker) split(ctx context.Context, r io.Reader, chunks chan<- chunkInput) error {
	br := bufio.NewReader(r)
	for part := 0; ; part++ {
		partBuffer := make([]byte, m.leafSize)
		n, err := io.ReadFull(br, partBuffer)
		lastChunk := false
		switch err {
		case nil:
			if _, perr := br.Peek(1); perr == io.EOF {
				lastChunk = true
			} else if perr != nil {
				return perr
			}
		case io.EOF, io.ErrUnexpectedEOF:
			lastChunk = true
		default:
			return err
		}

		select {
		case chunks <- chunkInput{part: part, partBuffer: partBuffer[:n], lastChunk: lastChunk}:
		case <-ctx.Done():
			return ctx.Err()
		}

		if lastChunk {
			return nil
		}
	}
}

func (m *Maker) leafDigest(c chunkInput) ([]byte, error) {
	blake, err := blake2b.New(&blake2b.Config{
		Size: m.size,
		Tree: &blake2b.Tree{
			Fanout:        0,
			MaxDepth:      2,
			LeafSize:      uint32(m.leafSize),
			NodeOffset:    uint64(c.part),
			NodeDepth:     0,
			InnerHashSize: m.size,
			IsLastNode:    c.lastChunk,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating hash for leaf %d: %w", c.part, err)
	}
	_, _ = blake.Write(c.partBuffer)
	return blake.Sum(nil), nil
}
