// FilePath: internal/generator/generator.go
package generator

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/internal/envmodel"
)

// ErrInvalidArgument is returned for negative counts and missing parent records
var ErrInvalidArgument = errors.New("invalid argument")

// DefaultEpoch is the earliest creation timestamp of generated records
var DefaultEpoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

// ID prefixes per entity
const (
	PrefixUser            = "usr"
	PrefixFarm            = "frm"
	PrefixSensorReading   = "sr"
	PrefixPestDetection   = "pd"
	PrefixLivestock       = "lv"
	PrefixLivestockHealth = "lh"
	PrefixProduct         = "prd"
	PrefixOrder           = "ord"
	PrefixDataset         = "ds"
)

// Generator synthesizes demo records. A Generator is cheap to build and must
// not be shared between goroutines; build one per request instead.
type Generator struct {
	rng    *rand.Rand
	seed   uint64
	seeded bool
	now    func() time.Time
	epoch  time.Time
	model  envmodel.Model
	ids    idSource

	orderQuantity func() int
}

// Option configures a Generator
type Option func(*Generator)

// WithSeed makes every value and ID reproducible for a fixed clock
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
		g.seeded = true
		g.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand injects a random source. IDs are then drawn from the same source.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		g.rng = r
		g.seeded = true
	}
}

// WithClock replaces the wall clock used for timestamps
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// WithEpoch sets the earliest creation timestamp
func WithEpoch(epoch time.Time) Option {
	return func(g *Generator) {
		g.epoch = epoch
	}
}

// WithModel replaces the environmental model, e.g. to disable clamping
func WithModel(m envmodel.Model) Option {
	return func(g *Generator) {
		g.model = m
	}
}

// New creates a Generator. Without options it draws from a system-seeded source,
// uses the wall clock and nuts IDs.
func New(opts ...Option) *Generator {
	g := &Generator{
		now:   time.Now,
		epoch: DefaultEpoch,
		model: envmodel.NewModel(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if g.seeded {
		g.ids = uuidSource{r: randReader{g.rng}}
	} else {
		g.ids = nidSource{}
	}
	g.orderQuantity = func() int { return g.intBetween(1, 10) }
	return g
}

// Seed returns the seed given with WithSeed, zero otherwise
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Seeded reports whether IDs are drawn from the random source
func (g *Generator) Seeded() bool {
	return g.seeded
}

func validateCount(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidArgument, name, n)
	}
	return nil
}

func requireParents(name string, n, count int) error {
	if count > 0 && n == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidArgument, name)
	}
	return nil
}

// idSource hands out record identifiers unique within one run
type idSource interface {
	NewID(prefix string) string
}

type nidSource struct{}

func (nidSource) NewID(prefix string) string {
	return nuts.NID(prefix, 12)
}

type uuidSource struct {
	r io.Reader
}

func (s uuidSource) NewID(prefix string) string {
	u, err := uuid.NewRandomFromReader(s.r)
	if err != nil {
		// randReader never fails
		return nuts.NID(prefix, 12)
	}
	return prefix + "_" + u.String()
}

// randReader exposes a random source as an io.Reader
type randReader struct {
	r *rand.Rand
}

func (rr randReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := rr.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

func pick[T any](g *Generator, items []T) T {
	return items[g.rng.IntN(len(items))]
}

// intBetween returns a uniform int in [lo, hi]
func (g *Generator) intBetween(lo, hi int) int {
	return lo + g.rng.IntN(hi-lo+1)
}

func (g *Generator) floatBetween(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// timeBetween returns a uniform instant in [from, to)
func (g *Generator) timeBetween(from, to time.Time) time.Time {
	span := to.Sub(from)
	if span <= 0 {
		return to
	}
	return from.Add(time.Duration(g.rng.Int64N(int64(span))))
}

func (g *Generator) createdAt(now time.Time) time.Time {
	return g.since(g.epoch, now)
}

// since returns an instant between parent and now, never before the epoch
func (g *Generator) since(parent, now time.Time) time.Time {
	if parent.Before(g.epoch) {
		parent = g.epoch
	}
	return g.timeBetween(parent, now).UTC().Truncate(time.Second)
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
