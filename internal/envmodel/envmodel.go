// Package envmodel derives environmental and physiological readings from the
// parameter tables: a baseline, a fixed seasonal (or health) offset and bounded
// uniform noise. The package holds no state; all randomness comes from the
// caller's source.
package envmodel

import (
	"math"
	"time"

	"github.com/itsatony/agrisynth/internal/models"
)

// Rand is the random source the model draws from. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// SeasonFor maps a calendar date onto the Zambian agricultural seasons:
// rainy from November to April, cool-dry from May to August, hot-dry in September and October.
func SeasonFor(t time.Time) models.Season {
	switch t.Month() {
	case time.May, time.June, time.July, time.August:
		return models.SeasonCoolDry
	case time.September, time.October:
		return models.SeasonHotDry
	default:
		return models.SeasonRainy
	}
}

// ValueFor returns baseline + adjustment + U(-noise, +noise)
func ValueFor(r Rand, baseline, adjustment, noise float64) float64 {
	return baseline + adjustment + (r.Float64()*2-1)*noise
}

// Band is a closed value interval
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies in the band, tolerating float representation error
func (b Band) Contains(v float64) bool {
	const eps = 1e-9
	return v >= b.Min-eps && v <= b.Max+eps
}

func (b Band) intersect(o Band) Band {
	return Band{Min: math.Max(b.Min, o.Min), Max: math.Min(b.Max, o.Max)}
}

// Metric describes how one reading is derived
type Metric struct {
	Name      string
	Baseline  float64
	Offset    float64 // seasonal or health adjustment
	Noise     float64 // half width of the uniform noise
	Domain    Band    // physically possible values
	Precision int     // decimals kept in generated values
}

// Band returns the interval baseline + offset ± noise, widened by half a unit
// of the metric's precision to cover rounding
func (m Metric) Band() Band {
	half := 0.5 * math.Pow(10, -float64(m.Precision))
	center := m.Baseline + m.Offset
	return Band{Min: center - m.Noise - half, Max: center + m.Noise + half}
}

// Model turns metric descriptions into values
type Model struct {
	// Clamp limits every value to its metric's physical domain. The bounded noise
	// already keeps values inside the metric band; clamping only matters for bands
	// reaching past the domain.
	Clamp bool
}

// NewModel returns the default model, which clamps
func NewModel() Model {
	return Model{Clamp: true}
}

// Value draws one value of the metric
func (m Model) Value(r Rand, metric Metric) float64 {
	v := round(ValueFor(r, metric.Baseline, metric.Offset, metric.Noise), metric.Precision)
	if m.Clamp {
		v = math.Min(math.Max(v, metric.Domain.Min), metric.Domain.Max)
	}
	return v
}

// Band returns the interval every value drawn for the metric falls in
func (m Model) Band(metric Metric) Band {
	b := metric.Band()
	if m.Clamp {
		b = b.intersect(metric.Domain)
	}
	return b
}

func round(v float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(v*p) / p
}
