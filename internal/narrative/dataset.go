package narrative

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mbalmer/statgen/internal/bank"
)

// DatasetGenerator produces numeric observations appropriate to a
// context's realistic value range, with spread and precision driven by
// the difficulty tier.
type DatasetGenerator struct {
	bank *bank.Bank
	rng  *rand.Rand
}

// NewDatasetGenerator returns a generator drawing from rng.
func NewDatasetGenerator(b *bank.Bank, rng *rand.Rand) *DatasetGenerator {
	return &DatasetGenerator{bank: b, rng: rng}
}

// Generate returns count values for the context at the given difficulty.
//
// Tiers 1-2 sample around the typical mean with a widening spread and
// nice-round the results; values may land outside [min,max], which is
// accepted. Tier 3 widens further but clamps into range and rounds
// lightly. Tier 4+ draws count-1 values from the middle 60% of the
// range and appends exactly one extreme value from the outer 10% band
// at a randomly chosen end.
func (g *DatasetGenerator) Generate(contextID string, difficulty, count int) ([]float64, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be >= 1, got %d", ErrInvalidParameter, count)
	}
	if difficulty < 1 || difficulty > 5 {
		return nil, fmt.Errorf("%w: difficulty must be in [1,5], got %d", ErrInvalidParameter, difficulty)
	}

	meta, err := g.bank.MetadataFor(contextID)
	if err != nil {
		return nil, err
	}

	span := meta.ValueMax - meta.ValueMin

	switch {
	case difficulty <= 2:
		spread := span * 0.2
		if difficulty == 2 {
			spread = span * 0.4
		}
		values := make([]float64, count)
		for i := range values {
			v := meta.TypicalMean + g.uniform(-spread, spread)
			values[i] = NiceRound(v)
		}
		return values, nil

	case difficulty == 3:
		lo := math.Max(meta.ValueMin, meta.TypicalMean-span*0.6)
		hi := math.Min(meta.ValueMax, meta.TypicalMean+span*0.6)
		decimals := 2
		if meta.DisplayAs == bank.DisplayCurrency || meta.DisplayAs == bank.DisplayPercent {
			decimals = 1
		}
		values := make([]float64, count)
		for i := range values {
			values[i] = roundTo(g.uniform(lo, hi), decimals)
		}
		return values, nil

	default: // difficulty >= 4
		values := make([]float64, 0, count)
		for i := 0; i < count-1; i++ {
			values = append(values, g.uniform(meta.ValueMin+span*0.2, meta.ValueMax-span*0.2))
		}

		// Exactly one extreme value from the outer 10% band.
		var outlier float64
		if g.rng.Intn(2) == 0 {
			outlier = meta.ValueMin + g.uniform(0, span*0.1)
		} else {
			outlier = meta.ValueMax - g.uniform(0, span*0.1)
		}
		values = append(values, outlier)

		g.rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})
		for i := range values {
			values[i] = roundTo(values[i], 2)
		}
		return values, nil
	}
}

// uniform draws from [lo, hi).
func (g *DatasetGenerator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

// NiceRound rounds to a pedagogically clean precision that depends on
// the value's magnitude: two decimals below 1, one decimal below 10,
// nearest 5 below 100, nearest 10 below 1000, nearest 100 above.
func NiceRound(value float64) float64 {
	switch {
	case value < 1:
		return roundTo(value, 2)
	case value < 10:
		return roundTo(value, 1)
	case value < 100:
		return math.Round(value/5) * 5
	case value < 1000:
		return math.Round(value/10) * 10
	default:
		return math.Round(value/100) * 100
	}
}

func roundTo(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}
