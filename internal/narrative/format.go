package narrative

import (
	"fmt"

	"github.com/mbalmer/statgen/internal/bank"
)

// Formatter renders numeric values into unit-correct display strings
// using a context's display convention. Formatting is pure; it draws no
// random numbers.
type Formatter struct {
	bank *bank.Bank
}

// NewFormatter returns a Formatter over the given bank.
func NewFormatter(b *bank.Bank) *Formatter {
	return &Formatter{bank: b}
}

// Format renders value using the context's unit convention.
func (f *Formatter) Format(value float64, contextID string) (string, error) {
	meta, err := f.bank.MetadataFor(contextID)
	if err != nil {
		return "", err
	}
	return FormatValue(value, meta), nil
}

// FormatValue renders value per the descriptor's display kind:
//
//	currency     $45.50
//	thousands    $450k
//	percent      75.5%
//	temperature  23.0°C
//	count/length/area/volume/mass: one decimal, unit per position
//	generic      one decimal, unit glued when non-empty
func FormatValue(value float64, meta bank.ContextDescriptor) string {
	switch meta.DisplayAs {
	case bank.DisplayCurrency:
		return fmt.Sprintf("$%.2f", value)
	case bank.DisplayThousands:
		return fmt.Sprintf("$%.0fk", value/1000)
	case bank.DisplayPercent:
		return fmt.Sprintf("%.1f%%", value)
	case bank.DisplayTemperature:
		return fmt.Sprintf("%.1f°C", value)
	case bank.DisplayCount, bank.DisplayLength, bank.DisplayArea, bank.DisplayVolume, bank.DisplayMass:
		if meta.UnitPosition == bank.UnitPrefix {
			return fmt.Sprintf("%s%.1f", meta.Unit, value)
		}
		return fmt.Sprintf("%.1f %s", value, meta.Unit)
	default:
		if meta.Unit == "" {
			return fmt.Sprintf("%.1f", value)
		}
		if meta.UnitPosition == bank.UnitPrefix {
			return fmt.Sprintf("%s%.1f", meta.Unit, value)
		}
		return fmt.Sprintf("%.1f%s", value, meta.Unit)
	}
}
