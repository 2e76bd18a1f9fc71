package narrative

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbalmer/statgen/internal/bank"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name string
		meta bank.ContextDescriptor
		in   float64
		want string
	}{
		{
			name: "currency",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayCurrency},
			in:   45.5,
			want: "$45.50",
		},
		{
			name: "thousands",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayThousands},
			in:   450000,
			want: "$450k",
		},
		{
			name: "percent",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayPercent},
			in:   75.5,
			want: "75.5%",
		},
		{
			name: "temperature",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayTemperature},
			in:   23,
			want: "23.0°C",
		},
		{
			name: "count with suffix unit",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayCount, Unit: "people", UnitPosition: bank.UnitSuffix},
			in:   1250,
			want: "1250.0 people",
		},
		{
			name: "length suffix",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayLength, Unit: "km", UnitPosition: bank.UnitSuffix},
			in:   12.4,
			want: "12.4 km",
		},
		{
			name: "generic bare",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayGeneric},
			in:   68.2,
			want: "68.2",
		},
		{
			name: "generic suffix glued",
			meta: bank.ContextDescriptor{DisplayAs: bank.DisplayGeneric, Unit: "bpm", UnitPosition: bank.UnitSuffix},
			in:   68.2,
			want: "68.2bpm",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in, tt.meta))
		})
	}
}

// Currency strings must parse back to the value they were rendered from.
func TestFormatValue_CurrencyRoundTrip(t *testing.T) {
	meta := bank.ContextDescriptor{DisplayAs: bank.DisplayCurrency}
	for _, v := range []float64{20, 45.5, 87.25, 149.99} {
		s := FormatValue(v, meta)
		parsed, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
		require.NoError(t, err)
		assert.InDelta(t, v, parsed, 0.005, "rendered %q", s)
	}
}

func TestFormatter_UnknownContext(t *testing.T) {
	f := NewFormatter(testBank())
	_, err := f.Format(10, "no_such_context")
	assert.ErrorIs(t, err, bank.ErrUnknownContext)
}
