package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mbalmer/statgen/internal/bank"
	"github.com/mbalmer/statgen/internal/blueprint"
	"github.com/mbalmer/statgen/internal/generators"
	"github.com/mbalmer/statgen/internal/narrative"
	"github.com/mbalmer/statgen/internal/question"
	"github.com/mbalmer/statgen/internal/refdata"
)

// Default workbook locations relative to the working directory.
const (
	defaultBankPath    = "data/ContextBanks.xlsx"
	defaultRefdataPath = "data/WorksheetMergeMasterSourceFile.xlsx"
	defaultCacheDir    = "data/cache"
)

// engine bundles the loaded bank, reference data, and generators behind
// one seeded random stream.
type engine struct {
	bank      *bank.Bank
	ref       *refdata.Provider
	assembler *narrative.Assembler
	rng       *rand.Rand

	mean       *generators.MeanGenerator
	mmm        *generators.MeanMedianModeGenerator
	trimmed    *generators.TrimmedMeanGenerator
	weighted   *generators.WeightedMeanGenerator
	percentile *generators.PercentileRankGenerator
}

// newEngine loads the bank and reference data per the command flags and
// wires all generators. A zero seed falls back to the current time.
func newEngine(cmd *cobra.Command, seed int64) (*engine, error) {
	if flagSeed, _ := cmd.Flags().GetInt64("seed"); flagSeed != 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	bankPath := resolvePath(cmd, "bank", "STATGEN_BANK", defaultBankPath)
	cacheDir, _ := cmd.Flags().GetString("cache-dir")
	if cacheDir == "" {
		cacheDir = defaultCacheDir
	}
	b, err := bank.Load(bankPath, cacheDir)
	if err != nil {
		return nil, fmt.Errorf("load context bank: %w", err)
	}

	refPath := resolvePath(cmd, "refdata", "STATGEN_REFDATA", defaultRefdataPath)
	ref, err := refdata.Load(refPath, rng)
	if err != nil {
		// The built-in tables keep every sampler working without the
		// workbook.
		ref = refdata.New(rng)
	}

	asm := narrative.NewAssembler(b, ref, rng)

	return &engine{
		bank:       b,
		ref:        ref,
		assembler:  asm,
		rng:        rng,
		mean:       generators.NewMeanGenerator(b, asm, ref, rng),
		mmm:        generators.NewMeanMedianModeGenerator(ref, rng),
		trimmed:    generators.NewTrimmedMeanGenerator(ref, rng),
		weighted:   generators.NewWeightedMeanGenerator(ref, rng),
		percentile: generators.NewPercentileRankGenerator(ref, rng),
	}, nil
}

// generate builds one question from a blueprint item.
func (e *engine) generate(item blueprint.Item) (*question.Question, error) {
	switch item.Family {
	case "mean":
		variation := bank.Variation(item.Variation)
		if variation == "" {
			variation = bank.VariationCalculate
		}
		return e.mean.Generate(generators.MeanParams{
			Variation:  variation,
			Difficulty: item.Difficulty,
			ContextID:  item.Context,
			Level:      bank.Level(item.Level),
			Marks:      item.Marks,
		})
	case "mean_median_mode":
		return e.mmm.Generate(item.Difficulty, item.Marks), nil
	case "trimmed_mean":
		return e.trimmed.Generate(item.Difficulty, item.Marks)
	case "weighted_mean":
		kind := generators.WeightedKind(item.Kind)
		if kind == "" {
			kind = generators.WeightedPercentage
		}
		return e.weighted.Generate(item.Difficulty, kind)
	case "percentile_rank":
		kind := generators.PercentileKind(item.Kind)
		if kind == "" {
			kind = generators.PercentileCalculation
		}
		return e.percentile.Generate(item.Difficulty, kind), nil
	default:
		return nil, fmt.Errorf("unknown question family %q", item.Family)
	}
}

// resolvePath returns the flag value (highest priority), then the env
// var, then the default.
func resolvePath(cmd *cobra.Command, flag, env, fallback string) string {
	if p, _ := cmd.Flags().GetString(flag); p != "" {
		return p
	}
	if p := os.Getenv(env); p != "" {
		return p
	}
	return fallback
}
