// Package scope1 normalizes client fuel-consumption workbooks into the
// Scope 1 emissions reporting template.
package scope1

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// Selection decides which value a default rule with several choices fills in.
type Selection string

const (
	// SelectFirst always fills the first declared choice.
	SelectFirst Selection = "first"
	// SelectRandom fills a uniformly random choice.
	SelectRandom Selection = "random"
)

// Options configures normalization behavior.
type Options struct {
	// Selection specifies how default-fill choices are picked.
	Selection Selection
	// Rand is the source used by SelectRandom.
	// If nil, a generator seeded with Seed is created per run.
	Rand *rand.Rand
	// Seed seeds the generator used by SelectRandom when Rand is nil.
	Seed uint64
	// DateLayouts overrides the layouts tried for textual dates.
	// If nil, parser.DefaultDateLayouts is used.
	DateLayouts []string
	// Logger receives step-level debug events. Zero value logs nothing.
	Logger zerolog.Logger
}

// DefaultOptions returns default normalization options.
func DefaultOptions() Options {
	return Options{
		Selection: SelectFirst,
		Logger:    zerolog.Nop(),
	}
}

func (o Options) random() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rand.New(rand.NewPCG(o.Seed, o.Seed^0x9e3779b97f4a7c15))
}
