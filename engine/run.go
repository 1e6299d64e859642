package engine

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/lucaskalb/theftcore/bloom"
	"github.com/lucaskalb/theftcore/stream"
	"github.com/lucaskalb/theftcore/typeinfo"
)

// Engine is the abstract boundary: Init, Run, Free.
type Engine struct {
	bloomHint uint
}

// Init creates an engine. A zero bloomSizeHint requests auto-sized bloom
// filter defaults; a nonzero value is the bloom filter bit-width exponent
// hint (clamped by the bloom package).
func Init(bloomSizeHint uint) *Engine {
	return &Engine{bloomHint: bloomSizeHint}
}

// Free releases engine-held state.
func (e *Engine) Free() {
	e.bloomHint = 0
}

// Run executes cfg.Trials trials of cfg.Property in ascending trial order
// and returns the aggregate run result: Pass if every trial passed, Fail if
// at least one trial failed, Skip if at least one trial was skipped and
// none failed, or Error if validation failed or the property returned
// Error.
func (e *Engine) Run(cfg Config) Outcome {
	if err := validate(&cfg); err != nil {
		if cfg.Report != nil {
			*cfg.Report = Report{}
		}
		return Error
	}
	if cfg.Trials == 0 {
		cfg.Trials = 100
	}

	runSeed := cfg.Seed
	if runSeed == 0 {
		runSeed = uint64(time.Now().UnixNano())
	}

	report := cfg.Report
	if report == nil {
		report = &Report{}
	}
	*report = Report{}

	filter := bloom.New(e.bloomHint, cfg.Trials)
	defer filter.Destroy()

	dedup := allHaveHash(cfg.Types)

	for i := 0; i < cfg.Trials; i++ {
		trialSeed := stream.DeriveTrialSeed(runSeed, i)
		s := stream.New(trialSeed)

		args, allocated := allocateTuple(cfg.Types, s, cfg.Env)
		if !allocated {
			report.Skipped++
			if notify(cfg.Progress, *report, i, trialSeed, Skip) == Halt {
				return finalResult(*report)
			}
			continue
		}

		if dedup {
			h := tupleHash(cfg.Types, args, cfg.Env)
			if filter.TestAndSet(h) {
				releaseTuple(cfg.Types, args, cfg.Env)
				report.Duplicates++
				if notify(cfg.Progress, *report, i, trialSeed, Duplicate) == Halt {
					return finalResult(*report)
				}
				continue
			}
		}

		outcome := cfg.Property(args, cfg.Env)
		switch outcome {
		case Pass:
			report.Passes++
			releaseTuple(cfg.Types, args, cfg.Env)
		case Skip:
			report.Skipped++
			releaseTuple(cfg.Types, args, cfg.Env)
		case Error:
			releaseTuple(cfg.Types, args, cfg.Env)
			notify(cfg.Progress, *report, i, trialSeed, Error)
			return Error
		case Fail:
			report.Failures++
			final := shrink(cfg, args, filter, dedup)
			reportFailure(cfg, runSeed, trialSeed, i, final)
			releaseTuple(cfg.Types, final, cfg.Env)
		default:
			releaseTuple(cfg.Types, args, cfg.Env)
			notify(cfg.Progress, *report, i, trialSeed, Error)
			return Error
		}

		if notify(cfg.Progress, *report, i, trialSeed, outcome) == Halt {
			return finalResult(*report)
		}
	}

	return finalResult(*report)
}

func finalResult(r Report) Outcome {
	switch {
	case r.Failures > 0:
		return Fail
	case r.Skipped > 0:
		return Skip
	default:
		return Pass
	}
}

func notify(hook ProgressHook, report Report, trial int, seed uint64, outcome Outcome) Action {
	if hook == nil {
		return Continue
	}
	return hook(report, trial, seed, outcome)
}

// allocateTuple calls each position's allocator in order, so later
// positions see random words already consumed by earlier ones. A declined
// allocation releases everything allocated so far and reports ok=false.
func allocateTuple(types []typeinfo.Any, s *stream.Stream, env any) (args []any, ok bool) {
	args = make([]any, len(types))
	for i, ti := range types {
		v, allocOK := ti.Alloc(s, env)
		if !allocOK {
			for j := 0; j < i; j++ {
				if types[j].CanRelease() {
					types[j].Release(args[j], env)
				}
			}
			return nil, false
		}
		args[i] = v
	}
	return args, true
}

func releaseTuple(types []typeinfo.Any, args []any, env any) {
	if args == nil {
		return
	}
	for i, ti := range types {
		if ti.CanRelease() {
			ti.Release(args[i], env)
		}
	}
}

// tupleHash mixes each position's hash with its position index through an
// incremental sink, so the same value appearing at a different position
// hashes differently.
func tupleHash(types []typeinfo.Any, args []any, env any) uint64 {
	h := xxhash.New()
	var word [8]byte
	for i, ti := range types {
		binary.LittleEndian.PutUint64(word[:], ti.Hash(args[i], env))
		h.Write(word[:])
		binary.LittleEndian.PutUint64(word[:], uint64(i))
		h.Write(word[:])
	}
	return h.Sum64()
}

func allHaveHash(types []typeinfo.Any) bool {
	for _, t := range types {
		if !t.CanHash() {
			return false
		}
	}
	return true
}

func reportFailure(cfg Config, runSeed, trialSeed uint64, index int, args []any) {
	if cfg.Output == nil {
		return
	}
	f := Failure{
		PropertyName: cfg.Name,
		RunSeed:      runSeed,
		TrialSeed:    trialSeed,
		TrialIndex:   index,
		Printed:      make([]string, len(cfg.Types)),
	}
	for i, ti := range cfg.Types {
		if ti.CanPrint() {
			var b strings.Builder
			ti.Print(&b, args[i], cfg.Env)
			f.Printed[i] = b.String()
		} else {
			f.Printed[i] = fmt.Sprintf("<no print op; rerun trial seed %d to reproduce>", trialSeed)
		}
	}
	fmt.Fprint(cfg.Output, f.String())
}
