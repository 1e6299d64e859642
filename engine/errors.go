package engine

import "github.com/pkg/errors"

// Configuration errors. A Run that fails validation surfaces as Error
// before any trial executes; these are the underlying causes a caller can
// match against.
var (
	ErrNoProperty     = errors.New("engine: config has no property function")
	ErrNoTypes        = errors.New("engine: config has no type-info entries")
	ErrNoAlloc        = errors.New("engine: a type-info entry has no allocator")
	ErrNegativeTrials = errors.New("engine: config requests a negative trial count")
)

func validate(cfg *Config) error {
	if cfg.Property == nil {
		return ErrNoProperty
	}
	if len(cfg.Types) == 0 {
		return ErrNoTypes
	}
	for i, ti := range cfg.Types {
		if !ti.CanAlloc() {
			return errors.Wrapf(ErrNoAlloc, "position %d", i)
		}
	}
	if cfg.Trials < 0 {
		return ErrNegativeTrials
	}
	return nil
}
