package worldgen

import (
	"errors"
	"fmt"
)

// ErrExhausted is matched by every *ExhaustedError.
var ErrExhausted = errors.New("worldgen: retry budget exhausted")

// ExhaustedError reports that no attempt satisfied the constraints.
type ExhaustedError struct {
	Attempts int
	// Seed is the seed of the original request.
	Seed int64
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("worldgen: no world satisfied the constraints after %d attempts (seed %d)", e.Attempts, e.Seed)
}

// Is lets errors.Is match ErrExhausted.
func (e *ExhaustedError) Is(target error) bool { return target == ErrExhausted }

type violationKind uint8

const (
	violationLandPercent violationKind = iota + 1
	violationSeaCount
	violationLandCount
)

func (k violationKind) String() string {
	switch k {
	case violationLandPercent:
		return "land_pct"
	case violationSeaCount:
		return "seas"
	case violationLandCount:
		return "lands"
	}
	return "unknown"
}

// violation is the outcome of an attempt whose world broke a constraint. It
// never leaves the package: the orchestrator retries instead.
type violation struct {
	kind     violationKind
	got      float64
	min, max float64
}

func (v *violation) Error() string {
	return fmt.Sprintf("%s %v outside [%v, %v]", v.kind, v.got, v.min, v.max)
}
