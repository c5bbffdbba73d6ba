package model

import "errors"

// Sentinel errors returned by NewSimConfig. Like geometry's NewGridConfig,
// this only guards the configuration boundary — once a SimConfig exists,
// the controller and planner trust it and never re-validate (spec §7:
// "Invalid configurations... are caller contract violations").
var (
	// ErrNonPositiveLearningRate indicates LearningRate <= 0.
	ErrNonPositiveLearningRate = errors.New("model: learning rate must be positive")
	// ErrNonPositiveSpeed indicates DefenderSpeed or IntruderSpeed <= 0.
	ErrNonPositiveSpeed = errors.New("model: defender and intruder speed must be positive")
	// ErrDefenderNotSlower indicates DefenderSpeed >= IntruderSpeed, which
	// breaks the Apollonian construction's 0 < k < 1 contract.
	ErrDefenderNotSlower = errors.New("model: defender speed must be strictly less than intruder speed")
	// ErrNegativeRepelWeight indicates WRepel < 0.
	ErrNegativeRepelWeight = errors.New("model: w_repel must be non-negative")
	// ErrNegativeEpsilon indicates Epsilon < 0.
	ErrNegativeEpsilon = errors.New("model: epsilon must be non-negative")
)

// SimConfig is the tunable behavior of one simulation tick (spec §3).
type SimConfig struct {
	LearningRate  float64
	DefenderSpeed float64
	IntruderSpeed float64
	WRepel        float64
	Epsilon       float64
}

// NewSimConfig validates and constructs a SimConfig. DefenderSpeed must be
// strictly less than IntruderSpeed: the Apollonian construction assumes a
// speed ratio k = DefenderSpeed/IntruderSpeed strictly between 0 and 1.
func NewSimConfig(learningRate, defenderSpeed, intruderSpeed, wRepel, epsilon float64) (SimConfig, error) {
	if learningRate <= 0 {
		return SimConfig{}, ErrNonPositiveLearningRate
	}
	if defenderSpeed <= 0 || intruderSpeed <= 0 {
		return SimConfig{}, ErrNonPositiveSpeed
	}
	if defenderSpeed >= intruderSpeed {
		return SimConfig{}, ErrDefenderNotSlower
	}
	if wRepel < 0 {
		return SimConfig{}, ErrNegativeRepelWeight
	}
	if epsilon < 0 {
		return SimConfig{}, ErrNegativeEpsilon
	}

	return SimConfig{
		LearningRate:  learningRate,
		DefenderSpeed: defenderSpeed,
		IntruderSpeed: intruderSpeed,
		WRepel:        wRepel,
		Epsilon:       epsilon,
	}, nil
}

// SpeedRatio returns DefenderSpeed / IntruderSpeed, the k used throughout
// the Apollonian construction.
func (c SimConfig) SpeedRatio() float64 {
	return c.DefenderSpeed / c.IntruderSpeed
}
