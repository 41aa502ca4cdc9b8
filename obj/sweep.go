package obj

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
)

// Sweep returns the look-around yaw offset, in radians, t seconds into a
// search.
type Sweep func(t float64) float64

// SineSweep swings degrees either side of the starting yaw at rate radians
// per second.
func SineSweep(rate, degrees float64) Sweep {
	return func(t float64) float64 {
		return math.Sin(t*rate) * mgl64.DegToRad(degrees)
	}
}

// ScriptSweep compiles a tengo script that reads the globals t, rate and
// degrees and assigns the yaw offset in degrees to offset.
func ScriptSweep(src []byte, rate, degrees float64) (Sweep, error) {
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("rate", rate)
	_ = script.Add("degrees", degrees)
	_ = script.Add("offset", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("sweep script: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("sweep script: %w", err)
	}

	return func(t float64) float64 {
		if err := compiled.Set("t", t); err != nil {
			slog.Warn("sweep script: set t", "err", err)
			return 0
		}
		if err := compiled.Run(); err != nil {
			slog.Warn("sweep script: run", "err", err)
			return 0
		}
		return mgl64.DegToRad(compiled.Get("offset").Float())
	}, nil
}
