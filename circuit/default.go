package circuit

import (
	"github.com/Alan-Robertson/qecode-sub000/gate"
	"github.com/Alan-Robertson/qecode-sub000/noise"
	"github.com/Alan-Robertson/qecode-sub000/qecutils"
)

// Default is the standard circuit dispatcher (spec.md §4.F): each step
// applies the gate's combined operator-plus-noise, then applies c's
// IdleNoise wire-noise model independently to every qubit not named in
// that step's target list.
type Default struct{}

func (Default) Run(c *Circuit, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	return run(c, input, cfg, true)
}

// Noiseless suppresses wire noise, otherwise identical to Default
// (spec.md §4.F: "Noiseless dispatcher suppresses wire noise").
type Noiseless struct{}

func (Noiseless) Run(c *Circuit, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	return run(c, input, cfg, false)
}

func run(c *Circuit, input *noise.Table, cfg qecutils.RuntimeConfig, idleNoise bool) (*noise.Table, error) {
	cur := input
	for _, el := range c.Elements {
		next, err := gate.Apply(el.Gate, el.Target, cur, cfg)
		if err != nil {
			return nil, err
		}
		cur = next

		if idleNoise && c.IdleNoise != nil {
			cur, err = ApplyIdleNoise(*c.IdleNoise, el.Target, c.NQubits, cur, cfg)
			if err != nil {
				return nil, err
			}
		}
	}
	return cur, nil
}

// ApplyIdleNoise applies a single-qubit wire-noise model to every qubit in
// [0, nQubits) not present in active.
func ApplyIdleNoise(model noise.Model, active []int, nQubits int, input *noise.Table, cfg qecutils.RuntimeConfig) (*noise.Table, error) {
	busy := make(map[int]bool, len(active))
	for _, a := range active {
		busy[a] = true
	}
	cur := input
	wire := gate.WireNoise(model)
	for q := 0; q < nQubits; q++ {
		if busy[q] {
			continue
		}
		next, err := gate.Apply(wire, []int{q}, cur, cfg)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
