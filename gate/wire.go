package gate

import "github.com/Alan-Robertson/qecode-sub000/noise"

// WireNoise returns an "IID noise gate" (spec.md §4.E): Operation is nil
// (pure identity push-forward) and ErrorModel is the given single-qubit
// model. Circuit dispatch applies it once per idle qubit at each step
// (spec.md §4.F), which is what lets correlated depolarising noise along
// idle wires be expressed without materialising an explicit gate per wire
// per step.
func WireNoise(model noise.Model) Gate {
	return Gate{NQubits: model.N(), ErrorModel: &model}
}
