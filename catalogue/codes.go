package catalogue

import "github.com/Alan-Robertson/qecode-sub000/symplectic"

// Code bundles a stabiliser code's generators with its logical operators,
// in the XLogicals/ZLogicals convention fixed by package stabilizer: rows
// [0,k) of Logicals are the X-type logicals, rows [k,2k) the Z-type.
type Code struct {
	Name        string
	Stabilizers *symplectic.Matrix
	Logicals    *symplectic.Matrix
}

// ThreeQubitBitFlip returns the [[3,1,1]] repetition code protecting
// against bit-flip (X) errors only (spec.md §8's smallest end-to-end
// scenario).
func ThreeQubitBitFlip() Code {
	return Code{
		Name:        "three_qubit_bit_flip",
		Stabilizers: mustPauliStrings("ZZI", "IZZ"),
		Logicals:    mustPauliStrings("XXX", "ZII"),
	}
}

// FiveQubit returns the [[5,1,3]] perfect code, the smallest code
// correcting an arbitrary single-qubit error.
func FiveQubit() Code {
	return Code{
		Name: "five_qubit",
		Stabilizers: mustPauliStrings(
			"XZZXI",
			"IXZZX",
			"XIXZZ",
			"ZXIXZ",
		),
		Logicals: mustPauliStrings("XXXXX", "ZZZZZ"),
	}
}

// Steane returns the [[7,1,3]] CSS code built from the classical [7,4]
// Hamming code's parity check matrix, used twice (once for X-type
// generators, once for Z-type).
func Steane() Code {
	return Code{
		Name: "steane",
		Stabilizers: mustPauliStrings(
			"IIIXXXX",
			"IXXIIXX",
			"XIXIXIX",
			"IIIZZZZ",
			"IZZIIZZ",
			"ZIZIZIZ",
		),
		Logicals: mustPauliStrings("XXXXXXX", "ZZZZZZZ"),
	}
}

// Shor returns the [[9,1,3]] concatenation of the three-qubit bit-flip and
// phase-flip codes.
func Shor() Code {
	return Code{
		Name: "shor",
		Stabilizers: mustPauliStrings(
			"ZZIIIIIII",
			"IZZIIIIII",
			"IIIZZIIII",
			"IIIIZZIII",
			"IIIIIIZZI",
			"IIIIIIIZZ",
			"XXXXXXIII",
			"IIIXXXXXX",
		),
		Logicals: mustPauliStrings("XXXXXXXXX", "ZIIZIIZII"),
	}
}

// All returns every fixture in the catalogue, keyed by name.
func All() map[string]Code {
	return map[string]Code{
		"three_qubit_bit_flip": ThreeQubitBitFlip(),
		"five_qubit":           FiveQubit(),
		"steane":               Steane(),
		"shor":                 Shor(),
	}
}
