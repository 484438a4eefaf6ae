// Package catalogue is a supplementary fixture/benchmark package (not part
// of the core simulator): a small library of named stabiliser codes used
// by tests and by Characterise/Scan, plus a pseudo-random code generator
// for property-style testing and ad-hoc benchmarking.
package catalogue

import (
	"fmt"

	"github.com/Alan-Robertson/qecode-sub000/symplectic"
)

// fromPauliStrings builds an (len(rows) x 2n) symplectic.Matrix from plain
// "IXYZ" strings, one row per string, all of equal length n. This is the
// catalogue's only textual code format; it exists purely for legibility of
// the fixtures in this package and is not used elsewhere in the module.
func fromPauliStrings(rows []string) (*symplectic.Matrix, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("catalogue: fromPauliStrings: no rows")
	}
	n := len(rows[0])
	m := symplectic.NewMatrix(len(rows), n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("catalogue: fromPauliStrings: row %d has length %d, want %d", r, len(row), n)
		}
		for q, ch := range row {
			switch ch {
			case 'I':
			case 'X':
				m.Set(r, q, 1)
			case 'Z':
				m.Set(r, q+n, 1)
			case 'Y':
				m.Set(r, q, 1)
				m.Set(r, q+n, 1)
			default:
				return nil, fmt.Errorf("catalogue: fromPauliStrings: row %d has invalid symbol %q", r, ch)
			}
		}
	}
	return m, nil
}

// mustPauliStrings panics on a malformed literal; used only for this
// package's own fixed, hand-checked fixtures below.
func mustPauliStrings(rows ...string) *symplectic.Matrix {
	m, err := fromPauliStrings(rows)
	if err != nil {
		panic(err)
	}
	return m
}
