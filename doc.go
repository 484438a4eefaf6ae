/*
Package qecode implements a stabilizer quantum error-correcting code
simulator: symplectic (X|Z) representations of Pauli operators and codes,
Clifford gates and circuits acting on dense probability distributions over
Pauli strings, destabilizer/tailored/lookup decoders, and a flag-qubit
fault-tolerant syndrome-extraction subsystem, plus a small catalogue of
named codes for experimentation.

The packages are layered bottom-up: qecutils has no internal dependencies;
symplectic builds on qecutils; noise builds on symplectic; gate builds on
noise and symplectic; circuit builds on gate; stabilizer builds on circuit,
gate and symplectic; decoder builds on stabilizer and noise; ft composes
circuit, gate, noise and decoder into fault-tolerant syndrome measurement;
catalogue is a standalone set of fixtures and sweep helpers built on
decoder and noise.
*/
package qecode
