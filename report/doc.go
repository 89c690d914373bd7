// Package report renders the outcome of a run for people and for tools.
//
// Three formats are supported:
//
//	Text: the classic console summary: parameters, both solver values,
//	       the difference, a PASS/FAIL verdict and the state counts.
//	JSON: the same content as a machine-readable document.
//	YAML: as JSON, for configuration-style pipelines.
//
// Money is rounded half away from zero to two decimals with
// shopspring/decimal; structured formats carry the rounded strings next to
// the raw floats so consumers never re-round.
package report
