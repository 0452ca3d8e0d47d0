// Package codec reads and writes search fixtures: a source matrix, a pattern
// matrix, the check mode and, optionally, planted and found assignments.
//
// The same Document is stored as JSON, YAML or TOML; the format follows the
// file extension (.json, .yaml / .yml, .toml).
//
//	source:  [[0, 1, 0], [0, 0, 1], [1, 0, 0]]
//	pattern: [[0, 1], [0, 0]]
//	hard_check: true
//	planted: [[0, 1]]
package codec
