// Package harness cross-validates the resolvers on random fixtures.
//
// Each trial draws a source and a pattern from its own derived random stream,
// plants the pattern a few times, and then checks, for every configured mode:
//
//   - every planted assignment is found by the fast resolver;
//   - when Oracle is enabled, the fast and brute-force sets are identical.
//
// Trials run concurrently (bounded by Workers); each resolution call stays
// single-threaded. A run is reproducible from its Seed regardless of Workers.
package harness
