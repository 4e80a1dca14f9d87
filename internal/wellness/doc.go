// Package wellness implements the pure health calculations exposed by the
// API: body mass index, calorie burn estimation, hydration status, and
// sleep scoring. Every function is a deterministic mapping from validated
// inputs to derived values, with no side effects.
package wellness
