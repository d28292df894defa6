// Package widgets holds low-level rendering primitives: compositing a
// dialog card over a base canvas and reporting the card geometry that
// backdrop hit-testing consumes.
package widgets
