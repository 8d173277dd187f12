// Package report provides runner sinks that present conformance results:
// a colourised text report, and streaming JSON and CSV result writers.
package report
