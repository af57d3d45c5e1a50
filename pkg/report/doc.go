// Package report publishes the outcome of a run: machine-readable outputs
// for CI systems through a Sink, and a human summary through Render.
package report
