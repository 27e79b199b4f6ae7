// Package pipeline sequences the five stage agents for one (topic,
// platform) pair. One GenerateContent call is one run: a strict forward
// data flow where each stage's output, together with the platform profile,
// forms the next stage's input. Any stage failure aborts the run; runs
// never share mutable state, so callers may drive them concurrently.
package pipeline
