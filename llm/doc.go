// Package llm defines the text-generation provider interface consumed by the
// research and script agents. Concrete providers live outside this module;
// the pipeline depends only on the contract defined here.
package llm
