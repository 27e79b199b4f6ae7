// Package agent defines the stage agent capability contract and the five
// concrete stage agents of the content pipeline: research, script, voice,
// visual, and editor.
//
// Every agent implements Process (the stage's core work, which may block on
// an external provider) and ValidateOutput (a pure structural and semantic
// check of the produced result). Run is the only sanctioned entry point: it
// wraps both, absorbs every failure at the stage boundary, and reports a
// classified error the orchestrator treats as an opaque abort signal.
package agent
