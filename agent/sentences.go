package agent

import "strings"

// splitSentences breaks a script into trimmed, non-empty sentences. Both
// the voice SSML rendering and the visual prompt decomposition derive their
// sub-tasks from this split, so it must stay deterministic.
func splitSentences(script string) []string {
	var sentences []string
	var b strings.Builder

	flush := func() {
		s := strings.TrimSpace(b.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		b.Reset()
	}

	for _, r := range script {
		switch r {
		case '.', '!', '?':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()

	return sentences
}
