package validate

import (
	"fmt"
	"strings"
)

// inaudibleMarker is the literal token the transcription prompt instructs
// the model to emit for unclear speech.
const inaudibleMarker = "[inaudible]"

// checkProvenance counts inaudible markers in the transcript and emits a
// single advisory finding when any exist: each marker is a segment the
// summary could have silently resolved into a confident claim. This is a
// risk signal, not a hallucination detector; it cannot tell whether the
// summary actually fabricated anything. Skipped when no transcript is
// available.
func checkProvenance(transcriptText string) []Finding {
	if transcriptText == "" {
		return nil
	}

	count := strings.Count(strings.ToLower(transcriptText), inaudibleMarker)
	if count == 0 {
		return nil
	}

	return []Finding{Finding(fmt.Sprintf(
		"**Inaudible segments**: transcript had %d %s marker(s), verify these weren't filled in with guesses in the summary",
		count, inaudibleMarker,
	))}
}
