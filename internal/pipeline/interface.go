package pipeline

import "context"

// Pipeline runs the two-pass generation flow for one recording: transcribe
// the media, summarize the transcript, write both artifacts, archive the
// source file.
type Pipeline interface {
	Process(ctx context.Context, mediaPath string) error
}
