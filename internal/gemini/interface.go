package gemini

import "context"

// Service is the remote generation collaborator. It accepts media or text
// plus a prompt and returns generated text; everything else (upload,
// remote processing state, key handling) stays behind this boundary.
type Service interface {
	// TranscribeMedia uploads a local media file, waits for the remote
	// side to finish processing it, and generates text from the file plus
	// the prompt.
	TranscribeMedia(ctx context.Context, mediaPath, prompt string) (string, error)

	// GenerateText generates text from a prompt alone.
	GenerateText(ctx context.Context, prompt string) (string, error)
}
