package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const pollInterval = 2 * time.Second

// GenerateText sends a prompt to Gemini and returns the generated text.
func (s *implService) GenerateText(ctx context.Context, prompt string) (string, error) {
	return s.withClient(ctx, func(ctx context.Context, client *genai.Client) (string, error) {
		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), s.generationConfig())
		if err != nil {
			return "", fmt.Errorf("generate content: %w", err)
		}
		return extractText(result)
	})
}

// TranscribeMedia uploads the media file, waits until the remote side has
// processed it, then generates text from the file and the prompt. The
// remote copy is deleted afterwards on a best-effort basis.
func (s *implService) TranscribeMedia(ctx context.Context, mediaPath, prompt string) (string, error) {
	return s.withClient(ctx, func(ctx context.Context, client *genai.Client) (string, error) {
		file, err := client.Files.UploadFromPath(ctx, mediaPath, nil)
		if err != nil {
			return "", fmt.Errorf("upload media: %w", err)
		}
		defer func() {
			if _, err := client.Files.Delete(ctx, file.Name, nil); err != nil {
				s.logger.Warn(ctx, "Failed to delete remote file %s: %v", file.Name, err)
			}
		}()

		file, err = s.waitForProcessing(ctx, client, file)
		if err != nil {
			return "", err
		}

		contents := []*genai.Content{
			genai.NewContentFromParts([]*genai.Part{
				genai.NewPartFromURI(file.URI, file.MIMEType),
				genai.NewPartFromText(prompt),
			}, genai.RoleUser),
		}

		result, err := client.Models.GenerateContent(ctx, s.model, contents, s.generationConfig())
		if err != nil {
			return "", fmt.Errorf("generate content: %w", err)
		}
		return extractText(result)
	})
}

// withClient runs fn with a client for the current API key, rotating to
// the next key on 429 / quota errors.
func (s *implService) withClient(ctx context.Context, fn func(ctx context.Context, client *genai.Client) (string, error)) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  s.apiKeys[s.currentKey],
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		text, err := fn(ctx, client)
		if err != nil {
			if isRetryable(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", err
		}
		return text, nil
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// waitForProcessing polls the uploaded file until it leaves the PROCESSING
// state.
func (s *implService) waitForProcessing(ctx context.Context, client *genai.Client, file *genai.File) (*genai.File, error) {
	for file.State == genai.FileStateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}

		var err error
		file, err = client.Files.Get(ctx, file.Name, nil)
		if err != nil {
			return nil, fmt.Errorf("poll uploaded file: %w", err)
		}
	}

	if file.State == genai.FileStateFailed {
		return nil, fmt.Errorf("remote processing failed for %s", file.Name)
	}
	return file, nil
}

func (s *implService) generationConfig() *genai.GenerateContentConfig {
	// Low temperature for factual accuracy.
	return &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](s.temperature),
	}
}

func (s *implService) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func extractText(result *genai.GenerateContentResponse) (string, error) {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
