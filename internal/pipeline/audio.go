package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extractAudio pulls a 16kHz mono WAV out of a video container so only the
// audio track gets uploaded. Whisper-style models need nothing more, and
// uploads shrink by an order of magnitude for screen recordings.
func (p *implPipeline) extractAudio(ctx context.Context, mediaPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	baseName := filepath.Base(mediaPath)
	stem := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	audioPath := filepath.Join(p.cfg.Paths.Temp, stem+"_audio.wav")

	p.logger.Info(ctx, "Extracting audio track: %s", mediaPath)

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Audio.FFmpegBinary, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}

// isAudioOnly reports whether the file is already an audio container, in
// which case extraction would be a pointless re-encode.
func isAudioOnly(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m4a", ".mp3":
		return true
	}
	return false
}
