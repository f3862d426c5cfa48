package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/quangdnh/minuteflow/internal/export"
	"github.com/quangdnh/minuteflow/internal/meta"
)

// Process runs the full flow for one recording: filename metadata, optional
// audio extraction, transcription pass, summarization pass, artifact
// writes, optional docx export and validation, then archival of the media.
func (p *implPipeline) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()
	baseName := filepath.Base(mediaPath)
	stem := strings.TrimSuffix(baseName, filepath.Ext(baseName))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing: %s", mediaPath)

	md, ok := meta.FromFilename(baseName)
	if ok {
		p.logger.Info(ctx, "Detected date: %s", md.Date)
		p.logger.Info(ctx, "Detected title: %s", md.Title)
	} else {
		p.logger.Warn(ctx, "Could not extract date/title from filename: %s", baseName)
	}

	uploadPath := mediaPath
	if p.cfg.Audio.Extract && !isAudioOnly(mediaPath) {
		audioPath, err := p.extractAudio(ctx, mediaPath)
		if err != nil {
			p.logger.Warn(ctx, "Audio extraction failed, uploading media directly: %v", err)
		} else {
			uploadPath = audioPath
			defer p.cleanupTempFile(ctx, audioPath)
		}
	}

	// Pass 1: verbatim transcript.
	p.logger.Info(ctx, "[Pass 1/2] Generating transcript...")
	transcript, err := p.gen.TranscribeMedia(ctx, uploadPath, buildTranscriptionPrompt(p.contextText))
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	transcriptPath := filepath.Join(p.cfg.Paths.Transcripts, stem+"_transcript.md")
	if err := p.writeTranscript(transcriptPath, md, stem, transcript); err != nil {
		return err
	}
	p.logger.Info(ctx, "Saved transcript: %s", transcriptPath)

	// Pass 2: structured summary from the transcript, never the media.
	p.logger.Info(ctx, "[Pass 2/2] Generating summary from transcript...")
	summary, err := p.gen.GenerateText(ctx, buildSummaryPrompt(p.contextText, transcript, md.Date, md.Title))
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	summaryPath := filepath.Join(p.cfg.Paths.Output, stem+"_summary.md")
	if err := os.WriteFile(summaryPath, []byte(summary), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	p.logger.Info(ctx, "Saved summary: %s", summaryPath)

	if p.cfg.Export.Docx {
		p.exportDocx(ctx, md, stem, summaryPath, transcriptPath)
	}

	if p.cfg.Validation.AfterGenerate {
		p.validateArtifacts(ctx, baseName, summary, md.Date, transcript)
	}

	destPath := filepath.Join(p.cfg.Paths.Processed, baseName)
	if err := os.Rename(mediaPath, destPath); err != nil {
		return fmt.Errorf("archive media: %w", err)
	}
	p.logger.Info(ctx, "Archived media: %s", destPath)

	p.logger.Info(ctx, "Done in %s", time.Since(startTime).Round(time.Second))
	p.logger.Info(ctx, "========================================")
	return nil
}

func (p *implPipeline) writeTranscript(path string, md meta.Metadata, stem, transcript string) error {
	title := md.Title
	if title == "" {
		title = stem
	}
	date := md.Date
	if date == "" {
		date = "Unknown"
	}

	var b strings.Builder
	b.WriteString("# Transcript: " + title + "\n")
	b.WriteString("**Date**: " + date + "\n\n---\n\n")
	b.WriteString(transcript)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// exportDocx renders the summary and transcript as .docx next to the
// Markdown artifacts. Export failures are logged, not fatal: the Markdown
// files are the source of truth.
func (p *implPipeline) exportDocx(ctx context.Context, md meta.Metadata, stem, summaryPath, transcriptPath string) {
	title := md.Title
	if title == "" {
		title = stem
	}

	for _, f := range []struct{ src, title string }{
		{summaryPath, title + " (Summary)"},
		{transcriptPath, title + " (Transcript)"},
	} {
		data, err := os.ReadFile(f.src)
		if err != nil {
			p.logger.Warn(ctx, "Docx export: read %s: %v", f.src, err)
			continue
		}
		docxPath := strings.TrimSuffix(f.src, filepath.Ext(f.src)) + ".docx"
		if err := export.MarkdownToDocx(f.title, string(data), docxPath); err != nil {
			p.logger.Warn(ctx, "Docx export failed for %s: %v", f.src, err)
			continue
		}
		p.logger.Info(ctx, "Exported docx: %s", docxPath)
	}
}

// validateArtifacts runs the consistency checks on the freshly generated
// summary and reports findings as warnings. Findings never fail the
// pipeline; remediation is a human or re-generation step.
func (p *implPipeline) validateArtifacts(ctx context.Context, baseName, summary, expectedDate, transcript string) {
	report := p.validator.Validate(summary, expectedDate, transcript)
	if report.Clean() {
		p.logger.Info(ctx, "Validation: no issues detected in %s", baseName)
		return
	}
	for _, f := range report.Findings {
		p.logger.Warn(ctx, "Validation [%s]: %s", baseName, f)
	}
}

func (p *implPipeline) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", path, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
