package validate

import "os"

// ValidateBatch runs the checks over a list of summary files, resolving a
// transcript for each one from transcriptsDir. One file's read failure
// does not stop the batch and does not count toward the finding total.
func (v *Validator) ValidateBatch(files []string, transcriptsDir string) BatchResult {
	var batch BatchResult

	for _, file := range files {
		transcriptText := ""
		if data, err := os.ReadFile(TranscriptPath(file, transcriptsDir)); err == nil {
			transcriptText = string(data)
		}

		report, err := v.ValidateFile(file, transcriptText)
		if err != nil {
			batch.Files = append(batch.Files, FileResult{File: file, Err: err})
			batch.ReadErrors++
			continue
		}

		batch.Files = append(batch.Files, FileResult{File: file, Report: report})
		batch.TotalFindings += len(report.Findings)
	}

	return batch
}
