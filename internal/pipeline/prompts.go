package pipeline

import "fmt"

// Prompt templates for the two generation passes. The [inaudible] rule in
// the transcription prompt is load-bearing: the provenance check counts
// exactly that token in the transcript.

const transcriptionPromptTemplate = `Transcribe this meeting recording into a detailed, verbatim transcript.

## Rules:
1. Identify each speaker by name when possible. If a speaker's name is unclear, label them as "Speaker 1", "Speaker 2", etc.
2. Include timestamps at the start of each speaker turn in [MM:SS] format.
3. Transcribe what was actually said, do NOT paraphrase, summarize, or omit anything.
4. If a word or phrase is unclear, write [inaudible] rather than guessing.
5. Note any significant non-verbal events in [brackets], e.g., [screen sharing starts], [laughter], [someone joins the call].

## Context (use ONLY for identifying speakers, NOT for content):
%s

## Format:
[MM:SS] **Speaker Name**: What they said verbatim.
`

const summaryPromptTemplate = `You are a precise meeting summarizer. Analyze the transcript below and create a structured summary in Markdown format.

## CRITICAL RULES, follow these strictly:
1. Only include information **explicitly stated** in the transcript. Do NOT infer, guess, or fabricate any facts.
2. The meeting date is: **%[1]s**. Use this date EXACTLY, do not guess or infer a different date.
3. The meeting title is: **%[2]s**. Use this title EXACTLY.
4. For participant names: use the EXACT spelling from the context document below. If a name is unclear in the transcript, write it phonetically and mark it with [unclear].
5. For decisions and action items: only list items that were **explicitly agreed upon** during the meeting. Do not infer implied decisions.
6. If information for a section is not discussed, write "Not discussed in this meeting", do NOT fabricate content.
7. When attributing statements or actions to people, only attribute what they **explicitly said or committed to**.
8. Do NOT start the summary with a preamble paragraph, begin directly with the first section heading.

## Context:
%[3]s

## Required Sections:

## 1. Meeting Overview
- **Meeting Title**: %[2]s
- **Date**: %[1]s
- **Duration**: (only if discernible from timestamps)
- **Participants**: (list all attendees with their roles if mentioned in context or recording)

## 2. Executive Summary
A 2-3 paragraph high-level summary of what was discussed and accomplished in this meeting.

## 3. Key Discussion Points
For each major topic discussed:
- **Topic name**: Detailed explanation of what was discussed
- Include context, concerns raised, and conclusions reached

## 4. Decisions Made
List all decisions with:
- The decision itself
- Who made or approved it
- Any conditions or caveats

## 5. Action Items
Create a table with:
| Action Item | Owner | Deadline | Priority |
|-------------|-------|----------|----------|
| Task description | Person responsible | Due date if mentioned | High/Medium/Low |

## 6. Open Questions / Parking Lot
Any unresolved questions or topics deferred for later discussion.

## 7. Next Steps
What happens after this meeting? Any follow-up meetings scheduled?

---
## Transcript to summarize:

%[4]s
`

func buildTranscriptionPrompt(contextText string) string {
	if contextText == "" {
		contextText = "No additional context provided."
	}
	return fmt.Sprintf(transcriptionPromptTemplate, contextText)
}

func buildSummaryPrompt(contextText, transcript, meetingDate, meetingTitle string) string {
	if contextText == "" {
		contextText = "No additional context provided."
	}
	if meetingDate == "" {
		meetingDate = "Date not available"
	}
	if meetingTitle == "" {
		meetingTitle = "Meeting"
	}
	return fmt.Sprintf(summaryPromptTemplate, meetingDate, meetingTitle, contextText, transcript)
}
