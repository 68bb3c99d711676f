// Package prompt assembles the instruction text sent to the generation
// gateway. Assembly is pure: the same snapshot and style draw always
// produce byte-identical output.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"briefgen/internal/catalog"
	"briefgen/internal/domain"
)

// ErrEmptyInput reports that a request carries nothing to generate from.
// It is detected locally, before any external call.
var ErrEmptyInput = errors.New("nothing selected or entered to generate from")

// dailyPromptTemplate turns the day's task records into a report request.
const dailyPromptTemplate = `You are a senior assistant to a project manager running K12 education study-tour programs. Write today's work report from the records below.

Date: %s

== Project work ==
%s

== Internal affairs ==
%s

== High-priority notes from the manager (must be reflected prominently) ==
%s

Writing requirements:
1. Tone: %s.
2. Prefer these verbs where they fit naturally: %s.
3. Never use first-person pronouns (I, we, my); write in an impersonal professional register.
4. Rephrase items marked "in progress" as concrete forward-moving actions, not static states.
5. When a contract, payment, or settlement item is completed, state it explicitly as a closed milestone.
6. Structure the report in exactly two sections: project work first, then internal affairs.
7. Output plain text only, no markdown.`

// weeklyPromptTemplate turns raw pasted notes into a weekly summary request.
const weeklyPromptTemplate = `You are a senior assistant to a project manager running K12 education study-tour programs. Turn the raw work notes below into a polished weekly summary.

Raw notes:
%s

Writing requirements:
1. The notes may contain several daily reports covering the same work; deduplicate and merge repeated items.
2. Organize the summary into exactly three sections: Completed, In Progress, Next-Week Plan.
3. Give particular weight to financial closure: signed contracts, collected payments, closed settlements.
4. Tone: %s.
5. Prefer these verbs where they fit naturally: %s.
6. Never use first-person pronouns (I, we, my); write in an impersonal professional register.
7. Output plain text only, no markdown.`

// meetingPromptTemplate accompanies an audio part and requests minutes.
const meetingPromptTemplate = `You will receive an audio recording of a meeting. Produce complete meeting minutes from it.

Background provided by the organizer:
%s

Required structure:
1. Meeting info header: date, attendees, topic (infer from the audio and the background where possible).
2. Discussion recap, organized by topic.
3. Action items as a table: item, owner, deadline.
4. A closing summary paragraph.

Requirements:
- Capture every name, figure, date, and decision mentioned.
- Remove filler words and verbal tics.
- Where the audio is unclear, mark the passage [inaudible] rather than guessing.`

// OCRPrompt accompanies a single image part and requests a text transcription.
const OCRPrompt = `Extract all text from this image.
Ignore phone status bar elements (time, battery, signal) and app navigation chrome.
Preserve the original line structure of the content.
Output the extracted text only, with no commentary.`

// BuildDaily assembles the daily report prompt from a selection snapshot.
// Only non-pending tasks appear, in stored order. Returns ErrEmptyInput
// when no task is active and the manual notes are blank.
func BuildDaily(p domain.GenerationParams, style catalog.Style) (string, error) {
	project := renderProjectBlock(p.ProjectSelections)
	internal := renderInternalBlock(p.InternalSelections)
	manual := strings.TrimSpace(p.ManualInput)

	if project == "" && internal == "" && manual == "" {
		return "", ErrEmptyInput
	}

	return fmt.Sprintf(dailyPromptTemplate,
		orPlaceholder(p.Date, "today"),
		orPlaceholder(project, "(none)"),
		orPlaceholder(internal, "(none)"),
		orPlaceholder(manual, "(none)"),
		style.Tone,
		strings.Join(style.Verbs, ", "),
	), nil
}

// BuildWeekly assembles the weekly summary prompt from raw pasted notes.
// Returns ErrEmptyInput when the notes are blank or whitespace.
func BuildWeekly(p domain.GenerationParams, style catalog.Style) (string, error) {
	notes := strings.TrimSpace(p.WeeklyInput)
	if notes == "" {
		return "", ErrEmptyInput
	}
	return fmt.Sprintf(weeklyPromptTemplate,
		notes,
		style.Tone,
		strings.Join(style.Verbs, ", "),
	), nil
}

// BuildMeeting assembles the meeting minutes prompt. The audio itself
// travels as a media part alongside this text. Returns ErrEmptyInput
// when no audio payload is present.
func BuildMeeting(p domain.GenerationParams) (string, error) {
	if len(p.MeetingAudio) == 0 {
		return "", ErrEmptyInput
	}
	context := strings.TrimSpace(p.MeetingContext)
	return fmt.Sprintf(meetingPromptTemplate, orPlaceholder(context, "(none provided)")), nil
}

func renderProjectBlock(clients []domain.ClientSelection) string {
	var b strings.Builder
	for _, client := range clients {
		var lines []string
		for _, group := range client.Groups {
			for _, task := range group.Tasks {
				if !task.Status.Active() {
					continue
				}
				lines = append(lines, fmt.Sprintf("  [%s] %s (%s)", group.Name, task.Label, task.Status.Label()))
			}
		}
		if len(lines) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Client: " + client.Name + "\n")
		b.WriteString(strings.Join(lines, "\n"))
	}
	return b.String()
}

func renderInternalBlock(tasks []domain.TaskEntry) string {
	var lines []string
	for _, task := range tasks {
		if !task.Status.Active() {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s (%s)", task.Label, task.Status.Label()))
	}
	return strings.Join(lines, "\n")
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
