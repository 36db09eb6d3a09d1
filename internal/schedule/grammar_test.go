package schedule

import (
	"strings"
	"testing"

	"github.com/alexanderramin/beeline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleOutput = "Here is your plan for today.\n\n" +
	"```schedule\n" +
	"8:00 AM - 9:30 AM: Morning coding session (Programming)\n" +
	"9:30 AM - 9:45 AM: Break\n" +
	"9:45 AM - 11:15 AM: Deep reading (Reading)\n" +
	"```\n\n" +
	"Notes: Front-loaded the coding block while you're fresh.\n"

func TestCanonicalize_HappyPath(t *testing.T) {
	result := Canonicalize(sampleOutput)

	require.True(t, result.Detected)
	require.Len(t, result.Entries, 3)
	assert.Empty(t, result.Malformed)

	assert.Equal(t, domain.ScheduleEntry{
		Start: "8:00 AM", End: "9:30 AM",
		Label: "Morning coding session", Goal: "Programming",
	}, result.Entries[0])
	assert.Equal(t, domain.ScheduleEntry{
		Start: "9:30 AM", End: "9:45 AM", Label: "Break",
	}, result.Entries[1])

	assert.Contains(t, result.Text, "# Today's Schedule")
	assert.Contains(t, result.Text, "- 8:00 AM - 9:30 AM: Morning coding session (Programming)")
	assert.Contains(t, result.Text, "- 9:30 AM - 9:45 AM: Break")
	assert.Contains(t, result.Text, "## Notes")
	assert.Equal(t, "Front-loaded the coding block while you're fresh.", result.Notes)
}

func TestCanonicalize_NoFencedBlockReturnsRaw(t *testing.T) {
	raw := "Sorry, I can't build a schedule today."
	result := Canonicalize(raw)

	assert.False(t, result.Detected)
	assert.Equal(t, raw, result.Text)
	assert.Empty(t, result.Entries)
}

func TestCanonicalize_MalformedLineTaggedNotDropped(t *testing.T) {
	raw := "```schedule\n" +
		"8:00 AM - 9:00 AM: Writing (Thesis)\n" +
		"this is not a time range\n" +
		"9:00 AM - 9:15 AM: Break\n" +
		"```\n"
	result := Canonicalize(raw)

	require.True(t, result.Detected)
	require.Len(t, result.Entries, 2)
	require.Len(t, result.Malformed, 1)
	assert.Equal(t, "this is not a time range", result.Malformed[0])
	assert.Contains(t, result.Text, "- this is not a time range [format?]")
	assert.Contains(t, result.Text, "- 9:00 AM - 9:15 AM: Break")
}

func TestCanonicalize_BlankLinesDiscarded(t *testing.T) {
	raw := "```schedule\n" +
		"8:00 AM - 9:00 AM: Writing (Thesis)\n\n\n" +
		"9:00 AM - 9:15 AM: Break\n" +
		"```\n"
	result := Canonicalize(raw)
	assert.Len(t, result.Entries, 2)
	assert.Len(t, strings.Split(strings.TrimSpace(result.Text), "\n"), 4)
}

func TestCanonicalize_LabelWithInnerParens(t *testing.T) {
	raw := "```schedule\n" +
		"1:00 PM - 2:00 PM: Review (quick) pass (Reading)\n" +
		"```\n"
	result := Canonicalize(raw)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Review (quick) pass", result.Entries[0].Label)
	assert.Equal(t, "Reading", result.Entries[0].Goal)
}

func TestStripCanonical_RoundTrip(t *testing.T) {
	result := Canonicalize(sampleOutput)
	require.True(t, result.Detected)

	lines := StripCanonical(result.Text)
	require.Len(t, lines, 3)
	assert.Equal(t, "8:00 AM - 9:30 AM: Morning coding session (Programming)", lines[0])
	assert.Equal(t, "9:30 AM - 9:45 AM: Break", lines[1])
	assert.Equal(t, "9:45 AM - 11:15 AM: Deep reading (Reading)", lines[2])
}

func TestParseEntries_FromCanonicalText(t *testing.T) {
	result := Canonicalize(sampleOutput)
	entries := ParseEntries(result.Text)
	assert.Equal(t, result.Entries, entries)
}

func TestParseEntries_SkipsHeadingsAndFences(t *testing.T) {
	text := "# Today's Schedule\n```\n- 8:00 AM - 9:00 AM: Work (X)\nnot an entry\n"
	entries := ParseEntries(text)
	require.Len(t, entries, 1)
	assert.Equal(t, "Work", entries[0].Label)
}
