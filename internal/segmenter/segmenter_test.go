package segmenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rules-embed/internal/domain"
)

func TestSegment_NumberedRules(t *testing.T) {
	raw := "100. General\n100.1. These are the rules.\n100.1a Clarification text.\n"
	got := Segment(raw)
	want := []domain.RuleRecord{
		{Number: "100", Text: "100. General"},
		{Number: "100.1", Text: "100.1. These are the rules."},
		{Number: "100.1a", Text: "100.1a Clarification text."},
	}
	assert.Equal(t, want, got)
}

func TestSegment_MultiLineBody(t *testing.T) {
	raw := "205.3a This is the first part.\nIt continues here.\n205.3b Second part.\n"
	got := Segment(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "205.3a", got[0].Number)
	assert.Equal(t, "205.3a This is the first part.\nIt continues here.", got[0].Text)
	assert.Equal(t, "205.3b", got[1].Number)
	assert.Equal(t, "205.3b Second part.", got[1].Text)
}

func TestSegment_PreambleDiscarded(t *testing.T) {
	got := Segment("Some preamble with no rule numbers.\n")
	assert.Empty(t, got)
}

func TestSegment_EmptyInput(t *testing.T) {
	assert.Empty(t, Segment(""))
}

func TestSegment_ConsecutiveHeaders(t *testing.T) {
	got := Segment("100. General\n101. Starting the Game\n")
	require.Len(t, got, 2)
	assert.Equal(t, "100. General", got[0].Text)
	assert.Equal(t, "101. Starting the Game", got[1].Text)
}

func TestSegment_DuplicateNumbersKept(t *testing.T) {
	got := Segment("100. First occurrence\n100. Second occurrence\n")
	require.Len(t, got, 2)
	assert.Equal(t, "100", got[0].Number)
	assert.Equal(t, "100", got[1].Number)
	assert.Equal(t, "100. First occurrence", got[0].Text)
	assert.Equal(t, "100. Second occurrence", got[1].Text)
}

func TestSegment_BlankLinesInsideBodyKept(t *testing.T) {
	got := Segment("205.1 Part one.\n\ncontinues after a gap\n")
	require.Len(t, got, 1)
	assert.Equal(t, "205.1 Part one.\n\ncontinues after a gap", got[0].Text)
}

func TestSegment_RecordCountMatchesHeaderLines(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"no headers", "intro\nmore intro\n", 0},
		{"single header", "100. General\n", 1},
		{"headers with bodies", "100. A\nbody\n200. B\nbody\nbody\n300. C\n", 3},
		{"preamble then headers", "Magic: The Gathering\nComprehensive Rules\n100. General\n100.1. Rule.\n", 2},
		{"deep numbering", "601.2b As part of casting.\n601.2.1 Hypothetical deeper level.\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Segment(tt.raw), tt.want)
		})
	}
}

func TestSegment_OrderFollowsDocument(t *testing.T) {
	raw := "300. C\n100. A\n200. B\n"
	got := Segment(raw)
	require.Len(t, got, 3)
	numbers := []string{got[0].Number, got[1].Number, got[2].Number}
	assert.Equal(t, []string{"300", "100", "200"}, numbers)
}

func TestSegment_VeryLongBodyLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	got := Segment("100. General\n" + long + "\n200. Parts of the Game\n")
	require.Len(t, got, 2)
	assert.Equal(t, "100. General\n"+long, got[0].Text)
	assert.Equal(t, "200", got[1].Number)
}

func TestSegment_CRLFLineEndings(t *testing.T) {
	got := Segment("100. General\r\nbody line\r\n200. Parts of the Game\r\n")
	require.Len(t, got, 2)
	assert.Equal(t, "100. General\nbody line", got[0].Text)
	assert.Equal(t, "200. Parts of the Game", got[1].Text)
}

func TestSegment_TrailingWhitespaceTrimmed(t *testing.T) {
	got := Segment("100. General\n   \n\n")
	require.Len(t, got, 1)
	assert.Equal(t, "100. General", got[0].Text)
}
