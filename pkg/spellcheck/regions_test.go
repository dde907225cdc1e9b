package spellcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLanguage(t *testing.T, name string) Language {
	t.Helper()
	lang, found := GetLanguageByName(name)
	require.True(t, found)
	return lang
}

func TestScanLineCommentAndString(t *testing.T) {
	s := newRegionScanner(mustLanguage(t, "Go"))

	regions := s.scanLine(`x := "hello world" // trailing note`)
	require.Len(t, regions, 4)

	assert.Equal(t, regionCode, regions[0].kind)
	assert.Equal(t, `x := `, regions[0].text)

	assert.Equal(t, regionString, regions[1].kind)
	assert.Equal(t, "hello world", regions[1].text)
	assert.Equal(t, 6, regions[1].col)

	assert.Equal(t, regionCode, regions[2].kind)

	assert.Equal(t, regionComment, regions[3].kind)
	assert.Equal(t, " trailing note", regions[3].text)
}

func TestScanLineBlockCommentSpansLines(t *testing.T) {
	s := newRegionScanner(mustLanguage(t, "Go"))

	regions := s.scanLine("start /* first part")
	require.Len(t, regions, 2)
	assert.Equal(t, regionCode, regions[0].kind)
	assert.Equal(t, regionComment, regions[1].kind)
	assert.Equal(t, " first part", regions[1].text)

	regions = s.scanLine("middle of comment")
	require.Len(t, regions, 1)
	assert.Equal(t, regionComment, regions[0].kind)

	regions = s.scanLine("end */ x := 1")
	require.Len(t, regions, 2)
	assert.Equal(t, regionComment, regions[0].kind)
	assert.Equal(t, "end ", regions[0].text)
	assert.Equal(t, regionCode, regions[1].kind)
	assert.Equal(t, " x := 1", regions[1].text)
}

func TestScanLineCommentMarkerInsideString(t *testing.T) {
	s := newRegionScanner(mustLanguage(t, "Go"))

	regions := s.scanLine(`url := "https://example.com"`)
	require.Len(t, regions, 2)
	assert.Equal(t, regionString, regions[1].kind)
	assert.Equal(t, "https://example.com", regions[1].text)
}

func TestScanLineEscapedQuote(t *testing.T) {
	s := newRegionScanner(mustLanguage(t, "Go"))

	regions := s.scanLine(`msg := "say \"hi\" now" // done`)
	require.Len(t, regions, 4)
	assert.Equal(t, regionString, regions[1].kind)
	assert.Equal(t, `say \"hi\" now`, regions[1].text)
	assert.Equal(t, regionComment, regions[3].kind)
}

func TestScanLineVerbatimString(t *testing.T) {
	s := newRegionScanner(mustLanguage(t, "C#"))

	regions := s.scanLine(`var p = @"C:\temp\file";`)
	require.Len(t, regions, 3)
	assert.Equal(t, regionString, regions[1].kind)
	assert.Equal(t, `C:\temp\file`, regions[1].text)
}

func TestScanLinePythonHashComment(t *testing.T) {
	s := newRegionScanner(mustLanguage(t, "Python"))

	regions := s.scanLine("x = 1  # the answer")
	require.Len(t, regions, 2)
	assert.Equal(t, regionComment, regions[1].kind)
	assert.Equal(t, " the answer", regions[1].text)
}

func TestScanLineUnterminatedString(t *testing.T) {
	s := newRegionScanner(mustLanguage(t, "Go"))

	regions := s.scanLine(`x := "never closed`)
	require.Len(t, regions, 2)
	assert.Equal(t, regionString, regions[1].kind)
	assert.Equal(t, "never closed", regions[1].text)
}
