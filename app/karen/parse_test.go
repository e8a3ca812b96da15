package karen

import (
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTime(t *testing.T) {
	d, err := loadTime("01:02:03.456")
	require.NoError(t, err)
	want := time.Hour + 2*time.Minute + 3*time.Second + 456*time.Millisecond
	assert.Equal(t, want, d)
}

func TestLoadTimeMalformed(t *testing.T) {
	_, err := loadTime("not-a-time")
	assert.Error(t, err)
}

func TestLoadSubtitle(t *testing.T) {
	s, err := loadSubtitle("00:00:01.000, 00:00:02.500, hello there")
	require.NoError(t, err)
	assert.Equal(t, time.Second, s.TimeBegin)
	assert.Equal(t, 2500*time.Millisecond, s.TimeEnd)
	assert.Equal(t, "hello there", s.Text)
}

func TestLoadSubtitleSkipsLeadingSpaceInText(t *testing.T) {
	s, err := loadSubtitle("00:00:01.000, 00:00:02.000,    padded")
	require.NoError(t, err)
	assert.Equal(t, "padded", s.Text)
}

func TestLoadSubtitlesSkipsBlankAndMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ep.srt")
	content := "00:00:01.000, 00:00:02.000, first\n\ngarbage line\n00:00:03.000, 00:00:04.000, second\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	logger := log.New(os.Stderr, "", 0)
	subtitles, err := loadSubtitles(path, logger)
	require.NoError(t, err)
	require.Len(t, subtitles, 2)
	assert.Equal(t, "first", subtitles[0].Text)
	assert.Equal(t, "second", subtitles[1].Text)
}

func TestLoadOffsets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offsets.txt")
	require.NoError(t, os.WriteFile(path, []byte("Show A: 1000\nShow B: -500\n"), 0o644))

	offsets, err := LoadOffsets(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, offsets["Show A"])
	assert.Equal(t, -500*time.Millisecond, offsets["Show B"])
}

func TestLoadOffsetsMalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "offsets.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a valid line\n"), 0o644))

	_, err := LoadOffsets(path)
	assert.Error(t, err)
}
