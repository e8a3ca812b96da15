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

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMultiEpisodeSingleEpisode(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Show.srt",
		"00:00:01.000, 00:00:02.000, line one\n"+
			"00:00:03.000, 00:00:04.000, line two\n")

	offsets := Offsets{"Show": 0}
	logger := log.New(os.Stderr, "", 0)

	episodes, err := loadMultiEpisode(path, offsets, logger)
	require.NoError(t, err)
	require.Len(t, episodes, 1)
	assert.Equal(t, "Show", episodes[0].Name)
	require.Len(t, episodes[0].Subtitles, 2)
	assert.Equal(t, "line one", episodes[0].Subtitles[0].Text)
}

func TestLoadMultiEpisodeSplitsByOffset(t *testing.T) {
	dir := t.TempDir()
	// Two episodes concatenated in one file: "A" starts at 0, "B" at 10s.
	path := writeFile(t, dir, "A - B.srt",
		"00:00:01.000, 00:00:02.000, a-line\n"+
			"00:00:11.000, 00:00:12.000, b-line\n")

	offsets := Offsets{"A": 0, "B": 10 * time.Second}
	logger := log.New(os.Stderr, "", 0)

	episodes, err := loadMultiEpisode(path, offsets, logger)
	require.NoError(t, err)
	require.Len(t, episodes, 2)

	assert.Equal(t, "A", episodes[0].Name)
	require.Len(t, episodes[0].Subtitles, 1)
	assert.Equal(t, "a-line", episodes[0].Subtitles[0].Text)
	assert.Equal(t, time.Second, episodes[0].Subtitles[0].TimeBegin)

	assert.Equal(t, "B", episodes[1].Name)
	require.Len(t, episodes[1].Subtitles, 1)
	assert.Equal(t, "b-line", episodes[1].Subtitles[0].Text)
	assert.Equal(t, time.Second, episodes[1].Subtitles[0].TimeBegin)
}

func TestLoadMultiEpisodeMissingOffsetErrors(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "Unknown.srt", "00:00:01.000, 00:00:02.000, x\n")

	logger := log.New(os.Stderr, "", 0)
	_, err := loadMultiEpisode(path, Offsets{}, logger)
	assert.Error(t, err)
}

func TestLoadEpisodesBuildsIndexes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "Show.srt", "00:00:01.000, 00:00:02.000, hello world\n")

	offsets := Offsets{"Show": 0}
	logger := log.New(os.Stderr, "", 0)

	corpus, err := loadEpisodes(dir, offsets, logger)
	require.NoError(t, err)
	require.Len(t, corpus.Episodes, 1)

	found := corpus.NameIndex.Get("Show")
	require.Len(t, found, 1)
	assert.Equal(t, "Show", found[0].(*Episode).Name)
}
