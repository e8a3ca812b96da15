package karen

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PJBoy/karen/app/karen/index"
)

// pairEpisodeNameAndOffsets looks up each name's offset, failing if the
// offsets file never named one of the episodes a filename stem implies.
func pairEpisodeNameAndOffsets(names []string, offsets Offsets) ([]EpisodeNameAndOffset, error) {
	paired := make([]EpisodeNameAndOffset, 0, len(names))
	for _, name := range names {
		offset, ok := offsets[name]
		if !ok {
			return nil, fmt.Errorf("karen: no offset recorded for episode %q", name)
		}
		paired = append(paired, EpisodeNameAndOffset{Name: name, Offset: offset})
	}
	return paired, nil
}

// loadMultiEpisode splits a single subtitle file into one Episode per
// "A - B - C"-style stem segment, walking its subtitles from the latest
// to the earliest and cutting a new episode every time a subtitle's begin
// time falls before the current episode's start offset.
func loadMultiEpisode(subtitlePath string, offsets Offsets, logger *log.Logger) ([]Episode, error) {
	stem := strings.TrimSuffix(filepath.Base(subtitlePath), filepath.Ext(subtitlePath))
	logger.Printf("loading episodes: %s", stem)

	names := strings.Split(stem, " - ")
	pairs, err := pairEpisodeNameAndOffsets(names, offsets)
	if err != nil {
		return nil, err
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Offset < pairs[j].Offset })

	subtitles, err := loadSubtitles(subtitlePath, logger)
	if err != nil {
		return nil, err
	}

	// pairIdx walks from the last (latest-starting) episode backward.
	pairIdx := len(pairs) - 1
	episode := Episode{Name: pairs[pairIdx].Name}
	var episodesReversed []Episode

	for i := len(subtitles) - 1; i >= 0; i-- {
		s := subtitles[i]
		// A single boundary check per subtitle, not a cascade: matches the
		// original's "if", not "while" — an episode boundary with no
		// subtitles of its own is silently absorbed into its neighbor.
		if s.TimeBegin < pairs[pairIdx].Offset {
			pairIdx--
			if pairIdx < 0 {
				// subtitles remain before the earliest episode's offset;
				// the original source drops them rather than guessing
				// which preceding episode they belong to.
				break
			}
			episodesReversed = append(episodesReversed, episode)
			episode = Episode{Name: pairs[pairIdx].Name}
		}

		offset := pairs[pairIdx].Offset
		episode.Subtitles = append([]Subtitle{{
			TimeBegin: s.TimeBegin - offset,
			TimeEnd:   s.TimeEnd - offset,
			Text:      s.Text,
		}}, episode.Subtitles...)
	}

	episodesReversed = append(episodesReversed, episode)

	episodes := make([]Episode, len(episodesReversed))
	for i, e := range episodesReversed {
		episodes[len(episodesReversed)-1-i] = e
	}
	return episodes, nil
}

// Corpus is the loaded set of episodes plus the indexes built over them.
type Corpus struct {
	Episodes  []Episode
	NameIndex *index.NameIndex
	PathIndex *index.PathIndex
}

// loadEpisodes walks subtitlesDirectory non-recursively, splitting every
// file it finds into episodes via loadMultiEpisode, and builds the name
// and path indexes over the result.
func loadEpisodes(subtitlesDirectory string, offsets Offsets, logger *log.Logger) (*Corpus, error) {
	entries, err := os.ReadDir(subtitlesDirectory)
	if err != nil {
		return nil, err
	}

	corpus := &Corpus{
		NameIndex: index.NewNameIndex(),
		PathIndex: index.NewPathIndex(),
	}

	pathEpisodeCounts := make(map[string]int)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(subtitlesDirectory, entry.Name())
		episodes, err := loadMultiEpisode(path, offsets, logger)
		if err != nil {
			logger.Printf("skipping %s: %v", path, err)
			continue
		}

		corpus.Episodes = append(corpus.Episodes, episodes...)
		pathEpisodeCounts[path] = len(episodes)
	}

	// Indexes are built in a second pass, once corpus.Episodes has stopped
	// growing, so every &corpus.Episodes[i] taken below stays valid.
	offset := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(subtitlesDirectory, entry.Name())
		n, ok := pathEpisodeCounts[path]
		if !ok {
			continue
		}

		slice := corpus.Episodes[offset : offset+n]
		for i := range slice {
			corpus.NameIndex.Insert(slice[i].Name, &slice[i])
		}
		corpus.PathIndex.Insert(path, slice)
		offset += n
	}

	return corpus, nil
}
