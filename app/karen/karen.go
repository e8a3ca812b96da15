package karen

import (
	"log"
	"os"
	"time"

	"github.com/PJBoy/karen/app/karen/index"
)

// Load returns the corpus for subtitlesDirectory, decoding it from
// cachePath when that cache is present, checksum-valid, and at least as
// fresh as the directory itself; otherwise it re-parses the directory with
// loadEpisodes and, when cachePath is set, writes a fresh cache for next
// time. rebuildCache forces the re-parse even when a valid cache exists.
func Load(subtitlesDirectory string, offsets Offsets, cachePath string, rebuildCache bool, logger *log.Logger) (*Corpus, error) {
	dirInfo, err := os.Stat(subtitlesDirectory)
	if err != nil {
		return nil, err
	}

	if cachePath != "" && !rebuildCache {
		if corpus, ok := tryLoadCache(cachePath, dirInfo.ModTime(), logger); ok {
			return corpus, nil
		}
	}

	corpus, err := loadEpisodes(subtitlesDirectory, offsets, logger)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if err := SaveCache(cachePath, corpus, dirInfo.ModTime()); err != nil {
			logger.Printf("failed to write cache %s: %v", cachePath, err)
		}
	}

	return corpus, nil
}

// tryLoadCache attempts to decode cachePath, reporting ok=false (never an
// error) whenever the cache can't be trusted, so the caller always falls
// back to a full parse rather than failing the run over a stale cache. The
// cache stores only the parsed episodes, not which file produced each, so
// a cache-loaded corpus gets a populated NameIndex but an empty PathIndex.
func tryLoadCache(cachePath string, dirModTime time.Time, logger *log.Logger) (*Corpus, bool) {
	if _, err := os.Stat(cachePath); err != nil {
		return nil, false
	}

	corpus, cachedModTime, err := LoadCache(cachePath)
	if err != nil {
		logger.Printf("ignoring cache %s: %v", cachePath, err)
		return nil, false
	}
	if cachedModTime.Before(dirModTime) {
		logger.Printf("ignoring stale cache %s", cachePath)
		return nil, false
	}

	corpus.NameIndex = index.NewNameIndex()
	corpus.PathIndex = index.NewPathIndex()
	for i := range corpus.Episodes {
		corpus.NameIndex.Insert(corpus.Episodes[i].Name, &corpus.Episodes[i])
	}

	return corpus, true
}
