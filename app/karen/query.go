package karen

import (
	"bufio"
	"io"
	"log"
	"sort"

	"github.com/PJBoy/karen/app/karen/kmismatch"
)

// scoreDivisor is the original's fixed normalization constant for turning
// a mismatch count into a 0..1 score; it is not derived from k or |query|.
const scoreDivisor = 17

// result is one subtitle line that matched a query within tolerance.
type result struct {
	episodeName string
	subtitle    Subtitle
	mismatches  uint32
}

// searchCorpus runs query against every subtitle line in corpus with
// tolerance k = |query| / 4, returning every match sorted by ascending
// mismatch count (ties keep corpus order, i.e. episode-then-subtitle
// order, since sort.SliceStable is used).
func searchCorpus(corpus *Corpus, query string) []result {
	k := uint32(len(query) / 4)
	q := []byte(query)

	var results []result
	for _, episode := range corpus.Episodes {
		for _, subtitle := range episode.Subtitles {
			m := kmismatch.MinKangaroo(k, q, []byte(subtitle.Text))
			if !m.Ok() {
				continue
			}
			results = append(results, result{
				episodeName: episode.Name,
				subtitle:    subtitle,
				mismatches:  m.Count(),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].mismatches < results[j].mismatches
	})
	return results
}

// RunQueryLoop reads one query per line from r until EOF, writing the
// formatted results of each to w. Each block is a count line followed by
// one score/episodeName/subtitle-line group per match, blank-line
// terminated, matching §6's external interface.
func RunQueryLoop(r io.Reader, w io.Writer, corpus *Corpus, logger *log.Logger) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for scanner.Scan() {
		query := scanner.Text()
		if query == "" {
			continue
		}

		results := searchCorpus(corpus, query)
		if err := writeResults(out, results); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}

	return scanner.Err()
}
