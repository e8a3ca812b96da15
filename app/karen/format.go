package karen

import (
	"bufio"
	"fmt"
)

// score converts a mismatch count into the query loop's 0..1 relevance
// score. The divisor is the original's fixed constant, not derived from k
// or the query length.
func score(mismatches uint32) float64 {
	return 1 - float64(mismatches)/scoreDivisor
}

// writeResults writes one query's results as a count line followed by a
// score/episodeName/subtitle-line group per match, each group terminated
// by a blank line, per §6's external interface.
func writeResults(w *bufio.Writer, results []result) error {
	if _, err := fmt.Fprintln(w, len(results)); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%v\n%s\n%d, %d, %s\n\n",
			score(r.mismatches),
			r.episodeName,
			r.subtitle.TimeBegin.Milliseconds(),
			r.subtitle.TimeEnd.Milliseconds(),
			r.subtitle.Text,
		); err != nil {
			return err
		}
	}

	return nil
}
