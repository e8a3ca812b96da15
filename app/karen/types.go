// Package karen loads a corpus of timestamped subtitle episodes and serves
// interactive approximate-text queries against it using the kmismatch core.
package karen

import "time"

// Subtitle is one timed line of dialogue.
type Subtitle struct {
	TimeBegin time.Duration
	TimeEnd   time.Duration
	Text      string
}

// Episode is a named run of subtitles sharing one playback timeline,
// possibly assembled from several on-disk subtitle files.
type Episode struct {
	Name      string
	Subtitles []Subtitle
}

// EpisodeNameAndOffset pairs an episode name parsed from a multi-episode
// subtitle file's stem with the millisecond offset at which it begins.
type EpisodeNameAndOffset struct {
	Name   string
	Offset time.Duration
}

// Offsets maps an episode name to the offset applied to align its subtitle
// file's timestamps with that episode's own playback timeline.
type Offsets map[string]time.Duration
