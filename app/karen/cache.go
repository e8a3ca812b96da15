package karen

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"time"

	"github.com/PJBoy/karen/app/karen/crc64"
	lzf "github.com/zhuyie/golzf"
)

// Cache opcodes, in the spirit of the teacher's RDB opcodes: a typed byte
// precedes every record, with a dedicated terminator opcode instead of
// relying on EOF.
const (
	opCodeEpisode  byte = 1
	opCodeSubtitle byte = 2
	opCodeEOF      byte = 255
)

const cacheMagic = "KARENCACHE"

// encoding flags for a subtitle's text payload.
const (
	textRaw        byte = 0
	textCompressed byte = 1
)

// SaveCache writes corpus to filepath in the adapted RDB-like format:
// magic, the subtitles directory's modification time, one opcode-tagged
// record per episode and subtitle, an EOF opcode, and a trailing CRC-64
// checksum of everything written before it.
func SaveCache(filepath string, corpus *Corpus, subtitlesDirModTime time.Time) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	hash := crc64.New()
	w := bufio.NewWriter(io.MultiWriter(file, hash))

	if _, err := w.WriteString(cacheMagic); err != nil {
		return err
	}
	if err := writeInt64(w, subtitlesDirModTime.UnixNano()); err != nil {
		return err
	}

	for _, episode := range corpus.Episodes {
		if err := writeEpisode(w, episode); err != nil {
			return err
		}
	}

	if err := w.WriteByte(opCodeEOF); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	return binary.Write(file, binary.LittleEndian, hash.Sum64())
}

func writeEpisode(w *bufio.Writer, episode Episode) error {
	if err := w.WriteByte(opCodeEpisode); err != nil {
		return err
	}
	if err := writeString(w, episode.Name); err != nil {
		return err
	}
	if err := writeInt64(w, int64(len(episode.Subtitles))); err != nil {
		return err
	}
	for _, subtitle := range episode.Subtitles {
		if err := writeSubtitle(w, subtitle); err != nil {
			return err
		}
	}
	return nil
}

func writeSubtitle(w *bufio.Writer, subtitle Subtitle) error {
	if err := w.WriteByte(opCodeSubtitle); err != nil {
		return err
	}
	if err := writeInt64(w, int64(subtitle.TimeBegin)); err != nil {
		return err
	}
	if err := writeInt64(w, int64(subtitle.TimeEnd)); err != nil {
		return err
	}
	return writeCompressedString(w, subtitle.Text)
}

func writeInt64(w *bufio.Writer, v int64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func writeString(w *bufio.Writer, s string) error {
	if err := writeInt64(w, int64(len(s))); err != nil {
		return err
	}
	_, err := w.WriteString(s)
	return err
}

// writeCompressedString LZF-compresses s, falling back to storing it raw
// when the payload is too small or incompressible to benefit (golzf
// reports this via an error on its output buffer), exactly as the teacher
// only ever reads compressed strings optimistically and never requires
// every string to be compressed.
func writeCompressedString(w *bufio.Writer, s string) error {
	in := []byte(s)
	out := make([]byte, len(in))
	n, err := lzf.Compress(in, out)
	if err != nil || n == 0 {
		if err := w.WriteByte(textRaw); err != nil {
			return err
		}
		return writeString(w, s)
	}

	if err := w.WriteByte(textCompressed); err != nil {
		return err
	}
	if err := writeInt64(w, int64(n)); err != nil {
		return err
	}
	if err := writeInt64(w, int64(len(in))); err != nil {
		return err
	}
	_, err = w.Write(out[:n])
	return err
}

// LoadCache reads back a file written by SaveCache, verifying its trailing
// checksum before trusting any of it.
func LoadCache(filepath string) (*Corpus, time.Time, error) {
	raw, err := os.ReadFile(filepath)
	if err != nil {
		return nil, time.Time{}, err
	}
	if len(raw) < 8 {
		return nil, time.Time{}, errors.New("karen: cache file too short")
	}

	body, trailer := raw[:len(raw)-8], raw[len(raw)-8:]
	hash := crc64.New()
	hash.Write(body)
	if hash.Sum64() != binary.LittleEndian.Uint64(trailer) {
		return nil, time.Time{}, errors.New("karen: cache checksum mismatch")
	}

	r := bufio.NewReader(bytes.NewReader(body))

	magic := make([]byte, len(cacheMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, time.Time{}, err
	}
	if string(magic) != cacheMagic {
		return nil, time.Time{}, errors.New("karen: not a karen cache file")
	}

	modNanos, err := readInt64(r)
	if err != nil {
		return nil, time.Time{}, err
	}
	modTime := time.Unix(0, modNanos)

	corpus := &Corpus{}
	for {
		opCode, err := r.ReadByte()
		if err != nil {
			return nil, time.Time{}, err
		}
		if opCode == opCodeEOF {
			break
		}
		if opCode != opCodeEpisode {
			return nil, time.Time{}, errors.New("karen: corrupt cache: expected episode opcode")
		}

		episode, err := readEpisode(r)
		if err != nil {
			return nil, time.Time{}, err
		}
		corpus.Episodes = append(corpus.Episodes, episode)
	}

	return corpus, modTime, nil
}

func readEpisode(r *bufio.Reader) (Episode, error) {
	name, err := readString(r)
	if err != nil {
		return Episode{}, err
	}
	count, err := readInt64(r)
	if err != nil {
		return Episode{}, err
	}

	episode := Episode{Name: name, Subtitles: make([]Subtitle, 0, count)}
	for i := int64(0); i < count; i++ {
		opCode, err := r.ReadByte()
		if err != nil {
			return Episode{}, err
		}
		if opCode != opCodeSubtitle {
			return Episode{}, errors.New("karen: corrupt cache: expected subtitle opcode")
		}

		subtitle, err := readSubtitle(r)
		if err != nil {
			return Episode{}, err
		}
		episode.Subtitles = append(episode.Subtitles, subtitle)
	}

	return episode, nil
}

func readSubtitle(r *bufio.Reader) (Subtitle, error) {
	begin, err := readInt64(r)
	if err != nil {
		return Subtitle{}, err
	}
	end, err := readInt64(r)
	if err != nil {
		return Subtitle{}, err
	}
	text, err := readCompressedString(r)
	if err != nil {
		return Subtitle{}, err
	}

	return Subtitle{
		TimeBegin: time.Duration(begin),
		TimeEnd:   time.Duration(end),
		Text:      text,
	}, nil
}

func readInt64(r *bufio.Reader) (int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func readString(r *bufio.Reader) (string, error) {
	n, err := readInt64(r)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func readCompressedString(r *bufio.Reader) (string, error) {
	encoding, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	if encoding == textRaw {
		return readString(r)
	}

	compressedLen, err := readInt64(r)
	if err != nil {
		return "", err
	}
	uncompressedLen, err := readInt64(r)
	if err != nil {
		return "", err
	}

	compressed := make([]byte, compressedLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return "", err
	}

	out := make([]byte, uncompressedLen)
	n, err := lzf.Decompress(compressed, out)
	if err != nil {
		return "", err
	}
	return string(out[:n]), nil
}
