package edgelist

import "errors"

// Edge is a single directed arc read from the input.
type Edge struct {
	Source uint64
	Target uint64
}

// LineSource yields lines of text. *LineReader and *bufio.Scanner satisfy it.
type LineSource interface {
	Scan() bool
	Text() string
	Err() error
}

// Result holds the edges parsed from a line source, in input order.
type Result struct {
	Edges   []Edge
	Lines   int // total lines read, including skipped ones
	Skipped int // malformed lines that were ignored
	Digest  string
}

// Compression selects how raw input bytes are decoded.
type Compression string

const (
	CompressionAuto   Compression = "auto"
	CompressionNone   Compression = "none"
	CompressionSnappy Compression = "snappy"
)

// Source describes where the edge list lives and how to read it.
type Source struct {
	URI         string // local path or s3://bucket/key
	Compression Compression
	UseMmap     bool
	S3Region    string
}

var (
	// ErrInputUnavailable is returned when the input cannot be opened or read.
	ErrInputUnavailable = errors.New("edgelist: input unavailable")

	// ErrUnsupportedScheme is returned for URIs with an unknown scheme.
	ErrUnsupportedScheme = errors.New("edgelist: unsupported uri scheme")
)

// MaxLineSize is the longest line parsed. Longer lines are skipped.
const MaxLineSize = 1 << 20
