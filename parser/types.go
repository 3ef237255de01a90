package parser

import (
	"time"
)

// Document is the full output of a markup parse. Most metadata is optional
// because the underlying format makes every header line optional; consumers
// that require specific metadata declare a subview over this type.
type Document struct {
	Path     string
	Body     string
	Headings []Heading
	Raw      []byte

	// Optional header metadata.
	Title    *string
	Author   *string
	Modified *time.Time
	Checksum *uint32
}

// Heading is one section heading found in the body.
type Heading struct {
	Level  int
	Text   string
	Anchor *string
}

// Envelope pairs a decoded payload with transport metadata. The payload and
// metadata types are generic so one decoder serves every message family.
type Envelope[T any, M any] struct {
	Payload T
	Meta    M
	Seq     uint64

	// Trace is set only when the peer sent a trace header.
	Trace *string
}
