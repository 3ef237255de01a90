// Package report declares reduced views over the parser's output. The
// conversion code in the *_subview.go files is generated; regenerate with:
//
//	go run subview-generator/cmd/subview-generator -pkg ./report
package report

import (
	"time"

	"subview-generator/parser"
)

// Index is the slice of a document needed for search indexing. Every field
// is mandatory in the source, so the conversion cannot fail.
//
//subview:from_type=parser.Document
type Index struct {
	Path     string
	Body     string
	Headings []parser.Heading
}

// Summary is the rendered-summary input. It requires the optional header
// metadata to actually be present.
//
//subview:from_type=parser.Document unpack=true
type Summary struct {
	Body     string `subview:"unpack=false"`
	Title    string
	Modified time.Time
	Sum      uint32 `subview:"rename_from=Checksum"`
}

// Excerpt keeps pointers into the parsed document instead of copying the
// header values out of it. The document must outlive the excerpt.
//
//subview:from_type=parser.Document unpack=true make_refs=true
type Excerpt struct {
	Body  *string `subview:"unpack=false"`
	Title *string
	Sum   *uint32 `subview:"rename_from=Checksum"`
}

// Received is a trimmed view of a decoded envelope with the metadata type
// fixed to the route tag used on this side.
//
//subview:from_type="parser.Envelope<#T, uint32>"
type Received[T any] struct {
	Payload T
	Meta    uint32
	Seq     uint64
}
