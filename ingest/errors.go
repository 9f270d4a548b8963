package ingest

import "github.com/pkg/errors"

// Sentinel errors for ingest package.
var (
	// ErrNoDocument is returned when the input holds no XML element at all.
	ErrNoDocument = errors.New("ingest: no GML document")

	// ErrMissingCoordinate is returned when a <pt> lacks <x> or <y>.
	ErrMissingCoordinate = errors.New("ingest: point is missing a coordinate")

	// ErrUnsupportedCharset is returned when a document declares an encoding
	// that cannot be decoded.
	ErrUnsupportedCharset = errors.New("ingest: unsupported charset")
)
