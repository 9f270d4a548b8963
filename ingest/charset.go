package ingest

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/gmltools/gml"
)

// charsetReader decodes a document whose XML declaration names a non-UTF-8
// encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := lookupEncoding(label)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(input), nil
}

func lookupEncoding(label string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil || enc == nil {
		return nil, errors.Wrapf(ErrUnsupportedCharset, "%q", label)
	}
	return enc, nil
}

// toUTF8 transcodes documents that are neither valid UTF-8 nor declare an
// encoding. The charset is guessed with a text detector; when the guess has
// no decoder, Windows-1252 is assumed since GML coordinates are ASCII and
// any stray bytes live in free-text header fields.
func toUTF8(b []byte) ([]byte, error) {
	if utf8.Valid(b) || declaresEncoding(b) {
		return b, nil
	}

	charset := ""
	if res, err := chardet.NewTextDetector().DetectBest(b); err == nil {
		charset = res.Charset
	}
	enc, err := lookupEncoding(charset)
	if err != nil {
		enc = charmap.Windows1252
	}

	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return nil, errors.Wrapf(err, "ingest: transcode from %s", charset)
	}
	gml.Logger().Debug("ingest: transcoded undeclared charset", "detected", charset)
	return out, nil
}

// declaresEncoding reports whether b starts with an XML declaration that
// carries an encoding attribute.
func declaresEncoding(b []byte) bool {
	b = bytes.TrimLeft(b, " \t\r\n")
	if !bytes.HasPrefix(b, []byte("<?xml")) {
		return false
	}
	end := bytes.Index(b, []byte("?>"))
	if end < 0 {
		return false
	}
	return bytes.Contains(b[:end], []byte("encoding"))
}
