// Package ingest reads Graffiti Markup Language (GML) documents into gml
// tags.
//
// Every <stroke> element becomes one stroke, in document order. Each <pt>
// child contributes an (x, y, t) point read from its <x>, <y> and optional
// <t> elements; a missing time is 0. Older files spell the time element
// <time>, which is accepted as well.
package ingest

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/gmltools/gml"
)

type xmlStroke struct {
	Points []xmlPoint `xml:"pt"`
}

type xmlPoint struct {
	X    *string `xml:"x"`
	Y    *string `xml:"y"`
	T    *string `xml:"t"`
	Time *string `xml:"time"`
}

// Decode reads one GML document from r.
func Decode(r io.Reader) (gml.Tag, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return gml.Tag{}, errors.Wrap(err, "ingest: read")
	}
	return DecodeBytes(b)
}

// DecodeBytes parses one GML document.
//
// Documents that declare their encoding are decoded through the IANA
// charset registry. Documents without a declaration that are not valid
// UTF-8 are transcoded from a detected charset first.
func DecodeBytes(b []byte) (gml.Tag, error) {
	b, err := toUTF8(b)
	if err != nil {
		return gml.Tag{}, err
	}

	var charsetErr error
	dec := xml.NewDecoder(bytes.NewReader(b))
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		r, err := charsetReader(label, input)
		charsetErr = err
		return r, err
	}

	var strokes []gml.Stroke
	sawElement := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if charsetErr != nil {
				return gml.Tag{}, charsetErr
			}
			return gml.Tag{}, errors.Wrap(err, "ingest: decode")
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if se.Name.Local != "stroke" {
			continue
		}

		var xs xmlStroke
		if err := dec.DecodeElement(&xs, &se); err != nil {
			return gml.Tag{}, errors.Wrapf(err, "ingest: stroke %d", len(strokes))
		}
		s, err := xs.stroke(len(strokes))
		if err != nil {
			return gml.Tag{}, err
		}
		strokes = append(strokes, s)
	}

	if !sawElement {
		return gml.Tag{}, ErrNoDocument
	}
	return gml.NewTag(strokes...), nil
}

func (xs xmlStroke) stroke(index int) (gml.Stroke, error) {
	triples := make([][]float64, 0, len(xs.Points))
	for i, p := range xs.Points {
		x, err := parseCoordinate(p.X, "x")
		if err != nil {
			return gml.Stroke{}, errors.Wrapf(err, "ingest: stroke %d point %d", index, i)
		}
		y, err := parseCoordinate(p.Y, "y")
		if err != nil {
			return gml.Stroke{}, errors.Wrapf(err, "ingest: stroke %d point %d", index, i)
		}
		t, err := parseTime(p)
		if err != nil {
			return gml.Stroke{}, errors.Wrapf(err, "ingest: stroke %d point %d", index, i)
		}
		triples = append(triples, []float64{x, y, t})
	}
	return gml.StrokeFromTriples(triples)
}

func parseCoordinate(v *string, name string) (float64, error) {
	if v == nil {
		return 0, errors.Wrapf(ErrMissingCoordinate, "<%s>", name)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "<%s>", name)
	}
	return f, nil
}

func parseTime(p xmlPoint) (float64, error) {
	v := p.T
	if v == nil {
		v = p.Time
	}
	if v == nil {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*v), 64)
	if err != nil {
		return 0, errors.Wrap(err, "<t>")
	}
	return f, nil
}
