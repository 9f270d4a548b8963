package features

import (
	"fmt"
	"testing"

	"github.com/gmltools/gml"
	"github.com/gmltools/gml/ingest"
)

func TestExtractor_ExtractAll(t *testing.T) {
	docs := make([]ingest.Document, 40)
	for i := range docs {
		n := float64(i + 1)
		docs[i] = ingest.Document{
			Path: fmt.Sprintf("tag-%02d.gml", i),
			Tag:  gml.NewTag(gml.NewStroke(gml.TPt(0, 0, 0), gml.TPt(n, 0, n))),
		}
	}

	e := NewExtractor(4)
	defer e.Close()

	if e.Workers() != 4 {
		t.Errorf("Workers = %d, want 4", e.Workers())
	}

	sets := e.ExtractAll(docs)
	if len(sets) != len(docs) {
		t.Fatalf("len(sets) = %d, want %d", len(sets), len(docs))
	}
	for i, s := range sets {
		if s.Name != docs[i].Path {
			t.Errorf("sets[%d].Name = %s, want %s", i, s.Name, docs[i].Path)
		}
		if want := float64(i + 1); s.ArcLength != want || s.Duration != want {
			t.Errorf("sets[%d] = (arc %v, duration %v), want %v", i, s.ArcLength, s.Duration, want)
		}
	}
}

func TestExtractor_MatchesExtract(t *testing.T) {
	docs := []ingest.Document{{Path: "square", Tag: squareTag()}}

	e := NewExtractor(1, WithNormalization(), WithSmoothing())
	defer e.Close()

	got := e.ExtractAll(docs)[0]
	want := Extract("square", squareTag(), WithNormalization(), WithSmoothing())
	if fmt.Sprint(got.Record()) != fmt.Sprint(want.Record()) {
		t.Errorf("ExtractAll = %v, want %v", got.Record(), want.Record())
	}
}

func TestExtractor_Empty(t *testing.T) {
	e := NewExtractor(2)
	defer e.Close()

	if sets := e.ExtractAll(nil); len(sets) != 0 {
		t.Errorf("ExtractAll(nil) = %v, want empty", sets)
	}
}
