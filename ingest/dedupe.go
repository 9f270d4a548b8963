package ingest

import "github.com/gmltools/gml"

// Dedupe drops documents whose tag is structurally equal to the tag of an
// earlier document. The first occurrence is kept and order is preserved.
func Dedupe(docs []Document) []Document {
	seen := make(map[uint64][]int, len(docs))
	out := make([]Document, 0, len(docs))

next:
	for _, doc := range docs {
		h := doc.Tag.Hash()
		for _, i := range seen[h] {
			if out[i].Tag.Equal(doc.Tag) {
				gml.Logger().Debug("ingest: duplicate tag", "path", doc.Path, "first", out[i].Path)
				continue next
			}
		}
		seen[h] = append(seen[h], len(out))
		out = append(out, doc)
	}
	return out
}
