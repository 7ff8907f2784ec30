package pedigree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kintree/pkg/errors"
)

// =============================================================================
// File Format
// =============================================================================

type file struct {
	Individuals []fileIndividual `json:"individuals" toml:"individuals"`
	Relations   []fileRelation   `json:"relations,omitempty" toml:"relations,omitempty"`
	Hints       *fileHints       `json:"hints,omitempty" toml:"hints,omitempty"`
}

type fileIndividual struct {
	ID     string `json:"id" toml:"id"`
	Sex    string `json:"sex,omitempty" toml:"sex,omitempty"`
	Mother string `json:"mother,omitempty" toml:"mother,omitempty"`
	Father string `json:"father,omitempty" toml:"father,omitempty"`
}

type fileRelation struct {
	ID1  string `json:"id1" toml:"id1"`
	ID2  string `json:"id2" toml:"id2"`
	Code int    `json:"code" toml:"code"`
}

type fileHints struct {
	Order  []int        `json:"order" toml:"order"`
	Spouse []fileSpouse `json:"spouse,omitempty" toml:"spouse,omitempty"`
}

type fileSpouse struct {
	Left   string `json:"left" toml:"left"`
	Right  string `json:"right" toml:"right"`
	Anchor int    `json:"anchor" toml:"anchor"`
}

// =============================================================================
// Reading
// =============================================================================

// ReadJSON decodes a JSON pedigree from r.
//
// Each individual must have an "id"; "sex" defaults to unknown and
// "mother"/"father" reference other individuals by id. ReadJSON returns an
// error if the JSON is malformed or the pedigree fails validation. It does
// not close r.
func ReadJSON(r io.Reader) (*Pedigree, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode JSON pedigree")
	}
	return f.build()
}

// ReadTOML decodes a TOML pedigree from r. The document uses the same
// fields as the JSON format, with [[individuals]] and [[relations]] tables.
func ReadTOML(r io.Reader) (*Pedigree, error) {
	var f file
	if _, err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode TOML pedigree")
	}
	return f.build()
}

// ReadFile loads a pedigree from path, choosing the decoder by extension
// (".toml" for TOML, anything else for JSON).
func ReadFile(path string) (*Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

func (f *file) build() (*Pedigree, error) {
	b := NewBuilder()
	for _, fi := range f.Individuals {
		sex, err := ParseSex(fi.Sex)
		if err != nil {
			return nil, fmt.Errorf("individual %q: %w", fi.ID, err)
		}
		if err := b.Add(fi.ID, sex, fi.Mother, fi.Father); err != nil {
			return nil, err
		}
	}
	for _, fr := range f.Relations {
		b.Relate(fr.ID1, fr.ID2, RelationCode(fr.Code))
	}
	if f.Hints != nil {
		b.SetOrder(f.Hints.Order)
		for _, s := range f.Hints.Spouse {
			b.AddSpouseHint(s.Left, s.Right, Anchor(s.Anchor))
		}
	}
	return b.Build()
}

// =============================================================================
// Writing
// =============================================================================

func toFile(p *Pedigree) file {
	ref := func(i int) string {
		if i == None {
			return ""
		}
		return p.Individuals[i].ID
	}

	out := file{Individuals: make([]fileIndividual, len(p.Individuals))}
	for i, ind := range p.Individuals {
		out.Individuals[i] = fileIndividual{
			ID:     ind.ID,
			Sex:    ind.Sex.String(),
			Mother: ref(ind.Mother),
			Father: ref(ind.Father),
		}
	}
	for _, r := range p.Relations {
		out.Relations = append(out.Relations, fileRelation{ID1: ref(r.ID1), ID2: ref(r.ID2), Code: int(r.Code)})
	}
	if p.Hints != nil {
		out.Hints = &fileHints{Order: p.Hints.Order}
		for _, s := range p.Hints.Spouse {
			out.Hints.Spouse = append(out.Hints.Spouse, fileSpouse{Left: ref(s.Left), Right: ref(s.Right), Anchor: int(s.Anchor)})
		}
	}
	return out
}

// WriteJSON encodes p as indented JSON. The output can be re-read with
// [ReadJSON].
func WriteJSON(p *Pedigree, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toFile(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes p as TOML. The output can be re-read with [ReadTOML].
func WriteTOML(p *Pedigree, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(toFile(p)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Marshal returns the canonical JSON encoding of p. Equal pedigrees produce
// identical bytes, so the result is suitable for content hashing.
func Marshal(p *Pedigree) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(p, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalHints serializes hints as indented JSON.
func MarshalHints(h *Hints) ([]byte, error) {
	return json.MarshalIndent(h, "", "  ")
}

// UnmarshalHints decodes hints produced by [MarshalHints].
func UnmarshalHints(data []byte) (*Hints, error) {
	var h Hints
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode hints")
	}
	return &h, nil
}
