package pedigree

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/kintree/pkg/errors"
)

// None marks a missing parent link.
const None = -1

// Sex is the recorded sex of an individual.
type Sex int

const (
	SexMale       Sex = 1
	SexFemale     Sex = 2
	SexUnknown    Sex = 3
	SexTerminated Sex = 4
)

var sexNames = map[Sex]string{
	SexMale:       "male",
	SexFemale:     "female",
	SexUnknown:    "unknown",
	SexTerminated: "terminated",
}

// String returns the lower-case name of the sex.
func (s Sex) String() string {
	if name, ok := sexNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Sex(%d)", int(s))
}

// ParseSex accepts names ("male"), single letters ("m") and codes ("1").
// An empty string parses as SexUnknown.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m", "1":
		return SexMale, nil
	case "female", "f", "2":
		return SexFemale, nil
	case "unknown", "u", "3", "":
		return SexUnknown, nil
	case "terminated", "t", "4":
		return SexTerminated, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidPedigree, "unknown sex %q", s)
}

// RelationCode classifies a [Relation].
type RelationCode int

const (
	RelationMZTwin      RelationCode = 1 // monozygotic twins
	RelationDZTwin      RelationCode = 2 // dizygotic twins
	RelationUnknownTwin RelationCode = 3 // twins of unknown zygosity
	RelationSpouse      RelationCode = 4 // partners without recorded children
)

// IsTwin reports whether the code marks a twin relation.
func (c RelationCode) IsTwin() bool { return c >= RelationMZTwin && c < RelationSpouse }

// Individual is one arena slot of a pedigree.
type Individual struct {
	ID     string
	Sex    Sex
	Mother int // arena index or None
	Father int // arena index or None
}

// HasParents reports whether both parent links are recorded.
func (ind Individual) HasParents() bool { return ind.Mother != None && ind.Father != None }

// Relation links two individuals by arena index.
type Relation struct {
	ID1  int          `json:"id1"`
	ID2  int          `json:"id2"`
	Code RelationCode `json:"code"`
}

// Anchor marks which side of a spouse hint is pinned to its parent family.
type Anchor int

const (
	AnchorNone  Anchor = 0
	AnchorLeft  Anchor = 1
	AnchorRight Anchor = 2
)

// SpouseHint asks a layout to place Left immediately left of Right.
type SpouseHint struct {
	Left   int    `json:"left"`
	Right  int    `json:"right"`
	Anchor Anchor `json:"anchor"`
}

// Hints is the layout guidance produced by hint generation.
type Hints struct {
	Order  []int        `json:"order"`
	Spouse []SpouseHint `json:"spouse,omitempty"`
}

// Clone returns a deep copy of h. Cloning nil returns nil.
func (h *Hints) Clone() *Hints {
	if h == nil {
		return nil
	}
	return &Hints{Order: slices.Clone(h.Order), Spouse: slices.Clone(h.Spouse)}
}

// Pedigree is a kinship graph over an arena of individuals.
//
// A Pedigree is treated as immutable by hint generation; callers that build
// one incrementally should call Validate before use.
type Pedigree struct {
	Individuals []Individual
	Relations   []Relation
	// Hints carries previously computed hints. When set, hint generation
	// returns it unchanged.
	Hints *Hints
}

// Len returns the number of individuals.
func (p *Pedigree) Len() int { return len(p.Individuals) }

// Sex returns the sex of individual i.
func (p *Pedigree) Sex(i int) Sex { return p.Individuals[i].Sex }

// Index returns the arena index of the individual with the given ID.
func (p *Pedigree) Index(id string) (int, bool) {
	for i, ind := range p.Individuals {
		if ind.ID == id {
			return i, true
		}
	}
	return None, false
}

// Children returns the arena indices of i's children in index order.
func (p *Pedigree) Children(i int) []int {
	var kids []int
	for k, ind := range p.Individuals {
		if ind.Mother == i || ind.Father == i {
			kids = append(kids, k)
		}
	}
	return kids
}

// TwinRelations returns the relations whose code marks twins.
func (p *Pedigree) TwinRelations() []Relation {
	var out []Relation
	for _, r := range p.Relations {
		if r.Code.IsTwin() {
			out = append(out, r)
		}
	}
	return out
}

// Partners returns each partnership once as an ordered pair (low, high).
// Partnerships come from co-parents of a child and from spouse relations.
// The result is sorted.
func (p *Pedigree) Partners() [][2]int {
	seen := make(map[[2]int]bool)
	var out [][2]int
	add := func(a, b int) {
		if a == b {
			return
		}
		pair := [2]int{min(a, b), max(a, b)}
		if !seen[pair] {
			seen[pair] = true
			out = append(out, pair)
		}
	}
	for _, ind := range p.Individuals {
		if ind.HasParents() {
			add(ind.Mother, ind.Father)
		}
	}
	for _, r := range p.Relations {
		if r.Code == RelationSpouse {
			add(r.ID1, r.ID2)
		}
	}
	slices.SortFunc(out, func(a, b [2]int) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})
	return out
}

// Validate checks arena integrity and returns nil if the pedigree is usable.
//
// It verifies that identifiers are valid and unique, parent and relation
// indices are in range, both or neither parent is recorded, nobody is their
// own parent, and hints (if present) cover every individual.
func (p *Pedigree) Validate() error {
	if err := p.CheckRefs(); err != nil {
		return err
	}
	n := p.Len()
	ids := make(map[string]int, n)
	for i, ind := range p.Individuals {
		if err := errors.ValidateIndividualID(ind.ID); err != nil {
			return fmt.Errorf("individual %d: %w", i, err)
		}
		if prev, dup := ids[ind.ID]; dup {
			return errors.New(errors.ErrCodeInvalidPedigree, "duplicate id %q (individuals %d and %d)", ind.ID, prev, i)
		}
		ids[ind.ID] = i

		if (ind.Mother == None) != (ind.Father == None) {
			return errors.New(errors.ErrCodeInvalidPedigree, "individual %q has only one parent", ind.ID)
		}
		if ind.HasParents() && ind.Mother == ind.Father {
			return errors.New(errors.ErrCodeInvalidPedigree, "individual %q has the same person as both parents", ind.ID)
		}
		if ind.Mother == i || ind.Father == i {
			return errors.New(errors.ErrCodeInvalidPedigree, "individual %q is their own parent", ind.ID)
		}
	}

	for k, r := range p.Relations {
		if r.ID1 == r.ID2 {
			return errors.New(errors.ErrCodeInvalidPedigree, "relation %d links individual %d to itself", k, r.ID1)
		}
		if r.Code < RelationMZTwin || r.Code > RelationSpouse {
			return errors.New(errors.ErrCodeInvalidPedigree, "relation %d has unknown code %d", k, r.Code)
		}
	}

	if p.Hints != nil {
		return p.Hints.Validate(n)
	}
	return nil
}

// CheckRefs verifies that every parent and relation index points into the
// arena. Parent links may be None. It is the part of [Pedigree.Validate]
// that code walking the arena depends on; single recorded parents pass.
func (p *Pedigree) CheckRefs() error {
	n := p.Len()
	for _, ind := range p.Individuals {
		if err := errors.ValidateIndex(ind.Mother, n, true, "mother"); err != nil {
			return fmt.Errorf("individual %q: %w", ind.ID, err)
		}
		if err := errors.ValidateIndex(ind.Father, n, true, "father"); err != nil {
			return fmt.Errorf("individual %q: %w", ind.ID, err)
		}
	}
	for k, r := range p.Relations {
		if err := errors.ValidateIndex(r.ID1, n, false, "relation id1"); err != nil {
			return fmt.Errorf("relation %d: %w", k, err)
		}
		if err := errors.ValidateIndex(r.ID2, n, false, "relation id2"); err != nil {
			return fmt.Errorf("relation %d: %w", k, err)
		}
	}
	return nil
}

// Validate checks that h covers n individuals and that every spouse hint
// names two of them with a known anchor.
func (h *Hints) Validate(n int) error {
	if len(h.Order) != n {
		return errors.New(errors.ErrCodeInvalidPedigree, "hints cover %d individuals, pedigree has %d", len(h.Order), n)
	}
	for k, s := range h.Spouse {
		if err := errors.ValidateIndex(s.Left, n, false, "spouse hint left"); err != nil {
			return fmt.Errorf("spouse hint %d: %w", k, err)
		}
		if err := errors.ValidateIndex(s.Right, n, false, "spouse hint right"); err != nil {
			return fmt.Errorf("spouse hint %d: %w", k, err)
		}
		if s.Anchor < AnchorNone || s.Anchor > AnchorRight {
			return errors.New(errors.ErrCodeInvalidPedigree, "spouse hint %d has anchor %d", k, s.Anchor)
		}
	}
	return nil
}
