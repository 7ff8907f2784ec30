package pedigree

import (
	"fmt"

	"github.com/matzehuels/kintree/pkg/errors"
)

// Builder assembles a Pedigree from identifier-based records. Parents may be
// referenced before they are added; references are resolved by Build.
//
// The zero value is not usable - use NewBuilder.
type Builder struct {
	inds    []pendingIndividual
	rels    []pendingRelation
	hints   *pendingHints
	indexOf map[string]int
}

type pendingIndividual struct {
	id, mother, father string
	sex                Sex
}

type pendingRelation struct {
	id1, id2 string
	code     RelationCode
}

type pendingHints struct {
	order  []int
	spouse []pendingSpouse
}

type pendingSpouse struct {
	left, right string
	anchor      Anchor
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{indexOf: make(map[string]int)}
}

// Add appends an individual. Empty mother/father mean "no parent".
// Returns ErrCodeInvalidPedigree for an invalid or duplicate ID.
func (b *Builder) Add(id string, sex Sex, mother, father string) error {
	if err := errors.ValidateIndividualID(id); err != nil {
		return err
	}
	if _, dup := b.indexOf[id]; dup {
		return errors.New(errors.ErrCodeInvalidPedigree, "duplicate id %q", id)
	}
	b.indexOf[id] = len(b.inds)
	b.inds = append(b.inds, pendingIndividual{id: id, sex: sex, mother: mother, father: father})
	return nil
}

// Relate records a twin or partnership relation between two IDs.
func (b *Builder) Relate(id1, id2 string, code RelationCode) {
	b.rels = append(b.rels, pendingRelation{id1: id1, id2: id2, code: code})
}

// SetOrder records a precomputed order hint vector.
func (b *Builder) SetOrder(order []int) {
	if b.hints == nil {
		b.hints = &pendingHints{}
	}
	b.hints.order = order
}

// AddSpouseHint records a precomputed spouse hint by ID.
func (b *Builder) AddSpouseHint(left, right string, anchor Anchor) {
	if b.hints == nil {
		b.hints = &pendingHints{}
	}
	b.hints.spouse = append(b.hints.spouse, pendingSpouse{left: left, right: right, anchor: anchor})
}

// Build resolves identifier references and validates the result.
func (b *Builder) Build() (*Pedigree, error) {
	p := &Pedigree{Individuals: make([]Individual, len(b.inds))}
	for i, pi := range b.inds {
		mother, err := b.resolve(pi.mother, "mother of "+pi.id)
		if err != nil {
			return nil, err
		}
		father, err := b.resolve(pi.father, "father of "+pi.id)
		if err != nil {
			return nil, err
		}
		p.Individuals[i] = Individual{ID: pi.id, Sex: pi.sex, Mother: mother, Father: father}
	}

	for _, pr := range b.rels {
		id1, err := b.lookup(pr.id1, "relation")
		if err != nil {
			return nil, err
		}
		id2, err := b.lookup(pr.id2, "relation")
		if err != nil {
			return nil, err
		}
		p.Relations = append(p.Relations, Relation{ID1: id1, ID2: id2, Code: pr.code})
	}

	if b.hints != nil {
		h := &Hints{Order: b.hints.order}
		for _, s := range b.hints.spouse {
			left, err := b.lookup(s.left, "spouse hint")
			if err != nil {
				return nil, err
			}
			right, err := b.lookup(s.right, "spouse hint")
			if err != nil {
				return nil, err
			}
			h.Spouse = append(h.Spouse, SpouseHint{Left: left, Right: right, Anchor: s.anchor})
		}
		p.Hints = h
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (b *Builder) resolve(id, what string) (int, error) {
	if id == "" {
		return None, nil
	}
	return b.lookup(id, what)
}

func (b *Builder) lookup(id, what string) (int, error) {
	i, ok := b.indexOf[id]
	if !ok {
		return None, errors.New(errors.ErrCodeInvalidPedigree, "%s: unknown individual %q", what, id)
	}
	return i, nil
}

// MustBuild is like Build but panics on error. It is intended for tests and
// examples with literal pedigrees.
func (b *Builder) MustBuild() *Pedigree {
	p, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("pedigree: %v", err))
	}
	return p
}
