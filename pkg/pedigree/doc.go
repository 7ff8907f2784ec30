// Package pedigree defines the kinship graph consumed by hint generation.
//
// # Arena Representation
//
// A [Pedigree] stores individuals in a fixed arena: every individual is
// addressed by its index 0..n-1, and parent links, relations and hints all
// refer to those indices. There are no pointers between individuals, so the
// graph can contain arbitrary kinship shapes (including loops through
// consanguineous marriages) without reference cycles.
//
// Parent links use -1 for "no parent". An individual has either both
// parents or neither; a single recorded parent is rejected by
// [Pedigree.Validate].
//
// # Relations
//
// [Relation] records twin and partnership links that cannot be derived from
// parent links. Codes below [RelationSpouse] mark twins; see
// [RelationCode.IsTwin].
//
// # Hints
//
// [Hints] is the output of hint generation and the input of a layout:
// Order[i] is individual i's rank within its generation, and Spouse lists
// partner pairings a layout should honour.
//
// # Files
//
// [ReadFile] loads pedigrees from JSON or TOML files in which parents are
// referenced by identifier rather than index:
//
//	{
//	  "individuals": [
//	    {"id": "dad", "sex": "male"},
//	    {"id": "mum", "sex": "female"},
//	    {"id": "kid", "sex": "female", "mother": "mum", "father": "dad"}
//	  ],
//	  "relations": [{"id1": "dad", "id2": "mum", "code": 4}]
//	}
package pedigree
