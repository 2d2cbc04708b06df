package isa

import "fmt"

// field names one bit-selector used as a decode discriminator. Rows
// reference shared field instances so the tree builder can compare
// them by identity.
type field struct {
	name    string
	extract func(uint32) uint32
}

var (
	fieldOpcode = &field{"opcode", Opcode}
	fieldFunct3 = &field{"funct3", Funct3}
	fieldFunct7 = &field{"funct7", Funct7}
	fieldFunct5 = &field{"funct5", Funct5}
	fieldFunct2 = &field{"funct2", Funct2}
	fieldRs2    = &field{"rs2", func(i uint32) uint32 { return uint32(Rs2(i)) }}
)

// match is one constraint in a row's path: either the field must equal
// value, or (wild) it is unconstrained at this position.
type match struct {
	field *field
	value uint32
	wild  bool
}

func m(f *field, v uint32) match { return match{field: f, value: v} }
func wc(f *field) match          { return match{field: f, wild: true} }

// row is one declarative table entry: an ordered path of constraints
// terminating in the Kind/form it identifies.
type row struct {
	path []match
	kind Kind
	form operandForm
}

// treeNode is one level of the built discriminator tree. A node with
// leaf set is terminal; otherwise field names which bits to inspect
// next, dispatching to children by exact value or, failing that, to
// wildcard.
type treeNode struct {
	field    *field
	children map[uint32]*treeNode
	wildcard *treeNode
	leaf     *row
}

// buildTree validates and builds a discriminator tree from rows. It
// rejects: rows sharing a prefix where one terminates and another
// continues (finish-then-descend), more than one wildcard row at a
// node, duplicate leaves for the same path, and rows whose constraints
// at a shared depth name different fields (inconsistent prefix).
func buildTree(rows []row) (*treeNode, error) {
	return buildLevel(rows, 0)
}

func buildLevel(rows []row, depth int) (*treeNode, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	var leaves, cont []row
	for _, r := range rows {
		if len(r.path) == depth {
			leaves = append(leaves, r)
		} else {
			cont = append(cont, r)
		}
	}

	if len(leaves) > 0 && len(cont) > 0 {
		return nil, fmt.Errorf("isa: decode table conflict at depth %d: %v terminates while %v continues",
			depth, leaves[0].kind, cont[0].kind)
	}
	if len(leaves) > 1 {
		return nil, fmt.Errorf("isa: decode table duplicate leaf at depth %d: %v and %v share a path",
			depth, leaves[0].kind, leaves[1].kind)
	}
	if len(leaves) == 1 {
		lf := leaves[0]
		return &treeNode{leaf: &lf}, nil
	}

	f := cont[0].path[depth].field
	for _, r := range cont[1:] {
		if r.path[depth].field != f {
			return nil, fmt.Errorf("isa: decode table inconsistent field at depth %d: %v uses %s, %v uses %s",
				depth, cont[0].kind, f.name, r.kind, r.path[depth].field.name)
		}
	}

	node := &treeNode{field: f, children: map[uint32]*treeNode{}}
	groups := map[uint32][]row{}
	var wildRows []row
	for _, r := range cont {
		c := r.path[depth]
		if c.wild {
			wildRows = append(wildRows, r)
		} else {
			groups[c.value] = append(groups[c.value], r)
		}
	}
	if len(wildRows) > 1 {
		return nil, fmt.Errorf("isa: decode table has %d wildcard rows at depth %d, want at most 1", len(wildRows), depth)
	}

	for v, grp := range groups {
		child, err := buildLevel(grp, depth+1)
		if err != nil {
			return nil, err
		}
		node.children[v] = child
	}
	if len(wildRows) == 1 {
		child, err := buildLevel(wildRows, depth+1)
		if err != nil {
			return nil, err
		}
		node.wildcard = child
	}
	return node, nil
}

// decode walks the tree for instr, returning the matched row or false
// if no path (concrete or wildcard) applies.
func (n *treeNode) decode(instr uint32) (*row, bool) {
	for {
		if n == nil {
			return nil, false
		}
		if n.leaf != nil {
			return n.leaf, true
		}
		v := n.field.extract(instr)
		child, ok := n.children[v]
		if !ok {
			if n.wildcard == nil {
				return nil, false
			}
			child = n.wildcard
		}
		n = child
	}
}
