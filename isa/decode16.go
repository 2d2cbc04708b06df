package isa

import "fmt"

// treeNode16 mirrors treeNode but over the compressed row type; the
// two encoding spaces use disjoint field sets so they are validated
// and walked separately.
type treeNode16 struct {
	field    *field
	children map[uint32]*treeNode16
	wildcard *treeNode16
	leaf     *crow
}

func buildTree16(rows []crow) (*treeNode16, error) { return buildLevel16(rows, 0) }

func buildLevel16(rows []crow, depth int) (*treeNode16, error) {
	if len(rows) == 0 {
		return nil, nil
	}
	var leaves, cont []crow
	for _, r := range rows {
		if len(r.path) == depth {
			leaves = append(leaves, r)
		} else {
			cont = append(cont, r)
		}
	}
	if len(leaves) > 0 && len(cont) > 0 {
		return nil, fmt.Errorf("isa: compressed decode table conflict at depth %d: %v terminates while %v continues",
			depth, leaves[0].kind, cont[0].kind)
	}
	if len(leaves) > 1 {
		return nil, fmt.Errorf("isa: compressed decode table duplicate leaf at depth %d: %v and %v",
			depth, leaves[0].kind, leaves[1].kind)
	}
	if len(leaves) == 1 {
		lf := leaves[0]
		return &treeNode16{leaf: &lf}, nil
	}

	f := cont[0].path[depth].field
	for _, r := range cont[1:] {
		if r.path[depth].field != f {
			return nil, fmt.Errorf("isa: compressed decode table inconsistent field at depth %d: %v uses %s, %v uses %s",
				depth, cont[0].kind, f.name, r.kind, r.path[depth].field.name)
		}
	}

	node := &treeNode16{field: f, children: map[uint32]*treeNode16{}}
	groups := map[uint32][]crow{}
	var wildRows []crow
	for _, r := range cont {
		c := r.path[depth]
		if c.wild {
			wildRows = append(wildRows, r)
		} else {
			groups[c.value] = append(groups[c.value], r)
		}
	}
	if len(wildRows) > 1 {
		return nil, fmt.Errorf("isa: compressed decode table has %d wildcard rows at depth %d", len(wildRows), depth)
	}
	for v, grp := range groups {
		child, err := buildLevel16(grp, depth+1)
		if err != nil {
			return nil, err
		}
		node.children[v] = child
	}
	if len(wildRows) == 1 {
		child, err := buildLevel16(wildRows, depth+1)
		if err != nil {
			return nil, err
		}
		node.wildcard = child
	}
	return node, nil
}

func (n *treeNode16) decode(instr uint32) (*crow, bool) {
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

var tree16 *treeNode16

func init() {
	t, err := buildTree16(table16)
	if err != nil {
		panic(err)
	}
	tree16 = t
}

// Decode16 decodes a 16-bit compressed instruction word (already
// zero-extended into the low 16 bits of instr). The all-zero word is
// c.illegal and must never succeed, per the RVC encoding.
func Decode16(instr uint32) (Operation, bool) {
	if instr&0xFFFF == 0 {
		return Operation{Kind: KindIllegal, Raw: instr, Size: 2}, false
	}
	r, ok := tree16.decode(instr)
	if !ok {
		return Operation{Kind: KindIllegal, Raw: instr, Size: 2}, false
	}
	op := Operation{Kind: r.kind, Raw: instr, Size: 2}
	if !fillOperands16(&op, instr, r.form) {
		return Operation{Kind: KindIllegal, Raw: instr, Size: 2}, false
	}
	return op, true
}

// fillOperands16 expands a compressed match into full operand fields
// for the shared Kind set. Returns false for the reserved
// all-bits-constrained-but-semantically-invalid shapes (e.g.
// C.ADDI4SPN with a zero immediate).
func fillOperands16(op *Operation, instr uint32, form cForm) bool {
	switch form {
	case cFormCIW:
		imm := cIW(instr)
		if imm == 0 {
			return false
		}
		op.Rd, op.Rs1, op.Imm = cRdPrime(instr), x2, int32(imm)
	case cFormCLW:
		op.Rd, op.Rs1, op.Imm = cRdPrime(instr), cRs1Prime(instr), cLSWImm(instr)
	case cFormCLD:
		op.Rd, op.Rs1, op.Imm = cRdPrime(instr), cRs1Prime(instr), cLDImm(instr)
	case cFormCSW:
		op.Rs1, op.Rs2, op.Imm = cRs1Prime(instr), cRs2Prime(instr), cLSWImm(instr)
	case cFormCSD:
		op.Rs1, op.Rs2, op.Imm = cRs1Prime(instr), cRs2Prime(instr), cLDImm(instr)
	case cFormADDI:
		rd := int(cRdFull(instr))
		op.Rd, op.Rs1, op.Imm = rd, rd, cImm6(instr)
	case cFormJALLink:
		op.Rd, op.Imm = x1, cjImm(instr)
	case cFormLI:
		op.Rd, op.Rs1, op.Imm = int(cRdFull(instr)), x0, cImm6(instr)
	case cFormADDI16SP:
		op.Rd, op.Rs1, op.Imm = x2, x2, cAddi16spImm(instr)
		if op.Imm == 0 {
			return false
		}
	case cFormLUI:
		imm := cLuiImm(instr)
		if imm == 0 {
			return false
		}
		op.Rd, op.Imm = int(cRdFull(instr)), imm
	case cFormShift:
		rd := cRdPrime(instr)
		op.Rd, op.Rs1, op.Shamt = rd, rd, cShamt(instr)
	case cFormANDI:
		rd := cRdPrime(instr)
		op.Rd, op.Rs1, op.Imm = rd, rd, cAndiImm(instr)
	case cFormArith:
		rd := cRdPrime(instr)
		op.Rd, op.Rs1, op.Rs2 = rd, rd, cRs2Prime(instr)
	case cFormJ:
		op.Rd, op.Imm = x0, cjImm(instr)
	case cFormBranch:
		op.Rs1, op.Rs2, op.Imm = cRs1Prime(instr), x0, cbImm(instr)
	case cFormSLLI:
		rd := int(cRdFull(instr))
		if rd == 0 {
			return false
		}
		op.Rd, op.Rs1, op.Shamt = rd, rd, cShamt(instr)
	case cFormLSP:
		rd := int(cRdFull(instr))
		op.Rd, op.Rs1 = rd, x2
		op.Imm = cLwspImm(instr)
	case cFormLDSP:
		op.Rd, op.Rs1 = int(cRdFull(instr)), x2
		op.Imm = cLdspImm(instr)
	case cFormJR:
		rs1 := int(cRdFull(instr))
		if rs1 == 0 {
			return false
		}
		op.Rd, op.Rs1, op.Imm = x0, rs1, 0
	case cFormMV:
		rd := int(cRdFull(instr))
		if rd == 0 {
			return false
		}
		op.Rd, op.Rs1, op.Rs2 = rd, x0, int(cRs2Full(instr))
	case cFormEBREAK:
		// no operands
	case cFormJALR:
		rs1 := int(cRdFull(instr))
		op.Rd, op.Rs1, op.Imm = x1, rs1, 0
	case cFormADD:
		rd := int(cRdFull(instr))
		if rd == 0 {
			return false
		}
		op.Rd, op.Rs1, op.Rs2 = rd, rd, int(cRs2Full(instr))
	case cFormSSP:
		op.Rs1, op.Rs2, op.Imm = x2, int(cRs2Full(instr)), cSwspImm(instr)
	case cFormSDSP:
		op.Rs1, op.Rs2, op.Imm = x2, int(cRs2Full(instr)), cSdspImm(instr)
	}
	return true
}
