package term

import (
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"
)

// canonicalForm is the CBOR-encodable shape a Term is reduced to before
// hashing. It encodes structure, never Go pointer identity, so two
// independently built Terms that are Equal always hash equal.
type canonicalForm struct {
	Tag  Tag            `cbor:"1,keyasint"`
	Name string         `cbor:"2,keyasint,omitempty"`
	Body *canonicalForm `cbor:"3,keyasint,omitempty"`
	Fst  *canonicalForm `cbor:"4,keyasint,omitempty"`
	Snd  *canonicalForm `cbor:"5,keyasint,omitempty"`
}

func (t Term) canonical() canonicalForm {
	switch t.tag {
	case TagQuote:
		body := t.body.canonical()
		return canonicalForm{Tag: t.tag, Body: &body}
	case TagCatenate:
		fst := t.fst.canonical()
		snd := t.snd.canonical()
		return canonicalForm{Tag: t.tag, Fst: &fst, Snd: &snd}
	case TagConstant, TagVariable, TagAnnotate:
		return canonicalForm{Tag: t.tag, Name: t.name}
	default:
		return canonicalForm{Tag: t.tag}
	}
}

// Hash returns the BLAKE2b-256 digest of t's canonical CBOR encoding.
// It is a derived property used only for fast structural-equality
// pre-checks and for the machine's divergence heuristic; it never
// participates in Seq/Quote construction and changes nothing about
// normalization semantics.
func (t Term) Hash() [32]byte {
	data, err := cbor.Marshal(t.canonical())
	if err != nil {
		// The canonical form is a plain tree of structs, pointers, and
		// strings: CBOR encoding of it cannot fail.
		panic("term: unreachable cbor encode failure: " + err.Error())
	}
	return blake2b.Sum256(data)
}

// HashEqual is a fast pre-check that two Terms hash equal. A true result
// is strong evidence (not proof, since BLAKE2b collisions are merely
// astronomically unlikely) that Equal would also return true; a false
// result is conclusive that Equal is false.
func HashEqual(a, b Term) bool {
	return a.Hash() == b.Hash()
}
