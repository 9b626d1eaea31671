package irtree

import "github.com/treewrap/treewrap"

// frozen owns a deep copy of a node; root is never nil and never
// aliases a live tree.
type frozen struct {
	root *Node
}

func (f frozen) Clone() treewrap.Frozen {
	return frozen{f.root.Clone()}
}

func (f frozen) EqualTo(other treewrap.Adapter, strict bool) bool {
	return treewrap.Equal(Wrap(f.root), other, strict)
}

func (f frozen) SetInto(dst treewrap.Adapter) error {
	if mv, ok := dst.(mutValue); ok {
		// same representation, single deep copy
		if mv.n != nil {
			f.root.CloneTo(mv.n)
		}
		return nil
	}
	return treewrap.Assign(dst, Wrap(f.root))
}
