package jsontree

import "github.com/treewrap/treewrap"

// frozen owns a deep copy of a value; it never aliases a live
// document.
type frozen struct {
	v any
}

func (f frozen) Clone() treewrap.Frozen {
	return frozen{Copy(f.v)}
}

func (f frozen) EqualTo(other treewrap.Adapter, strict bool) bool {
	v := f.v
	return treewrap.Equal(Wrap(&v), other, strict)
}

func (f frozen) SetInto(dst treewrap.Adapter) error {
	if mv, ok := dst.(mutValue); ok {
		// same representation, single deep copy
		if mv.s != nil {
			mv.s.store(Copy(f.v))
		}
		return nil
	}
	v := f.v
	return treewrap.Assign(dst, Wrap(&v))
}
