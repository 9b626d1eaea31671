package treewrap

// Equal compares the values under two adapters structurally, across
// representations. In strict mode kinds must match exactly, so an
// integer never equals a double; otherwise numeric kinds compare by
// numeric value. Object comparison is order-insensitive; array
// comparison is positional.
func Equal(a, b Adapter, strict bool) bool {
	ka, kb := a.Kind(), b.Kind()
	if ka.IsNumber() && kb.IsNumber() {
		if strict && ka != kb {
			return false
		}
		if ka == IntegerKind && kb == IntegerKind {
			x, _ := a.GetInteger()
			y, _ := b.GetInteger()
			return x == y
		}
		return numeric(a) == numeric(b)
	}
	if ka != kb {
		return false
	}
	switch ka {
	case NullKind:
		return true
	case BoolKind:
		x, _ := a.GetBool()
		y, _ := b.GetBool()
		return x == y
	case StringKind:
		x, _ := a.GetString()
		y, _ := b.GetString()
		return x == y
	case ArrayKind:
		aa, _ := a.GetArray()
		ba, _ := b.GetArray()
		if aa.Size() != ba.Size() {
			return false
		}
		for i := 0; i < aa.Size(); i++ {
			if !Equal(aa.Elem(i), ba.Elem(i), strict) {
				return false
			}
		}
		return true
	case ObjectKind:
		ao, _ := a.GetObject()
		bo, _ := b.GetObject()
		if ao.Size() != bo.Size() {
			return false
		}
		for name, av := range ao.Members() {
			bv, ok := bo.Find(name)
			if !ok || !Equal(av, bv, strict) {
				return false
			}
		}
		return true
	}
	return false
}

func numeric(a Adapter) float64 {
	if n, ok := a.GetInteger(); ok {
		return float64(n)
	}
	f, _ := a.GetDouble()
	return f
}
