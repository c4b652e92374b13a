package valijson

// Equal compares two adapter values structurally, independent of which
// backends produced them.
//
// Nulls equal nulls; booleans and strings compare by value; numbers compare
// by numeric value, and under strict=true their representational kinds
// (integer vs floating-point) must also match unless both backends report
// loose typing; arrays compare pairwise in order; objects compare as member
// sets, order-independent. A kind mismatch is never equal, regardless of
// strict.
func Equal(a, b Value, strict bool) bool {
	switch {
	case a.IsNull():
		return b.IsNull()
	case a.IsBool():
		if !b.IsBool() {
			return false
		}
		av, _ := a.GetBool()
		bv, _ := b.GetBool()
		return av == bv
	case a.IsString():
		if !b.IsString() {
			return false
		}
		as, _ := a.GetString()
		bs, _ := b.GetString()
		return as == bs
	case a.IsArray():
		ba, ok := b.GetArray()
		if !ok {
			return false
		}
		aa, _ := a.GetArray()
		return equalArrays(aa, ba, strict)
	case a.IsObject():
		bo, ok := b.GetObject()
		if !ok {
			return false
		}
		ao, _ := a.GetObject()
		return equalObjects(ao, bo, strict)
	case a.IsNumber():
		if !b.IsNumber() {
			return false
		}
		return equalNumbers(a, b, strict)
	}
	return false
}

func equalArrays(a, b Array, strict bool) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		if !Equal(a.At(i), b.At(i), strict) {
			return false
		}
	}
	return true
}

func equalObjects(a, b Object, strict bool) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := 0; i < n; i++ {
		m := a.MemberAt(i)
		j, ok := b.FindIndex(m.Name)
		if !ok {
			return false
		}
		if !Equal(m.Value, b.MemberAt(j).Value, strict) {
			return false
		}
	}
	return true
}

func equalNumbers(a, b Value, strict bool) bool {
	// The representational-kind check applies per side: it is skipped only
	// when both backends conflate integer and floating-point.
	if strict && (a.StrictTypes() || b.StrictTypes()) {
		if a.IsDouble() != b.IsDouble() {
			return false
		}
	}
	if ai, ok := a.GetInteger(); ok {
		if bi, ok := b.GetInteger(); ok {
			return ai == bi
		}
	}
	ad, ok := a.GetNumber()
	if !ok {
		return false
	}
	bd, ok := b.GetNumber()
	if !ok {
		return false
	}
	return ad == bd
}
