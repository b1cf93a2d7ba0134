package ordering

// Promoted reports whether a flag pair places a listing in the top
// group. Either flag alone is enough.
func Promoted(isFeatured, isNew bool) bool {
	return isFeatured || isNew
}

// ReindexOnFlagChange returns the index to write alongside a feature/new
// flag change, or nil when group membership is unchanged and order_index
// must stay untouched. The returned index goes into the same UPDATE as
// the flags so readers never observe an intermediate state.
func (a Allocator) ReindexOnFlagChange(oldFeatured, oldNew, newFeatured, newNew bool) (*int, error) {
	before := Promoted(oldFeatured, oldNew)
	after := Promoted(newFeatured, newNew)
	if before == after {
		return nil, nil
	}
	idx, err := a.Allocate(nil, after)
	if err != nil {
		return nil, err
	}
	return &idx, nil
}
