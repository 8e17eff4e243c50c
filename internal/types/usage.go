package types

// UsageTable records, for each distinct container instantiation seen
// while walking the module, whether it is actually-used (a local with
// an initializer, a parameter, or a return type) or merely speculative
// (only ever seen as a record field) — spec.md §4.2, §3 Invariant 2.
// Dedup key is Type.String(), e.g. "list<int>"; upgrading speculative
// to actual is permitted, downgrading is not (mirrors the Container
// Registry's own register() contract in internal/containers). The
// registry is not filled from this table; internal/elaborate
// registers instantiations as it lowers.
type UsageTable struct {
	order []string
	byKey map[string]*Usage
}

// Usage is one distinct container instantiation and its provenance.
type Usage struct {
	Type   *Type
	Actual bool
}

// NewUsageTable creates an empty table.
func NewUsageTable() *UsageTable {
	return &UsageTable{byKey: map[string]*Usage{}}
}

// Mark records t (which must be a container type) with the given
// provenance. An existing speculative entry is upgraded to actual;
// an existing actual entry is never downgraded.
func (u *UsageTable) Mark(t *Type, actual bool) {
	if t == nil || !t.IsContainer() {
		return
	}
	key := t.String()
	if existing, ok := u.byKey[key]; ok {
		if actual {
			existing.Actual = true
		}
		return
	}
	u.order = append(u.order, key)
	u.byKey[key] = &Usage{Type: t, Actual: actual}
}

// Entries returns every recorded instantiation in first-seen order.
func (u *UsageTable) Entries() []*Usage {
	out := make([]*Usage, 0, len(u.order))
	for _, k := range u.order {
		out = append(out, u.byKey[k])
	}
	return out
}

// ActualOnly returns only the actually-used instantiations, in
// first-seen order — the set that forces emission (spec.md §4.2).
func (u *UsageTable) ActualOnly() []*Usage {
	var out []*Usage
	for _, k := range u.order {
		if e := u.byKey[k]; e.Actual {
			out = append(out, e)
		}
	}
	return out
}
