package containers

import "github.com/sunholo/cgen/internal/types"

// Instantiation is one concrete container instantiation tracked by the
// Registry: its resolved Type, mangled C name, declare_* macro line,
// and provenance (spec.md §4.5).
type Instantiation struct {
	Type   *types.Type
	CName  string
	Decl   string
	Actual bool
}

// Registry canonicalizes the set of concrete container instantiations
// required by actually-used sites (spec.md §4.5). A Registry is owned
// by exactly one pipeline.Pipeline instance; reset() is invoked at the
// start of every run so no state survives across modules (spec.md §4.5,
// §9: "Cross-run state in the container registry is the single largest
// source of historical bugs in the source repository").
type Registry struct {
	order []string
	items map[string]*Instantiation
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: map[string]*Instantiation{}}
}

// Reset clears all state, restoring the registry to its just-created
// condition. Must be called at the start of every pipeline run.
func (r *Registry) Reset() {
	r.order = nil
	r.items = map[string]*Instantiation{}
}

// Register inserts t with the given provenance, keyed by its
// canonical type descriptor. Upgrading an existing speculative entry
// to actual is permitted; downgrading an actual entry is not (it is
// silently ignored — the registry never loses an actual classification
// once observed, matching spec.md §4.5's register() contract).
func (r *Registry) Register(t *types.Type, actual bool) *Instantiation {
	if t == nil || !t.IsContainer() {
		return nil
	}
	key := t.String()
	if existing, ok := r.items[key]; ok {
		if actual {
			existing.Actual = true
		}
		return existing
	}
	inst := &Instantiation{Type: t, CName: CTypeName(t), Decl: DeclMacro(t), Actual: actual}
	r.order = append(r.order, key)
	r.items[key] = inst
	return inst
}

// Lookup returns the registered instantiation for t, if any.
func (r *Registry) Lookup(t *types.Type) (*Instantiation, bool) {
	if t == nil {
		return nil, false
	}
	inst, ok := r.items[t.String()]
	return inst, ok
}

// RequiredDeclarations returns the actually-used instantiations in
// insertion order (spec.md §4.5: "declarations are emitted in
// insertion order, modulo a stable topological sort ensuring that
// element types precede the containers that use them" — this core
// restricts actually-used container elements to scalars, per
// DESIGN.md, so no instantiation ever depends on another and
// insertion order alone is already the required order).
func (r *Registry) RequiredDeclarations() []*Instantiation {
	var out []*Instantiation
	for _, k := range r.order {
		if inst := r.items[k]; inst.Actual {
			out = append(out, inst)
		}
	}
	return out
}

// RequiredHeaders returns the deduplicated, deterministically-ordered
// set of container-library headers needed by the actually-used
// instantiations (spec.md §4.5, §4.6 step 2).
func (r *Registry) RequiredHeaders() []string {
	seen := map[string]bool{}
	var out []string
	// Fixed kind order (vector, hashmap, hashset) rather than
	// first-use order, so output is stable even if a module's first
	// actually-used container changes across edits that don't touch
	// container usage at all.
	order := []string{"containers/vector.h", "containers/hashmap.h", "containers/hashset.h"}
	present := map[string]bool{}
	for _, k := range r.order {
		inst := r.items[k]
		if !inst.Actual {
			continue
		}
		if h := HeaderFor(inst.Type); h != "" {
			present[h] = true
		}
	}
	for _, h := range order {
		if present[h] && !seen[h] {
			seen[h] = true
			out = append(out, h)
		}
	}
	return out
}

// HasActual reports whether at least one actually-used instantiation
// is registered — the trigger for emitting container-library headers
// at all (spec.md §4.6 step 2, §8's minimality property).
func (r *Registry) HasActual() bool {
	for _, k := range r.order {
		if r.items[k].Actual {
			return true
		}
	}
	return false
}
