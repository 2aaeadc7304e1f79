package selector

// UnifyWith returns the most specific compound matching every element matched
// by both c and o, or nil when no element can match both. The result keeps
// c's members first, then o's members not already present.
func (c *Compound) UnifyWith(o *Compound) *Compound {
	pe1, pe2 := c.pseudoElement(), o.pseudoElement()
	if pe1 != nil && pe2 != nil && pe1.String() != pe2.String() {
		return nil
	}

	t1, t2 := c.typeSelector(), o.typeSelector()
	var t *Type
	switch {
	case t1 == nil:
		t = t2
	case t2 == nil:
		t = t1
	case t1.Name == "*":
		t = t2
	case t2.Name == "*":
		t = t1
	case t1.Name != t2.Name:
		return nil
	default:
		t = t1
	}

	res := &Compound{Pos: c.Pos, LineBreak: c.LineBreak || o.LineBreak}
	seen := make(map[string]struct{}, len(c.Simples)+len(o.Simples))
	if t != nil {
		res.Simples = append(res.Simples, t)
		if t1 != nil {
			seen[t1.String()] = struct{}{}
		}
		if t2 != nil {
			seen[t2.String()] = struct{}{}
		}
	}

	// wrapped pseudo-classes present on both sides with the same name merge
	// into one wrapper holding the concatenated argument lists
	otherWrapped := make(map[string]*Wrapped)
	for _, s := range o.Simples {
		if w, ok := s.(*Wrapped); ok {
			otherWrapped[w.Name] = w
		}
	}

	add := func(s Simple) {
		if _, ok := s.(*Type); ok {
			return
		}
		if w, ok := s.(*Wrapped); ok {
			if w2, ok := otherWrapped[w.Name]; ok && w.String() != w2.String() {
				merged := &Wrapped{Name: w.Name, List: w.List.Concat(w2.List), Pos: w.Pos}
				seen[w.String()] = struct{}{}
				seen[w2.String()] = struct{}{}
				if _, ok := seen[merged.String()]; !ok {
					seen[merged.String()] = struct{}{}
					res.Simples = append(res.Simples, merged)
				}
				return
			}
		}
		if _, ok := seen[s.String()]; ok {
			return
		}
		seen[s.String()] = struct{}{}
		res.Simples = append(res.Simples, s)
	}

	for _, s := range c.Simples {
		add(s)
	}
	for _, s := range o.Simples {
		add(s)
	}
	return res
}
