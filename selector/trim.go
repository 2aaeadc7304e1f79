package selector

// trimCutoff bounds the quadratic scan; past it trim is skipped entirely.
const trimCutoff = 100

// trim removes selectors dominated by a more specific superselector in
// another group. A selector may only be dropped if the surviving one is at
// least as specific as the most specific source that produced it.
func trim(groups [][]*Complex, isReplace bool) [][]*Complex {
	if len(groups) > trimCutoff {
		return groups
	}
	result := make([][]*Complex, len(groups))
	copy(result, groups)
	for i, g := range groups {
		var kept []*Complex
		for _, s1 := range g {
			maxSpec := 0
			if isReplace {
				maxSpec = s1.Specificity()
			}
			for _, src := range s1.Sources {
				if sp := src.Specificity(); sp > maxSpec {
					maxSpec = sp
				}
			}
			dominated := false
			for j, g2 := range result {
				if j == i {
					continue
				}
				for _, s2 := range g2 {
					if s2.Specificity() >= maxSpec && IsSuperselector(s2, s1) {
						dominated = true
						break
					}
				}
				if dominated {
					break
				}
			}
			if !dominated {
				kept = append(kept, s1)
			}
		}
		result[i] = kept
	}
	return result
}
