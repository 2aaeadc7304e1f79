package selector

// RemovePlaceholders drops list members that still contain placeholder
// selectors, including placeholders hidden inside wrapped pseudo-classes.
// A list whose members all vanish comes back empty.
func RemovePlaceholders(l *List) *List {
	res := &List{Pos: l.Pos}
	for _, m := range l.Members {
		if m.HasPlaceholder() {
			continue
		}
		res.Append(m)
	}
	return res
}
