package models

// Clone methods return deep copies; slices never alias the receiver.

func (p Profile) Clone() Profile {
	p.Skills = cloneSlice(p.Skills)
	p.Links = cloneSlice(p.Links)
	return p
}

func (u Update) Clone() Update {
	u.DSA.Problems = cloneSlice(u.DSA.Problems)
	u.DSA.Concepts = cloneSlice(u.DSA.Concepts)
	return u
}

func (d TaskDay) Clone() TaskDay {
	d.Completed = cloneSlice(d.Completed)
	d.Planned = cloneSlice(d.Planned)
	return d
}

func (a Article) Clone() Article {
	a.Tags = cloneSlice(a.Tags)
	return a
}

func (d DayDetail) Clone() DayDetail {
	d.Completed = cloneSlice(d.Completed)
	d.Planned = cloneSlice(d.Planned)
	if d.Articles != nil {
		notes := make([]LearningNote, len(d.Articles))
		for i, n := range d.Articles {
			n.Tags = cloneSlice(n.Tags)
			notes[i] = n
		}
		d.Articles = notes
	}
	if d.Writings != nil {
		refl := make([]Reflection, len(d.Writings))
		for i, r := range d.Writings {
			r.Tags = cloneSlice(r.Tags)
			refl[i] = r
		}
		d.Writings = refl
	}
	return d
}

// CloneAll deep-copies a slice of cloneable records.
func CloneAll[T interface{ Clone() T }](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = v.Clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append([]T(nil), in...)
}
