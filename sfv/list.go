package sfv

// Member is the sum type of List and Dictionary entries: either a bare Item
// or a parenthesized InnerList (spec.md §3). The set of implementations is
// closed: Item, InnerList.
type Member interface {
	ToHTTPValue() string
	isMember()
}

// List is the top-level List field value: an ordered sequence of Members
// (spec.md §3). The zero value is an empty List. List is immutable: every
// mutator returns a new value and leaves the receiver untouched.
type List struct {
	members []Member
}

// NewList constructs a List from its members, in order.
func NewList(members ...Member) List {
	return List{members: append([]Member(nil), members...)}
}

// Len reports the number of members.
func (l List) Len() int { return len(l.members) }

// IsEmpty reports whether l has no members.
func (l List) IsEmpty() bool { return len(l.members) == 0 }

// Members returns a copy of the list's members, in order.
func (l List) Members() []Member { return append([]Member(nil), l.members...) }

// Get returns the member at signed index i, or InvalidOffsetError.
func (l List) Get(i int) (Member, error) {
	idx, ok := normalizeIndex(len(l.members), i)
	if !ok {
		return nil, errInvalidIndex(i)
	}
	return l.members[idx], nil
}

// Insert inserts member before the member at signed index i (i == Len()
// appends).
func (l List) Insert(i int, member Member) (List, error) {
	idx, ok := normalizeInsertIndex(len(l.members), i)
	if !ok {
		return List{}, errInvalidIndex(i)
	}
	return List{members: insertAt(l.members, idx, member)}, nil
}

// Push appends member to the tail.
func (l List) Push(member Member) List {
	return List{members: append(append([]Member(nil), l.members...), member)}
}

// Unshift prepends member to the head.
func (l List) Unshift(member Member) List {
	out := make([]Member, 0, len(l.members)+1)
	out = append(out, member)
	out = append(out, l.members...)
	return List{members: out}
}

// Replace overwrites the member at signed index i.
func (l List) Replace(i int, member Member) (List, error) {
	idx, ok := normalizeIndex(len(l.members), i)
	if !ok {
		return List{}, errInvalidIndex(i)
	}
	if l.members[idx].ToHTTPValue() == member.ToHTTPValue() {
		return l, nil
	}
	return List{members: replaceAt(l.members, idx, member)}, nil
}

// Remove deletes the members at the listed signed indices.
func (l List) Remove(indices ...int) List {
	next := removeIndices(l.members, indices...)
	if len(next) == len(l.members) {
		return l
	}
	return List{members: next}
}

// ListPair is one index/value pair returned by List.Pairs.
type ListPair struct {
	Index int
	Value Member
}

// Pairs returns the list as index/value pairs, in order.
func (l List) Pairs() []ListPair {
	out := make([]ListPair, len(l.members))
	for i, m := range l.members {
		out[i] = ListPair{Index: i, Value: m}
	}
	return out
}

// Merge appends other's members to the tail of l, in order.
func (l List) Merge(other List) List {
	out := make([]Member, 0, len(l.members)+len(other.members))
	out = append(out, l.members...)
	out = append(out, other.members...)
	return List{members: out}
}

// Clear returns the empty List.
func (l List) Clear() List { return List{} }

// ToHTTPValue renders the list in canonical form: members separated by
// ", " (spec.md §4.2). ToHTTPValue of an empty List is the empty string;
// callers of an HTTP response/request omit the header entirely in that
// case, matching spec.md §3's "absent vs empty" distinction.
func (l List) ToHTTPValue() string {
	s := ""
	for i, m := range l.members {
		if i > 0 {
			s += ", "
		}
		s += m.ToHTTPValue()
	}
	return s
}
