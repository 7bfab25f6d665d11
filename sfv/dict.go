package sfv

// Dictionary is the top-level Dictionary field value: an insertion-ordered
// map from key to Member (spec.md §3). The zero value is an empty
// Dictionary. Dictionary is immutable: every mutator returns a new value and
// leaves the receiver untouched.
type Dictionary struct {
	entries []orderedEntry[Member]
}

// DictPair is one key/value argument to NewDictionary.
type DictPair struct {
	Key   string
	Value Member
}

// NewDictionary builds a Dictionary from a sequence of key/value pairs,
// applying "add" semantics (spec.md §4.3) pair by pair.
func NewDictionary(pairs ...DictPair) (Dictionary, error) {
	var d Dictionary
	for _, pair := range pairs {
		var err error
		d, err = d.Add(pair.Key, pair.Value)
		if err != nil {
			return Dictionary{}, err
		}
	}
	return d, nil
}

// Len reports the number of entries.
func (d Dictionary) Len() int { return len(d.entries) }

// IsEmpty reports whether d has no entries.
func (d Dictionary) IsEmpty() bool { return len(d.entries) == 0 }

// Has reports whether key is present.
func (d Dictionary) Has(key string) bool { return findEntry(d.entries, key) >= 0 }

// Get returns the Member at key, or InvalidOffsetError if absent.
func (d Dictionary) Get(key string) (Member, error) {
	if idx := findEntry(d.entries, key); idx >= 0 {
		return d.entries[idx].Value, nil
	}
	return nil, errInvalidKey(key)
}

// Keys returns the dictionary keys in insertion order.
func (d Dictionary) Keys() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.Key
	}
	return out
}

// Add sets key to value: if key is already present its value is replaced in
// place, preserving position; otherwise the pair is appended.
func (d Dictionary) Add(key string, value Member) (Dictionary, error) {
	if err := ValidateKey(key); err != nil {
		return Dictionary{}, err
	}
	next := addEntry(d.entries, key, value)
	if sameMemberEntries(d.entries, next) {
		return d, nil
	}
	return Dictionary{entries: next}, nil
}

// Append removes key if present, then inserts it at the tail.
func (d Dictionary) Append(key string, value Member) (Dictionary, error) {
	if err := ValidateKey(key); err != nil {
		return Dictionary{}, err
	}
	next := appendEntry(d.entries, key, value)
	if sameMemberEntries(d.entries, next) {
		return d, nil
	}
	return Dictionary{entries: next}, nil
}

// Prepend removes key if present, then inserts it at the head.
func (d Dictionary) Prepend(key string, value Member) (Dictionary, error) {
	if err := ValidateKey(key); err != nil {
		return Dictionary{}, err
	}
	next := prependEntry(d.entries, key, value)
	if sameMemberEntries(d.entries, next) {
		return d, nil
	}
	return Dictionary{entries: next}, nil
}

// Remove deletes the named keys, ignoring any that are absent.
func (d Dictionary) Remove(keys ...string) Dictionary {
	next := removeEntries(d.entries, keys...)
	if sameMemberEntries(d.entries, next) {
		return d
	}
	return Dictionary{entries: next}
}

// GetByIndex returns the key/value pair at signed index i, or
// InvalidOffsetError if i is out of range.
func (d Dictionary) GetByIndex(i int) (DictPair, error) {
	idx, ok := normalizeIndex(len(d.entries), i)
	if !ok {
		return DictPair{}, errInvalidIndex(i)
	}
	e := d.entries[idx]
	return DictPair{Key: e.Key, Value: e.Value}, nil
}

// RemoveByIndex deletes the entries at the listed signed indices, ignoring
// any index that is out of range.
func (d Dictionary) RemoveByIndex(indices ...int) Dictionary {
	next := removeEntriesByIndex(d.entries, indices...)
	if sameMemberEntries(d.entries, next) {
		return d
	}
	return Dictionary{entries: next}
}

// Pairs returns the dictionary as key/value pairs, in insertion order.
func (d Dictionary) Pairs() []DictPair {
	out := make([]DictPair, len(d.entries))
	for i, e := range d.entries {
		out[i] = DictPair{Key: e.Key, Value: e.Value}
	}
	return out
}

// Clear returns the empty Dictionary.
func (d Dictionary) Clear() Dictionary { return Dictionary{} }

// Merge applies other's entries onto d using "add" semantics (spec.md
// §4.3): a key already present in d has its value replaced in place, a new
// key is appended at the tail, both in other's insertion order.
func (d Dictionary) Merge(other Dictionary) Dictionary {
	next := d.entries
	for _, e := range other.entries {
		next = addEntry(next, e.Key, e.Value)
	}
	if sameMemberEntries(d.entries, next) {
		return d
	}
	return Dictionary{entries: next}
}

func sameMemberEntries(a, b []orderedEntry[Member]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || a[i].Value.ToHTTPValue() != b[i].Value.ToHTTPValue() {
			return false
		}
	}
	return true
}

// ToHTTPValue renders the dictionary in canonical form: "key=value" pairs in
// insertion order separated by ", ", with a Boolean-true Item member
// rendered as just "key" plus its own parameters, dropping only the "=?1"
// (spec.md §4.2; RFC 8941 §4.1.2 omits "=?1" based solely on the bare value,
// regardless of any parameters attached to that member).
func (d Dictionary) ToHTTPValue() string {
	s := ""
	for i, e := range d.entries {
		if i > 0 {
			s += ", "
		}
		s += e.Key
		if it, ok := e.Value.(Item); ok && isBareTrue(it) {
			s += it.Parameters().ToHTTPValue()
			continue
		}
		s += "=" + e.Value.ToHTTPValue()
	}
	return s
}
