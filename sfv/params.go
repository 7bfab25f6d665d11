package sfv

// Parameters is an insertion-ordered map from key to Item, attached to an
// Item or InnerList (spec.md §3). The zero value is an empty Parameters.
// Parameters is immutable: every mutator returns a new value and leaves the
// receiver untouched.
type Parameters struct {
	entries []orderedEntry[Item]
}

// NewParameters builds Parameters from a sequence of key/value pairs,
// applying "add" semantics (spec.md §4.3) pair by pair: a repeated key
// overwrites in place rather than duplicating.
func NewParameters(pairs ...ParamPair) (Parameters, error) {
	var p Parameters
	for _, pair := range pairs {
		var err error
		p, err = p.Add(pair.Key, pair.Value)
		if err != nil {
			return Parameters{}, err
		}
	}
	return p, nil
}

// ParamPair is one key/value argument to NewParameters.
type ParamPair struct {
	Key   string
	Value Item
}

// Len reports the number of parameters.
func (p Parameters) Len() int { return len(p.entries) }

// IsEmpty reports whether p has no parameters.
func (p Parameters) IsEmpty() bool { return len(p.entries) == 0 }

// Has reports whether key is present.
func (p Parameters) Has(key string) bool { return findEntry(p.entries, key) >= 0 }

// Get returns the Item at key, or InvalidOffsetError if absent.
func (p Parameters) Get(key string) (Item, error) {
	if idx := findEntry(p.entries, key); idx >= 0 {
		return p.entries[idx].Value, nil
	}
	return Item{}, errInvalidKey(key)
}

// Keys returns the parameter keys in insertion order.
func (p Parameters) Keys() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Key
	}
	return out
}

// Add sets key to value: if key is already present its value is replaced in
// place, preserving position; otherwise the pair is appended. Returns
// InvalidOffsetError-free; the only failure mode is an invalid key.
func (p Parameters) Add(key string, value Item) (Parameters, error) {
	if err := ValidateKey(key); err != nil {
		return Parameters{}, err
	}
	next := addEntry(p.entries, key, value)
	if sameEntries(p.entries, next) {
		return p, nil
	}
	return Parameters{entries: next}, nil
}

// Append removes key if present, then inserts it at the tail.
func (p Parameters) Append(key string, value Item) (Parameters, error) {
	if err := ValidateKey(key); err != nil {
		return Parameters{}, err
	}
	next := appendEntry(p.entries, key, value)
	if sameEntries(p.entries, next) {
		return p, nil
	}
	return Parameters{entries: next}, nil
}

// Prepend removes key if present, then inserts it at the head.
func (p Parameters) Prepend(key string, value Item) (Parameters, error) {
	if err := ValidateKey(key); err != nil {
		return Parameters{}, err
	}
	next := prependEntry(p.entries, key, value)
	if sameEntries(p.entries, next) {
		return p, nil
	}
	return Parameters{entries: next}, nil
}

// Remove deletes the named keys, ignoring any that are absent.
func (p Parameters) Remove(keys ...string) Parameters {
	next := removeEntries(p.entries, keys...)
	if sameEntries(p.entries, next) {
		return p
	}
	return Parameters{entries: next}
}

// GetByIndex returns the key/value pair at signed index i, or
// InvalidOffsetError if i is out of range.
func (p Parameters) GetByIndex(i int) (ParamPair, error) {
	idx, ok := normalizeIndex(len(p.entries), i)
	if !ok {
		return ParamPair{}, errInvalidIndex(i)
	}
	e := p.entries[idx]
	return ParamPair{Key: e.Key, Value: e.Value}, nil
}

// RemoveByIndex deletes the parameters at the listed signed indices,
// ignoring any index that is out of range.
func (p Parameters) RemoveByIndex(indices ...int) Parameters {
	next := removeEntriesByIndex(p.entries, indices...)
	if sameEntries(p.entries, next) {
		return p
	}
	return Parameters{entries: next}
}

// Pairs returns the parameters as key/value pairs, in insertion order.
func (p Parameters) Pairs() []ParamPair {
	out := make([]ParamPair, len(p.entries))
	for i, e := range p.entries {
		out[i] = ParamPair{Key: e.Key, Value: e.Value}
	}
	return out
}

// ToHTTPValue renders the parameters in canonical form: each as ";key" or
// ";key=value", in insertion order, with no separating space (spec.md §4.2).
func (p Parameters) ToHTTPValue() string {
	var b []byte
	for _, e := range p.entries {
		b = append(b, ';')
		b = append(b, e.Key...)
		if !isBareTrue(e.Value) {
			b = append(b, '=')
			b = append(b, e.Value.ToHTTPValue()...)
		}
	}
	return string(b)
}

func sameEntries(a, b []orderedEntry[Item]) bool {
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
