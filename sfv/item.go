package sfv

// Item pairs a bare value with its Parameters (spec.md §3). It is the unit
// List and Dictionary members are built from, and the thing a standalone
// parsed field value resolves to.
type Item struct {
	bare   BareValue
	params Parameters
}

// NewItem constructs an Item from a bare value and its parameters.
func NewItem(bare BareValue, params Parameters) Item {
	return Item{bare: bare, params: params}
}

// NewBareItem constructs an Item with empty parameters.
func NewBareItem(bare BareValue) Item {
	return Item{bare: bare}
}

// BareValue returns the item's bare value.
func (it Item) BareValue() BareValue { return it.bare }

// Parameters returns the item's parameters.
func (it Item) Parameters() Parameters { return it.params }

// WithValue returns a copy of it with its bare value replaced. If the
// replacement serializes identically to the current value, it is returned
// unchanged (the identity short-circuit from spec.md §3).
func (it Item) WithValue(bare BareValue) Item {
	if it.bare != nil && canonBareValue(it.bare) == canonBareValue(bare) {
		return it
	}
	return Item{bare: bare, params: it.params}
}

// WithParameters returns a copy of it with its parameters replaced.
func (it Item) WithParameters(params Parameters) Item {
	if sameEntries(it.params.entries, params.entries) {
		return it
	}
	return Item{bare: it.bare, params: params}
}

// ToHTTPValue renders the item in canonical form: the bare value followed by
// its serialized parameters, with no separating space (spec.md §4.2).
func (it Item) ToHTTPValue() string {
	return canonBareValue(it.bare) + it.params.ToHTTPValue()
}

// isMember marks Item as one of the two List/Dictionary member kinds.
func (Item) isMember() {}

// isBareTrue reports whether it's bare value is the boolean true, per
// spec.md §4.2 ("bare" parameters/members implicitly carry ?1). A
// parameter's own value always has empty parameters by construction (spec.md
// §3 invariant 3), so this alone decides whether a parameter's "=value"
// suffix is omittable; a dictionary member's own parameters, if any, are
// never affected by this check and must still be serialized.
func isBareTrue(it Item) bool {
	b, ok := it.bare.(Boolean)
	return ok && b.Value()
}
