package sfv

// This file implements the top-level parsing entry points from spec.md §5:
// ParseItem, ParseList, ParseDictionary, and ParseParameters. Each consumes
// the entire input (after trailing OWS) and returns exactly one SyntaxError
// on any grammar violation; there is no tolerant mode and no partial
// result, per spec.md §1/§9.

// ParseItem parses data as a single sf-item: a bare value plus its
// parameters.
func ParseItem(data []byte) (Item, error) {
	c := newCursor(data)
	c.skipSP()
	it, err := parseItem(c)
	if err != nil {
		return Item{}, err
	}
	if err := requireTrailingOWS(c); err != nil {
		return Item{}, err
	}
	return it, nil
}

// ParseList parses data as a top-level List field value.
func ParseList(data []byte) (List, error) {
	c := newCursor(data)
	c.skipSP()
	if c.eof() {
		return List{}, nil
	}
	var members []Member
	for {
		m, err := parseItemOrInnerList(c)
		if err != nil {
			return List{}, err
		}
		members = append(members, m)
		c.skipSP()
		if c.eof() {
			break
		}
		if c.peek() != ',' {
			return List{}, c.errorf("expected ',' between list members")
		}
		c.advance()
		c.skipSP()
		if c.eof() {
			return List{}, c.errorf("trailing comma in list")
		}
	}
	return List{members: members}, nil
}

// ParseDictionary parses data as a top-level Dictionary field value.
func ParseDictionary(data []byte) (Dictionary, error) {
	c := newCursor(data)
	c.skipSP()
	if c.eof() {
		return Dictionary{}, nil
	}
	var d Dictionary
	for {
		key, err := scanKey(c)
		if err != nil {
			return Dictionary{}, err
		}
		var member Member
		if !c.eof() && c.peek() == '=' {
			c.advance()
			member, err = parseItemOrInnerList(c)
			if err != nil {
				return Dictionary{}, err
			}
		} else {
			params, err := parseParameters(c)
			if err != nil {
				return Dictionary{}, err
			}
			member = NewBareItem(NewBoolean(true)).WithParameters(params)
		}
		d, err = d.Add(key, member)
		if err != nil {
			return Dictionary{}, err
		}
		c.skipSP()
		if c.eof() {
			break
		}
		if c.peek() != ',' {
			return Dictionary{}, c.errorf("expected ',' between dictionary members")
		}
		c.advance()
		c.skipSP()
		if c.eof() {
			return Dictionary{}, c.errorf("trailing comma in dictionary")
		}
	}
	return d, nil
}

// ParseParameters parses data as a standalone Parameters run (";k=v;..."),
// an entry point this implementation supplements beyond spec.md's three
// top-level field parsers, grounded on x/net/http/httpsfv's exported
// ParseParameter for the same use case (reparsing the Parameters substring
// of an already-split field value).
func ParseParameters(data []byte) (Parameters, error) {
	c := newCursor(data)
	c.skipSP()
	p, err := parseParameters(c)
	if err != nil {
		return Parameters{}, err
	}
	if err := requireTrailingOWS(c); err != nil {
		return Parameters{}, err
	}
	return p, nil
}

func requireTrailingOWS(c *cursor) error {
	c.skipSP()
	if !c.eof() {
		return c.errorf("unexpected trailing data")
	}
	return nil
}

// parseItem parses a bare item plus its parameters.
func parseItem(c *cursor) (Item, error) {
	bare, err := scanBareItem(c)
	if err != nil {
		return Item{}, err
	}
	params, err := parseParameters(c)
	if err != nil {
		return Item{}, err
	}
	return Item{bare: bare, params: params}, nil
}

// parseItemOrInnerList parses either a bare item or a parenthesized inner
// list, dispatching on the leading byte.
func parseItemOrInnerList(c *cursor) (Member, error) {
	if !c.eof() && c.peek() == '(' {
		return parseInnerList(c)
	}
	return parseItem(c)
}

// parseInnerList parses "(" sf-item* ")" followed by its own parameters.
func parseInnerList(c *cursor) (InnerList, error) {
	start := c.pos
	if c.peek() != '(' {
		return InnerList{}, c.errorAt(start, "expected '('")
	}
	c.advance()

	var items []Item
	for {
		c.skipSP()
		if c.eof() {
			return InnerList{}, c.errorAt(start, "unterminated inner list")
		}
		if c.peek() == ')' {
			c.advance()
			break
		}
		it, err := parseItem(c)
		if err != nil {
			return InnerList{}, err
		}
		items = append(items, it)
		if c.eof() {
			return InnerList{}, c.errorAt(start, "unterminated inner list")
		}
		if c.peek() != ' ' && c.peek() != ')' {
			return InnerList{}, c.errorf("expected ' ' or ')' in inner list")
		}
	}
	params, err := parseParameters(c)
	if err != nil {
		return InnerList{}, err
	}
	return InnerList{items: items, params: params}, nil
}

// parseParameters parses a run of zero or more ";key" / ";key=value" pairs.
func parseParameters(c *cursor) (Parameters, error) {
	var p Parameters
	for !c.eof() && c.peek() == ';' {
		c.advance()
		c.skipSP()
		key, err := scanKey(c)
		if err != nil {
			return Parameters{}, err
		}
		value := NewBareItem(NewBoolean(true))
		if !c.eof() && c.peek() == '=' {
			c.advance()
			bare, err := scanBareItem(c)
			if err != nil {
				return Parameters{}, err
			}
			value = NewBareItem(bare)
		}
		p, err = p.Add(key, value)
		if err != nil {
			return Parameters{}, err
		}
	}
	return p, nil
}
