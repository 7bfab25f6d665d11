package sfv

// SerializeItem renders it as an sf-item field value.
func SerializeItem(it Item) string { return it.ToHTTPValue() }

// SerializeList renders l as an sf-list field value. The empty list
// serializes to the empty string; per spec.md §3, callers should omit the
// header entirely rather than send an empty value.
func SerializeList(l List) string { return l.ToHTTPValue() }

// SerializeDictionary renders d as an sf-dictionary field value.
func SerializeDictionary(d Dictionary) string { return d.ToHTTPValue() }

// SerializeParameters renders p as a standalone Parameters run, the
// serializer-side counterpart to ParseParameters.
func SerializeParameters(p Parameters) string { return p.ToHTTPValue() }
