package fetch

// Params is the query parameter set of one page request. It doubles as
// the cache key: two Params are equal iff every key-value pair matches.
type Params map[string]string

func (p Params) Equal(other Params) bool {
	if len(p) != len(other) {
		return false
	}
	for key, value := range p {
		if other[key] != value {
			return false
		}
	}
	return true
}

func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for key, value := range p {
		clone[key] = value
	}
	return clone
}
