package domain

// KeyValue is a key-identity pair used by specification and feature lists.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// MergeKeyValues applies a key-identity merge of incoming pairs onto current
// and returns the new list. For each incoming pair: an empty value removes
// any existing entry with that key, an existing key is overwritten in place,
// a new key is appended. This is deliberately separate from Reconcile, which
// is purely positional.
func MergeKeyValues(current, incoming []KeyValue) []KeyValue {
	out := make([]KeyValue, len(current))
	copy(out, current)

	for _, kv := range incoming {
		if kv.Value == "" {
			kept := out[:0]
			for _, existing := range out {
				if existing.Key != kv.Key {
					kept = append(kept, existing)
				}
			}
			out = kept
			continue
		}

		replaced := false
		for i := range out {
			if out[i].Key == kv.Key {
				out[i].Value = kv.Value
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, kv)
		}
	}

	return out
}
