package types

import "encoding/json"

// StringSlice decodes Gamma fields that are either a real JSON array or an
// array serialized into a string, e.g. "[\"123\", \"456\"]".
type StringSlice []string

func (s *StringSlice) UnmarshalJSON(data []byte) error {
	var direct []string
	if err := json.Unmarshal(data, &direct); err == nil {
		*s = direct
		return nil
	}

	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return err
	}
	if encoded == "" {
		*s = nil
		return nil
	}

	var nested []string
	if err := json.Unmarshal([]byte(encoded), &nested); err != nil {
		return err
	}
	*s = nested
	return nil
}
