package maintenance

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// member is one name/value pair of a JSON object.
type member struct {
	name  string
	value json.RawMessage
}

// splitObject returns the members of a JSON object in document order. Values
// are kept verbatim.
func splitObject(raw []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("not a JSON object")
	}

	var members []member
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("member %q: %w", name, err)
		}
		members = append(members, member{name: name, value: value})
	}
	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	return members, nil
}

// joinObject is the inverse of splitObject.
func joinObject(members []member) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range members {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := encodeString(m.name)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(m.value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// isNull reports whether the member name is missing or set to null.
func isNull(members []member, name string) bool {
	for _, m := range members {
		if m.name == name {
			return string(bytes.TrimSpace(m.value)) == "null"
		}
	}
	return true
}

// setMember replaces the value of name in place, or appends it.
func setMember(members []member, name string, value json.RawMessage) []member {
	for i := range members {
		if members[i].name == name {
			members[i].value = value
			return members
		}
	}
	return append(members, member{name: name, value: value})
}
