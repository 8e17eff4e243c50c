package diag

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Encoded is the machine-parseable record shape from spec.md §6:
// "newline-separated records of {severity, rule_id, line, message}".
type Encoded struct {
	Severity string `json:"severity"`
	RuleID   string `json:"rule_id"`
	Phase    string `json:"phase"`
	Line     int    `json:"line"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

func (d Diagnostic) Encode() Encoded {
	return Encoded{
		Severity: string(d.Severity),
		RuleID:   d.Code,
		Phase:    string(d.Phase()),
		Line:     d.Line,
		Message:  d.Message,
		Fix:      d.Fix,
	}
}

// MarshalDeterministic renders v as JSON with object keys sorted, so
// repeated runs on identical diagnostics are byte-identical (spec.md
// §8 determinism), mirroring the teacher's schema.MarshalDeterministic.
func MarshalDeterministic(v interface{}) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := encodeSorted(&buf, generic); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeSorted(buf *bytes.Buffer, v interface{}) error {
	switch val := v.(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteByte(':')
			if err := encodeSorted(buf, val[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case []interface{}:
		buf.WriteByte('[')
		for i, e := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeSorted(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(b)
	}
	return nil
}

// EncodeJSONLines renders one compact JSON object per diagnostic,
// newline-separated, per spec.md §6.
func EncodeJSONLines(items []Diagnostic) ([]byte, error) {
	var buf bytes.Buffer
	for _, d := range items {
		line, err := MarshalDeterministic(d.Encode())
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}
