package decode

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/elves/assoc/pkg/assoc"
)

// JSON decodes a JSON document. Integral numbers that fit in an int decode to
// int, other numbers to float64. Duplicate object keys are all kept when
// decoding to pairs, where the first one shadows the rest; with hash objects
// the last one wins.
func JSON(data []byte, cfg Config) (any, error) {
	d, err := newDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, SyntaxError{Format: "json"}
	}
	return d.json(gjson.ParseBytes(data)), nil
}

func (d *decoder) json(v gjson.Result) any {
	switch {
	case v.IsObject():
		return d.jsonObject(v)
	case v.IsArray():
		vs := []any{}
		v.ForEach(func(_, elem gjson.Result) bool {
			vs = append(vs, d.json(elem))
			return true
		})
		return vs
	case v.Type == gjson.False:
		return false
	case v.Type == gjson.True:
		return true
	case v.Type == gjson.Number:
		return d.jsonNumber(v)
	case v.Type == gjson.String:
		return v.Str
	default:
		return nil
	}
}

func (d *decoder) jsonObject(v gjson.Result) any {
	if d.objects == assoc.HashMapping {
		m := map[string]any{}
		v.ForEach(func(key, value gjson.Result) bool {
			if _, dup := m[key.Str]; dup {
				d.log.Debug().Str("key", key.Str).Msg("duplicate object key, keeping the last value")
			}
			m[key.Str] = d.json(value)
			return true
		})
		return m
	}
	ps := []assoc.Pair{}
	seen := map[string]bool{}
	v.ForEach(func(key, value gjson.Result) bool {
		if seen[key.Str] {
			d.log.Debug().Str("key", key.Str).Msg("duplicate object key, shadowed by the first one")
		}
		seen[key.Str] = true
		ps = append(ps, assoc.Pair{Key: key.Str, Value: d.json(value)})
		return true
	})
	return ps
}

func (d *decoder) jsonNumber(v gjson.Result) any {
	if !strings.ContainsAny(v.Raw, ".eE") {
		if i, err := strconv.Atoi(v.Raw); err == nil {
			return i
		}
		d.log.Debug().Str("number", v.Raw).Msg("integer out of range, decoding as float")
	}
	return v.Num
}
