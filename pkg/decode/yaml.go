package decode

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/elves/assoc/pkg/assoc"
)

var (
	errAliasCycle        = errors.New("alias refers to a node that contains it")
	errExcessiveAliasing = errors.New("document contains excessive aliasing")
)

// YAML decodes the first document of a YAML stream. Scalars decode as
// yaml.v3 decodes them into an interface value, and aliases are resolved.
// Mapping keys may be of any type when decoding to pairs; with hash objects
// they must be hashable, or an assoc.InvalidKeyError is returned.
//
// An alias that refers to a node containing it is a SyntaxError, and so is a
// document whose aliases expand to far more nodes than it spells out.
func YAML(data []byte, cfg Config) (any, error) {
	d, err := newDecoder(cfg)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, SyntaxError{Format: "yaml", Err: err}
	}
	y := &yamlDecoder{decoder: d, expanding: map[*yaml.Node]bool{}}
	return y.decode(&doc)
}

// yamlDecoder tracks alias expansion with the same budget yaml.v3 applies when
// decoding into Go values.
type yamlDecoder struct {
	*decoder
	expanding  map[*yaml.Node]bool
	aliasDepth int
	nodes      int
	aliased    int
}

// allowedAliasRatio is the largest share of decoded nodes that may come from
// alias expansion, shrinking from 99% for small documents to 10% for large
// ones.
func allowedAliasRatio(nodes int) float64 {
	switch {
	case nodes <= 400000:
		return 0.99
	case nodes >= 4000000:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(nodes-400000)/3600000)
	}
}

func (d *yamlDecoder) decode(n *yaml.Node) (any, error) {
	d.nodes++
	if d.aliasDepth > 0 {
		d.aliased++
	}
	if d.aliased > 100 && d.nodes > 1000 &&
		float64(d.aliased)/float64(d.nodes) > allowedAliasRatio(d.nodes) {
		return nil, SyntaxError{Format: "yaml", Err: errExcessiveAliasing}
	}
	switch n.Kind {
	case 0:
		// Empty stream.
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		if d.expanding[n.Alias] {
			return nil, SyntaxError{Format: "yaml",
				Err: fmt.Errorf("line %d: %w", n.Line, errAliasCycle)}
		}
		d.expanding[n.Alias] = true
		d.aliasDepth++
		v, err := d.decode(n.Alias)
		d.aliasDepth--
		delete(d.expanding, n.Alias)
		return v, err
	case yaml.SequenceNode:
		vs := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := d.decode(child)
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
		return vs, nil
	case yaml.MappingNode:
		kvs := make([]any, 0, len(n.Content))
		for _, child := range n.Content {
			if child.Tag == "!!merge" {
				d.log.Debug().Int("line", child.Line).Msg("merge key kept as an ordinary key")
			}
			v, err := d.decode(child)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, v)
		}
		if d.objects == assoc.HashMapping {
			return assoc.MakeHash(kvs...)
		}
		return assoc.MakePairs(kvs...)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unknown yaml node kind %v", n.Line, n.Kind)
	}
}
