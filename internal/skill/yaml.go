package skill

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// maxYAMLNodes bounds how many nodes a document may expand to once aliases
// are followed.
const maxYAMLNodes = 100_000

// yamlToJSON re-encodes a YAML document as JSON. Mapping order is kept so
// variables can still refer to the ones declared before them.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	w := &yamlWriter{visiting: make(map[*yaml.Node]bool), budget: maxYAMLNodes}
	if err := w.write(&doc); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

type yamlWriter struct {
	buf      bytes.Buffer
	visiting map[*yaml.Node]bool
	budget   int
}

func (w *yamlWriter) write(n *yaml.Node) error {
	if w.budget--; w.budget < 0 {
		return fmt.Errorf("document expands to more than %d nodes", maxYAMLNodes)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			w.buf.WriteString("null")
			return nil
		}
		return w.write(n.Content[0])
	case yaml.MappingNode:
		return w.enter(n, func() error {
			w.buf.WriteByte('{')
			for i := 0; i+1 < len(n.Content); i += 2 {
				if i > 0 {
					w.buf.WriteByte(',')
				}
				key, err := json.Marshal(n.Content[i].Value)
				if err != nil {
					return err
				}
				w.buf.Write(key)
				w.buf.WriteByte(':')
				if err := w.write(n.Content[i+1]); err != nil {
					return err
				}
			}
			w.buf.WriteByte('}')
			return nil
		})
	case yaml.SequenceNode:
		return w.enter(n, func() error {
			w.buf.WriteByte('[')
			for i, c := range n.Content {
				if i > 0 {
					w.buf.WriteByte(',')
				}
				if err := w.write(c); err != nil {
					return err
				}
			}
			w.buf.WriteByte(']')
			return nil
		})
	case yaml.AliasNode:
		if n.Alias == nil {
			return fmt.Errorf("unknown alias *%s", n.Value)
		}
		if w.visiting[n.Alias] {
			return fmt.Errorf("recursive alias *%s", n.Value)
		}
		return w.write(n.Alias)
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		w.buf.Write(raw)
	default:
		w.buf.WriteString("null")
	}
	return nil
}

// enter marks a collection node as open while fn writes its children so an
// alias pointing back at it is detected.
func (w *yamlWriter) enter(n *yaml.Node, fn func() error) error {
	w.visiting[n] = true
	defer delete(w.visiting, n)
	return fn()
}
