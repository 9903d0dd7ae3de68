package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// jsonDoc is a JSON object edited in place with its key order preserved.
// Edits that fail are remembered and reported by Marshal.
type jsonDoc struct {
	data []byte
	err  error
}

func parseJSONDoc(data []byte) (*jsonDoc, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("parsing JSON: invalid document")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, errors.New("parsing JSON: top-level value is not an object")
	}
	return &jsonDoc{data: bytes.Clone(data)}, nil
}

// object makes sure every key along path holds an object, replacing
// anything else it finds there.
func (d *jsonDoc) object(path ...string) {
	for i := range path {
		p := jsonPath(path[:i+1]...)
		if gjson.GetBytes(d.data, p).IsObject() {
			continue
		}
		d.apply(sjson.SetRawBytes(d.data, p, []byte("{}")))
	}
}

func (d *jsonDoc) setString(key, value string, path ...string) {
	d.object(path...)
	d.apply(sjson.SetRawBytes(d.data, keyPath(path, key), quoteJSON(value)))
}

func (d *jsonDoc) delete(key string, path ...string) {
	if len(path) > 0 && !gjson.GetBytes(d.data, jsonPath(path...)).IsObject() {
		return
	}
	d.apply(sjson.DeleteBytes(d.data, keyPath(path, key)))
}

// mapStrings rewrites every string value directly under path.
func (d *jsonDoc) mapStrings(fn func(string) string, path ...string) {
	obj := gjson.ParseBytes(d.data)
	if len(path) > 0 {
		obj = gjson.GetBytes(d.data, jsonPath(path...))
	}
	if !obj.IsObject() {
		return
	}
	edits := map[string]string{}
	var keys []string
	obj.ForEach(func(k, v gjson.Result) bool {
		if v.Type == gjson.String {
			keys = append(keys, k.String())
			edits[k.String()] = fn(v.String())
		}
		return true
	})
	for _, k := range keys {
		d.apply(sjson.SetRawBytes(d.data, keyPath(path, k), quoteJSON(edits[k])))
	}
}

func (d *jsonDoc) apply(data []byte, err error) {
	if d.err != nil {
		return
	}
	if err != nil {
		d.err = fmt.Errorf("editing JSON: %w", err)
		return
	}
	d.data = data
}

// Marshal renders the document the way JSON.stringify(v, null, 2) does,
// followed by a newline.
func (d *jsonDoc) Marshal() ([]byte, error) {
	if d.err != nil {
		return nil, d.err
	}
	out := pretty.PrettyOptions(d.data, &pretty.Options{Indent: "  "})
	out = bytes.TrimRight(out, "\n")
	return append(out, '\n'), nil
}

// jsonPath joins keys into a gjson/sjson path, escaping every character
// the path syntax could read as an operator.
func jsonPath(keys ...string) string {
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte('.')
		}
		for _, r := range key {
			if !isPlainPathRune(r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keyPath(path []string, key string) string {
	if len(path) == 0 {
		return jsonPath(key)
	}
	return jsonPath(path...) + "." + jsonPath(key)
}

func isPlainPathRune(r rune) bool {
	return r == '-' || r == '_' || r >= 0x80 ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func quoteJSON(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
