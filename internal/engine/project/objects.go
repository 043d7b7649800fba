// Package project implements the project artifact synthesizer: it turns the
// per-platform effective configurations and the aggregated plugin
// contributions into the text of the native project descriptor.
//
// The descriptor is built as a typed intermediate tree (sections, objects,
// fields) and serialized once at the end, so the string-literal escaping
// rule lives in exactly one place.
package project

import (
	"fmt"
	"sort"
	"strings"
)

// Value is one field value in the descriptor tree: Str, Ref, List, or Dict.
type Value interface {
	render(b *strings.Builder, indent int, inline bool)
}

// Str is a literal string value, quoted and escaped on render as the format
// requires.
type Str string

func (s Str) render(b *strings.Builder, _ int, _ bool) {
	b.WriteString(quote(string(s)))
}

// Ref is a reference to another object by identifier, rendered with its
// display comment.
type Ref struct {
	ID      string
	Comment string
}

func (r Ref) render(b *strings.Builder, _ int, _ bool) {
	b.WriteString(r.ID)
	if r.Comment != "" {
		b.WriteString(" /* ")
		b.WriteString(r.Comment)
		b.WriteString(" */")
	}
}

// List is an ordered list value.
type List []Value

func (l List) render(b *strings.Builder, indent int, inline bool) {
	if inline {
		b.WriteString("(")
		for _, v := range l {
			v.render(b, indent, true)
			b.WriteString(", ")
		}
		b.WriteString(")")
		return
	}
	b.WriteString("(\n")
	for _, v := range l {
		writeIndent(b, indent+1)
		v.render(b, indent+1, false)
		b.WriteString(",\n")
	}
	writeIndent(b, indent)
	b.WriteString(")")
}

// Field is one key/value pair inside a Dict.
type Field struct {
	Key   string
	Value Value
}

// Dict is an ordered dictionary value. Field order is the insertion order
// chosen by the synthesizer, which is itself deterministic.
type Dict struct {
	Fields []Field
}

// Set appends a field.
func (d *Dict) Set(key string, v Value) *Dict {
	d.Fields = append(d.Fields, Field{Key: key, Value: v})
	return d
}

func (d *Dict) render(b *strings.Builder, indent int, inline bool) {
	if inline {
		b.WriteString("{")
		for _, f := range d.Fields {
			b.WriteString(quote(f.Key))
			b.WriteString(" = ")
			f.Value.render(b, indent, true)
			b.WriteString("; ")
		}
		b.WriteString("}")
		return
	}
	b.WriteString("{\n")
	for _, f := range d.Fields {
		writeIndent(b, indent+1)
		b.WriteString(quote(f.Key))
		b.WriteString(" = ")
		f.Value.render(b, indent+1, false)
		b.WriteString(";\n")
	}
	writeIndent(b, indent)
	b.WriteString("}")
}

// Object is one identified object in the descriptor's object graph.
type Object struct {
	ID      string
	Comment string
	ISA     string
	Fields  Dict
}

// Set appends a field to the object body.
func (o *Object) Set(key string, v Value) *Object {
	o.Fields.Set(key, v)
	return o
}

// inlineISAs lists the object kinds the descriptor format conventionally
// renders on a single line.
var inlineISAs = map[string]bool{
	"PBXBuildFile":     true,
	"PBXFileReference": true,
}

// Graph is the full object graph plus the root document fields.
type Graph struct {
	objects    []*Object
	rootObject Ref
}

// Add registers an object and returns it for further field population.
func (g *Graph) Add(id, comment, isa string) *Object {
	o := &Object{ID: id, Comment: comment, ISA: isa}
	g.objects = append(g.objects, o)
	return o
}

// SetRoot sets the root object reference.
func (g *Graph) SetRoot(r Ref) {
	g.rootObject = r
}

// Serialize renders the graph in the descriptor's line-oriented text format:
// objects grouped into sections by kind, sections delimited with comment
// markers, objects within a section ordered by identifier.
func (g *Graph) Serialize() string {
	var b strings.Builder
	b.WriteString("// !$*UTF8*$!\n{\n")
	writeIndent(&b, 1)
	b.WriteString("archiveVersion = 1;\n")
	writeIndent(&b, 1)
	b.WriteString("classes = {\n")
	writeIndent(&b, 1)
	b.WriteString("};\n")
	writeIndent(&b, 1)
	b.WriteString("objectVersion = 56;\n")
	writeIndent(&b, 1)
	b.WriteString("objects = {\n")

	isas := make([]string, 0, 8)
	byISA := make(map[string][]*Object)
	for _, o := range g.objects {
		if len(byISA[o.ISA]) == 0 {
			isas = append(isas, o.ISA)
		}
		byISA[o.ISA] = append(byISA[o.ISA], o)
	}
	sort.Strings(isas)

	for _, isa := range isas {
		objs := byISA[isa]
		sort.Slice(objs, func(i, j int) bool { return objs[i].ID < objs[j].ID })

		fmt.Fprintf(&b, "\n/* Begin %s section */\n", isa)
		for _, o := range objs {
			writeIndent(&b, 2)
			b.WriteString(o.ID)
			if o.Comment != "" {
				b.WriteString(" /* ")
				b.WriteString(o.Comment)
				b.WriteString(" */")
			}
			b.WriteString(" = ")

			body := Dict{}
			body.Set("isa", Str(o.ISA))
			body.Fields = append(body.Fields, o.Fields.Fields...)

			if inlineISAs[isa] {
				body.render(&b, 2, true)
			} else {
				body.render(&b, 2, false)
			}
			b.WriteString(";\n")
		}
		fmt.Fprintf(&b, "/* End %s section */\n", isa)
	}

	writeIndent(&b, 1)
	b.WriteString("};\n")
	writeIndent(&b, 1)
	b.WriteString("rootObject = ")
	g.rootObject.render(&b, 1, false)
	b.WriteString(";\n}\n")
	return b.String()
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte('\t')
	}
}

// quote applies the descriptor's string-literal rule: identifiers made of
// safe characters stay bare, everything else is wrapped in quotes with
// backslash escaping. Centralizing this here is what keeps paths with
// spaces, quotes, and backslashes round-trippable.
func quote(s string) string {
	if s != "" && isSafeLiteral(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\', '"':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func isSafeLiteral(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '/' || r == '$':
		default:
			return false
		}
	}
	return true
}
