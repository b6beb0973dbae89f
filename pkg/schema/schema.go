// schema.go - struct-tag option schema extraction.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package schema derives option definitions from a tagged struct, so
that an options record can be declared in one place:

	type buildOptions struct {
		Host    string        `options:"--host -h host to build for"`
		Jobs    int           `options:"--jobs -j number of parallel jobs" default:"8"`
		Verbose bool          `options:"--verbose -v be verbose"`
		Timeout time.Duration `options:"--timeout give up after this long"`
		Defines []string      `options:"--define add one name=value define"`
		All     schema.Void   `options:"--all shorthand for the full set" expand:"--verbose --jobs=16"`
	}

The `options` tag declares the long name, the optional single-char
abbreviation, and the help text:

	[--long] [-s] [--] help text

An empty option (- or --) terminates option declarations so the help
text may itself start with a dash. A tag of just "-" skips the field.
When the tag is missing the declaration is auto-generated from the
field name: a single-letter field becomes an abbreviation, anything
longer becomes a long name.

Auxiliary tags refine the definition:

	default:"8"            unconverted default value
	expand:"--a=1 --b=2"   expansion tokens (shell quoting rules)
	implies:"--x=1"        implicit requirement tokens
	deprecated:"message"   deprecation warning (may be empty)
	wrapper:"true"         the value is an option token to re-parse
	internal:"true"        hidden from user-supplied input
	category:"output"      usage listing group
	tags:"a,b"             opaque metadata tags

Field types map to option kinds: bool is a boolean option; [Void] is
nullary; string, int, int64, float64, [time.Duration] are typed with
the matching built-in converter; []string accumulates repeated
occurrences. Prototype field values survive into materialized
instances as Go-side defaults.
*/
package schema

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/buildtool/options"
	"github.com/buildtool/options/pkg/assert"
	"github.com/kballard/go-shellquote"
)

// Void is the field type of nullary options, which carry no value.
type Void struct{}

// Describe extracts an [options.Schema] from the tagged fields of
// the prototype struct. The prototype's field values are preserved
// by the schema constructor, so they act as Go-side defaults.
func Describe[T any](proto *T) (*options.Schema, error) {
	v := reflect.ValueOf(proto).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %T is not a pointer to struct", proto)
	}
	t := v.Type()

	sch := &options.Schema{
		Name:        t.Name(),
		Definitions: nil,
		New: func() any {
			fresh := reflect.New(t)
			fresh.Elem().Set(reflect.ValueOf(proto).Elem())
			return fresh.Interface()
		},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("options")
		if tag == "-" || !v.Field(i).CanSet() {
			continue
		}
		def, err := describeField(field, tag, i)
		if err != nil {
			return nil, err
		}
		sch.Definitions = append(sch.Definitions, def)
	}
	return sch, nil
}

// MustDescribe is like [Describe] but asserts on failure.
func MustDescribe[T any](proto *T) *options.Schema {
	return assert.NotError1(Describe(proto))
}

// Materialize populates a fresh instance of the schema record from
// the parser's value store.
func Materialize[T any](px *options.Parser, sch *options.Schema) *T {
	return px.Materialize(sch).(*T)
}

func describeField(field reflect.StructField, tag string, index int) (*options.OptionDefinition, error) {
	parsed, err := parseTag(tag)
	if err != nil {
		return nil, fmt.Errorf("schema: field %s: %w", field.Name, err)
	}
	if parsed == nil {
		parsed = autoTag(field.Name)
	}

	def := &options.OptionDefinition{
		Name:   parsed.long,
		Abbrev: parsed.short,
		Help:   parsed.help,
	}
	// Definitions are registered by long name; synthesize one for
	// abbreviation-only declarations.
	if def.Name == "" {
		def.Name = strings.ToLower(field.Name)
	}

	if err := applyFieldType(def, field.Type, index); err != nil {
		return nil, fmt.Errorf("schema: field %s: %w", field.Name, err)
	}

	def.DefaultValue = field.Tag.Get("default")
	def.Category = field.Tag.Get("category")
	if tags := field.Tag.Get("tags"); tags != "" {
		def.MetadataTags = strings.Split(tags, ",")
	}
	if warning, ok := field.Tag.Lookup("deprecated"); ok {
		def.Deprecated = true
		def.DeprecationWarning = warning
	}
	def.Internal = field.Tag.Get("internal") == "true"
	def.Wrapper = field.Tag.Get("wrapper") == "true"
	if expand, ok := field.Tag.Lookup("expand"); ok {
		tokens, err := shellquote.Split(expand)
		if err != nil {
			return nil, fmt.Errorf("schema: field %s: bad expand tag: %w", field.Name, err)
		}
		def.Expansion = tokens
	}
	if implies, ok := field.Tag.Lookup("implies"); ok {
		tokens, err := shellquote.Split(implies)
		if err != nil {
			return nil, fmt.Errorf("schema: field %s: bad implies tag: %w", field.Name, err)
		}
		def.ImplicitRequirements = tokens
	}
	return def, nil
}

var voidType = reflect.TypeOf(Void{})
var durationType = reflect.TypeOf(time.Duration(0))

// applyFieldType fills in the kind, converter, and setter derived
// from the Go type of the field.
func applyFieldType(def *options.OptionDefinition, t reflect.Type, index int) error {
	switch {
	case t == voidType:
		def.Kind = options.KindVoid
		return nil
	case t == durationType:
		def.Kind = options.KindTyped
		def.Converter = options.DurationConverter
	case t.Kind() == reflect.Bool:
		def.Kind = options.KindBool
	case t.Kind() == reflect.String:
		def.Kind = options.KindTyped
		def.Converter = options.StringConverter
	case t.Kind() == reflect.Int:
		def.Kind = options.KindTyped
		def.Converter = options.IntConverter
	case t.Kind() == reflect.Int64:
		def.Kind = options.KindTyped
		def.Converter = options.Int64Converter
	case t.Kind() == reflect.Float64:
		def.Kind = options.KindTyped
		def.Converter = options.Float64Converter
	case t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String:
		def.Kind = options.KindTyped
		def.Converter = options.StringConverter
		def.AllowsMultiple = true
	default:
		return fmt.Errorf("unsupported option field type: %s", t)
	}
	def.Setter = func(instance any, value any) error {
		v := reflect.ValueOf(instance)
		if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("schema: %T is not a pointer to struct", instance)
		}
		return assign(v.Elem().Field(index), value)
	}
	return nil
}

// assign stores a converted value into a struct field.
func assign(fv reflect.Value, value any) error {
	if list, ok := value.([]any); ok && fv.Kind() == reflect.Slice {
		out := reflect.MakeSlice(fv.Type(), 0, len(list))
		for _, item := range list {
			iv := reflect.ValueOf(item)
			if !iv.Type().AssignableTo(fv.Type().Elem()) {
				return fmt.Errorf("schema: cannot append %T to %s", item, fv.Type())
			}
			out = reflect.Append(out, iv)
		}
		fv.Set(out)
		return nil
	}
	rv := reflect.ValueOf(value)
	if !rv.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("schema: cannot assign %T to %s", value, fv.Type())
	}
	fv.Set(rv)
	return nil
}
