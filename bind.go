// bind.go - schema materialization.
// SPDX-License-Identifier: GPL-3.0-or-later

package options

import "github.com/buildtool/options/pkg/assert"

// Materialize constructs a fresh instance of the given schema record
// and populates its fields from the value store, falling back to
// declared defaults and, past those, to the prototype's own field
// values.
//
// Schemas are presumed validated at registration time: construction
// or field assignment failures indicate an internal state bug and
// terminate the program.
func (px *Parser) Materialize(s *Schema) any {
	assert.True(s.New != nil, "schema has no constructor")
	instance := s.New()
	assert.True(instance != nil, "schema constructor returned nil")

	for _, def := range s.Definitions {
		if def.Setter == nil {
			continue
		}
		if desc := px.values[def]; desc != nil {
			value := assert.NotError1(desc.GetValue())
			if value == nil {
				continue
			}
			assert.NotError(def.Setter(instance, value))
			continue
		}
		if def.DefaultValue != "" {
			cv := def.converter()
			if cv == nil {
				continue
			}
			value := assert.NotError1(cv.Convert(def.DefaultValue))
			assert.NotError(def.Setter(instance, value))
		}
	}
	return instance
}
