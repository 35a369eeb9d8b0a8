// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// ValidationErrors maps a field name to the list of problems found in it.
// A nil or empty map means the input is valid.
type ValidationErrors map[string][]string

// Add appends msg to the problems recorded for field.
func (v ValidationErrors) Add(field, msg string) {
	v[field] = append(v[field], msg)
}

// Fields returns the names of the invalid fields in a stable order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error renders one "field: message" pair per line, fields sorted by name.
func (v ValidationErrors) Error() string {
	var b strings.Builder
	for i, f := range v.Fields() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f)
		b.WriteString(": ")
		b.WriteString(strings.Join(v[f], ", "))
	}
	return b.String()
}
