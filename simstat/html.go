// Copyright 2025 The Simstat Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simstat

import (
	"bytes"
	"html/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(template.FuncMap{
	"format": formatValue,
}).Parse(`
{{- range $table := . -}}
<table class='simstat'>
<caption>{{.Application}}: {{.Y}} vs {{.X}}</caption>
<tr><th>{{.X}}<th>mean<th>min<th>max<th>count
{{range .Groups -}}
<tr><td>{{.Label}}<td>{{format .Summary.Mean}}<td>{{format .Summary.Min}}<td>{{format .Summary.Max}}<td>{{.Summary.Count}}
{{end -}}
</table>
{{end -}}
`))

// FormatHTML appends an HTML formatting of the tables to buf.
func FormatHTML(buf *bytes.Buffer, tables []*Table) {
	err := htmlTemplate.Execute(buf, tables)
	if err != nil {
		// Only possible errors here are template not matching data structure.
		// Don't make caller check - it's our fault.
		panic(err)
	}
}
