// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build ignore

// gen.go writes arrays.gen.go, the Array constraint enumerating the
// fixed-size arrays of every scalar kind.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

var (
	scalars = []string{
		"int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64", "uintptr",
		"float32", "float64", "complex64", "complex128",
	}
	lengths = []int{2, 3, 4, 8, 16}
)

const tmpl = `{{.Header}}
// Code generated by gen.go. DO NOT EDIT.

package trivial

// Array is satisfied by fixed-size arrays of the scalar kinds, and by
// named types whose underlying type is such an array.
type Array interface {
{{- range $i, $n := .Lengths}}{{if $i}} |{{end}}
	{{range $j, $s := $.Scalars}}{{if $j}} | {{end}}~[{{$n}}]{{$s}}{{end}}
{{- end}}
}
`

func main() {
	src, err := os.ReadFile("trivial.go")
	if err != nil {
		log.Fatal(err)
	}
	header := string(src[:strings.Index(string(src), "\n\n")+1])

	var buf bytes.Buffer
	t := template.Must(template.New("arrays").Parse(tmpl))
	err = t.Execute(&buf, map[string]interface{}{
		"Header":  header,
		"Scalars": scalars,
		"Lengths": lengths,
	})
	if err != nil {
		log.Fatal(err)
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("arrays.gen.go", out, 0o644); err != nil {
		log.Fatal(err)
	}
}
