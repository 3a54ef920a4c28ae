// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ajroetker/go-hal/internal/logtab"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Generator emits one Go file holding a log table per element type.
type Generator struct {
	OutputDir string   // Directory to write into
	FileName  string   // Output file name; defaults to logtab.go
	Package   string   // Package clause of the emitted file
	Types     []string // Element types, each one of AvailableTypes()
}

// AvailableTypes returns the element types a table can be emitted for.
func AvailableTypes() []string {
	return []string{"float32", "float64"}
}

// Run writes the generated file.
func (g *Generator) Run() error {
	src, err := g.Source()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(g.path(), src, 0644); err != nil {
		return fmt.Errorf("write tables: %w", err)
	}
	return nil
}

// Source returns the formatted contents of the generated file.
func (g *Generator) Source() ([]byte, error) {
	if len(g.Types) == 0 {
		return nil, fmt.Errorf("no types specified")
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by logtabgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.Package)

	for _, typ := range g.Types {
		name := TableName(typ)
		fmt.Fprintf(&buf, "\n// %s holds %d interleaved (log, reciprocal) bucket pairs.\n",
			name, logtab.Buckets)
		fmt.Fprintf(&buf, "var %s = [%d]%s{\n", name, logtab.Size, typ)
		switch typ {
		case "float32":
			writePairs(&buf, logtab.Build[float32](), 32)
		case "float64":
			writePairs(&buf, logtab.Build[float64](), 64)
		default:
			return nil, fmt.Errorf("unsupported type %q (want one of %v)", typ, AvailableTypes())
		}
		fmt.Fprintf(&buf, "}\n")
	}

	formatted, err := imports.Process(g.path(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format tables: %w", err)
	}
	return formatted, nil
}

func (g *Generator) path() string {
	name := g.FileName
	if name == "" {
		name = "logtab.go"
	}
	return filepath.Join(g.OutputDir, name)
}

// TableName returns the identifier of the table for typ, e.g. logTabFloat32.
func TableName(typ string) string {
	return "logTab" + cases.Title(language.English).String(typ)
}

// writePairs writes one (log, reciprocal) pair per line using the shortest
// decimal form that reads back to the same value.
func writePairs[T float32 | float64](w io.Writer, tab []T, bitSize int) {
	for i := 0; i < len(tab); i += 2 {
		fmt.Fprintf(w, "\t%s, %s,\n",
			strconv.FormatFloat(float64(tab[i]), 'g', -1, bitSize),
			strconv.FormatFloat(float64(tab[i+1]), 'g', -1, bitSize))
	}
}
