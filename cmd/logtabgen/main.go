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

// Command logtabgen writes the bucket tables used by the logarithm kernels
// in hal/core.
//
// Usage:
//
//	logtabgen -output . -pkg core -types float32,float64
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/logtabgen -output . -pkg core -types all
//
// One array is emitted per element type, named logTab<Type>, holding the
// interleaved (log, reciprocal) pairs built by internal/logtab.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "", "Output package name (required)")
	fileName   = flag.String("file", "logtab.go", "Output file name")
	types      = flag.String("types", "all", "Comma-separated element types ("+strings.Join(AvailableTypes(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	if *packageOut == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	typeList := parseTypes(*types)
	if len(typeList) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid types specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		FileName:  *fileName,
		Package:   *packageOut,
		Types:     typeList,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated log tables for types: %s\n", strings.Join(typeList, ", "))
}

func parseTypes(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return AvailableTypes()
	}
	return result
}
