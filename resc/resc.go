// Copyright 2017 Google Inc. All rights reserved.
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

// resc compiles one or more Android resource directories with aapt2.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/google/rescompile"
)

var (
	aapt2          = flag.String("aapt2", "aapt2", "path to the aapt2 binary")
	outputDir      = flag.String("o", "", "output directory for compiled artifacts")
	jobs           = flag.Int("j", runtime.NumCPU(), "maximum concurrent aapt2 invocations, 0 for unbounded")
	toolVersion    = flag.String("tool-version", "", "build tools version recorded in diagnostics")
	pseudoLocalize = flag.Bool("pseudo-localize", false, "generate pseudo-localized resources")
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: resc -o <outputDir> [flags] <resourceDir> ...")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *outputDir == "" || flag.NArg() == 0 {
		usage()
	}

	compiler := rescompile.New(*outputDir, *aapt2, rescompile.Options{
		Jobs:           *jobs,
		ToolVersion:    *toolVersion,
		PseudoLocalize: *pseudoLocalize,
		Logger:         log.New(os.Stderr, "resc: ", 0),
	})
	for _, dir := range flag.Args() {
		if err := compiler.QueueDirectory(dir); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	artifacts, err := compiler.CompiledArtifacts(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, artifact := range artifacts {
		fmt.Println(artifact)
	}
}
