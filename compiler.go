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

package rescompile

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Options configures a Compiler beyond its required arguments.
type Options struct {
	// Jobs bounds how many compiler subprocesses run concurrently.
	// Zero or negative means unbounded.
	Jobs int

	// ToolVersion is the build tools version token recorded with each
	// compiler invocation's diagnostic output.
	ToolVersion string

	// PseudoLocalize passes --pseudo-localize to the resource compiler.
	PseudoLocalize bool

	// Logger receives rename/skip warnings and per-invocation subprocess
	// output.  nil discards them.
	Logger *log.Logger
}

// A Compiler drives the resource compiler binary over one or more resource
// directory trees and collects the artifacts it produces.
type Compiler struct {
	outputDir string
	aapt2     string
	opts      Options
	logger    *log.Logger

	tasks []*compileTask
}

// New returns a Compiler that writes artifacts under outputDir using the
// resource compiler binary at aapt2.
func New(outputDir, aapt2 string, opts Options) *Compiler {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Compiler{
		outputDir: outputDir,
		aapt2:     aapt2,
		opts:      opts,
		logger:    logger,
	}
}

// QueueDirectory scans the resource tree rooted at dir and registers one
// compile task per visible file, fixing unsupported locale qualifiers along
// the way.  Multiple directories may be queued before CompiledArtifacts;
// their tasks accumulate into the same result.  A filesystem error aborts
// the scan before anything has been submitted.
func (c *Compiler) QueueDirectory(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		return c.visitFile(path)
	})
}

// register appends a compile task for file.  Registration order is walk
// order and fixes the order of the final artifact list.
func (c *Compiler) register(file, outputDir string) {
	c.tasks = append(c.tasks, &compileTask{
		file:           file,
		outputDir:      outputDir,
		aapt2:          c.aapt2,
		toolVersion:    c.opts.ToolVersion,
		pseudoLocalize: c.opts.PseudoLocalize,
		logger:         c.logger,
	})
}

// CompiledArtifacts runs every queued task and blocks until all of them
// have finished, successfully or not.  A failing task never prevents its
// siblings from running to completion.  On success the returned paths are
// ordered by task registration; if any task failed the successful artifacts
// are discarded and a *CompileError carrying every failure is returned.
func (c *Compiler) CompiledArtifacts(ctx context.Context) ([]string, error) {
	var g errgroup.Group
	if c.opts.Jobs > 0 {
		g.SetLimit(c.opts.Jobs)
	}

	results := make([][]string, len(c.tasks))
	taskErrs := make([]error, len(c.tasks))
	for i, task := range c.tasks {
		i, task := i, task
		g.Go(func() error {
			// Task failures are collected per slot rather than
			// returned, so the group never short-circuits.
			paths, err := task.run(ctx)
			if err != nil {
				taskErrs[i] = &FileError{File: task.file, Err: err}
			} else {
				results[i] = paths
			}
			return nil
		})
	}
	g.Wait()

	var artifacts []string
	var errs []error
	for i := range c.tasks {
		if taskErrs[i] != nil {
			errs = append(errs, taskErrs[i])
			continue
		}
		artifacts = append(artifacts, results[i]...)
	}
	if len(errs) > 0 {
		return nil, &CompileError{Errs: errs}
	}
	return artifacts, nil
}
