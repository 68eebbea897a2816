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
	"fmt"
	"strings"
)

// A FileError describes a problem that was encountered while compiling a
// particular resource file.
type FileError struct {
	File string // the resource file being compiled
	Err  error  // the error that occurred
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// A ToolError describes a compiler subprocess that exited with a non-zero
// status.  Output holds the subprocess's combined stdout and stderr.
type ToolError struct {
	Output string
	Err    error // the underlying exec error
}

func (e *ToolError) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s:\n%s", e.Err, out)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// A MissingArtifactError describes a compiler subprocess that reported
// success without producing the expected output file.
type MissingArtifactError struct {
	Path string
}

func (e *MissingArtifactError) Error() string {
	return fmt.Sprintf("%s does not exist after the resource compiler ran", e.Path)
}

// A CompileError collects every per-file failure from one invocation.  No
// individual cause is dropped or elevated above the others.
type CompileError struct {
	Errs []error
}

func (e *CompileError) Unwrap() []error {
	return e.Errs
}

func (e *CompileError) Error() string {
	if len(e.Errs) == 1 {
		return fmt.Sprintf("resource compilation failed: %s", e.Errs[0])
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "resource compilation failed with %d errors:", len(e.Errs))
	for _, err := range e.Errs {
		sb.WriteString("\n\t")
		sb.WriteString(err.Error())
	}
	return sb.String()
}
