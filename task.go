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
	"log"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/rescompile/pathtools"
)

// A compileTask compiles one resource file into outputDir.  Tasks are
// immutable once built and independent of each other: each one writes only
// to paths derived from its own file name.
type compileTask struct {
	file           string // the effective source file, post qualifier fixing
	outputDir      string
	aapt2          string
	toolVersion    string
	pseudoLocalize bool
	logger         *log.Logger
}

// run invokes the resource compiler subprocess on the task's file and
// returns the paths it produced: the attributes side-file if the root
// element of a values file carries attributes, then the compiled artifact.
func (t *compileTask) run(ctx context.Context) ([]string, error) {
	args := []string{"compile", "-v", "--legacy"}
	if t.pseudoLocalize {
		args = append(args, "--pseudo-localize")
	}
	args = append(args, "-o", t.outputDir, t.file)

	cmd := exec.CommandContext(ctx, t.aapt2, args...)
	out, err := cmd.CombinedOutput()
	t.logger.Printf("compiling %s (build tools %s): %s %s\n%s",
		t.file, t.toolVersion, t.aapt2, strings.Join(args, " "), out)
	if err != nil {
		return nil, &ToolError{Output: string(out), Err: err}
	}

	resType := filepath.Base(filepath.Dir(t.file))
	filename := filepath.Base(t.file)

	var results []string
	if strings.HasPrefix(resType, "values") {
		// The subprocess strips namespaces and attributes from the
		// resources tag, so recover them from the original file.
		records, err := rootAttributeRecords(t.file, resType)
		if err != nil {
			return nil, err
		}
		if len(records) > 0 {
			attrPath := filepath.Join(t.outputDir, resType+"_"+filename+".attributes")
			if err := writeAttributes(attrPath, records); err != nil {
				return nil, err
			}
			results = append(results, attrPath)
		}
	}

	// Exit status 0 is not trusted on its own.  The expected artifact
	// path is a pure function of the type directory and file name, so
	// its absence means the tool contract was violated.
	compiled := filepath.Join(t.outputDir, compiledName(resType, filename))
	exists, _, err := pathtools.Exists(compiled)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &MissingArtifactError{Path: compiled}
	}
	return append(results, compiled), nil
}

// compiledName returns the name of the artifact the resource compiler is
// expected to produce for filename within a resType directory.
func compiledName(resType, filename string) string {
	if strings.HasPrefix(resType, "values") {
		return resType + "_" + pathtools.TrimExtensions(filename) + ".arsc"
	}
	return resType + "_" + filename + ".flat"
}
