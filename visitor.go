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
	"os"
	"path/filepath"
	"strings"

	"github.com/google/rescompile/pathtools"
)

// visitFile classifies one file discovered under a queued resource root and
// registers at most one compile task for it.  The walk is single-threaded,
// so the copy performed for a qualifier rename is complete before any later
// visit can observe it, and the existence check cannot race with the copy.
func (c *Compiler) visitFile(file string) error {
	name := filepath.Base(file)
	if strings.HasPrefix(name, ".") {
		return nil
	}

	qualifierDir := filepath.Dir(file)  // <root>/<type>[-<qualifiers>]
	resRoot := filepath.Dir(qualifierDir)

	// The output location mirrors the input layout two levels up from the
	// file, past the qualifier directory and the resource root.
	outputDir := filepath.Join(c.outputDir, pathtools.RootRelative(resRoot))
	if err := os.MkdirAll(outputDir, 0777); err != nil {
		return err
	}

	segment := filepath.Base(qualifierDir)
	fixed := fixRegionQualifier(segment)
	if fixed == segment {
		c.register(file, outputDir)
		return nil
	}

	fixedPath := filepath.Join(resRoot, fixed, name)
	exists, _, err := pathtools.Exists(fixedPath)
	if err != nil {
		return err
	}
	if exists {
		// Resources for the corrected qualifiers already exist; compiling
		// this file too would define the same qualifier set twice.
		c.logger.Printf("skipping resource compilation for %s: it has the same qualifiers as %s."+
			" The locale identifier is not supported by the resource compiler.", file, fixedPath)
		return nil
	}

	c.logger.Printf("the locale identifier in %s is not supported by the resource compiler."+
		" Converting to %s.", file, fixedPath)

	copyDir := filepath.Join(outputDir, fixed)
	if err := os.MkdirAll(copyDir, 0777); err != nil {
		return err
	}
	copied := filepath.Join(copyDir, name)
	if err := pathtools.CopyFile(file, copied); err != nil {
		return err
	}
	c.register(copied, outputDir)
	return nil
}
