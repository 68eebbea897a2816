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

// Package pathtools provides filesystem helpers shared by the resource
// compilation pipeline.
package pathtools

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Exists returns whether name exists and whether it is a directory.  A
// stat error other than non-existence is returned as-is.
func Exists(name string) (exists bool, isDir bool, err error) {
	stat, err := os.Stat(name)
	if err == nil {
		return true, stat.IsDir(), nil
	} else if os.IsNotExist(err) {
		return false, false, nil
	} else {
		return false, false, err
	}
}

// CopyFile copies the contents of src to dst, creating or truncating dst.
// Parent directories of dst must already exist.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	_, err = io.Copy(out, in)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	return err
}

// TrimExtensions returns name up to but not including its first '.', or name
// unchanged if it contains none.  Unlike filepath.Ext this strips compound
// extensions ("strings.donottranslate.xml" becomes "strings").
func TrimExtensions(name string) string {
	dot := strings.Index(name, ".")
	if dot == -1 {
		return name
	}
	return name[:dot]
}

// RootRelative returns path relative to its volume/root if it is absolute,
// and path unchanged otherwise.  The result is always usable as the trailing
// component of a filepath.Join.
func RootRelative(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	vol := filepath.VolumeName(path)
	return strings.TrimLeft(path[len(vol):], string(filepath.Separator))
}
