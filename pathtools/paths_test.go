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

package pathtools

import (
	"os"
	"path/filepath"
	"testing"
)

var trimExtensionsTestCases = []struct {
	in  string
	out string
}{
	{"strings.xml", "strings"},
	{"strings.donottranslate.xml", "strings"},
	{"icon.png", "icon"},
	{"raw", "raw"},
	{".hidden", ""},
}

func TestTrimExtensions(t *testing.T) {
	for _, testCase := range trimExtensionsTestCases {
		got := TrimExtensions(testCase.in)
		if got != testCase.out {
			t.Errorf("TrimExtensions(%q) = %q, want %q", testCase.in, got, testCase.out)
		}
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0666); err != nil {
		t.Fatal(err)
	}

	exists, isDir, err := Exists(file)
	if err != nil || !exists || isDir {
		t.Errorf("Exists(%q) = %v, %v, %v, want true, false, nil", file, exists, isDir, err)
	}

	exists, isDir, err = Exists(dir)
	if err != nil || !exists || !isDir {
		t.Errorf("Exists(%q) = %v, %v, %v, want true, true, nil", dir, exists, isDir, err)
	}

	exists, _, err = Exists(filepath.Join(dir, "missing"))
	if err != nil || exists {
		t.Errorf("Exists(missing) = %v, %v, want false, nil", exists, err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.xml")
	dst := filepath.Join(dir, "dst.xml")
	want := []byte("<resources/>")
	if err := os.WriteFile(src, want, 0666); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(want) {
		t.Errorf("copied contents = %q, want %q", got, want)
	}
}

func TestRootRelative(t *testing.T) {
	if got := RootRelative("res/values/strings.xml"); got != "res/values/strings.xml" {
		t.Errorf("RootRelative(relative) = %q", got)
	}
	abs := string(filepath.Separator) + filepath.Join("tmp", "res")
	if got := RootRelative(abs); got != filepath.Join("tmp", "res") {
		t.Errorf("RootRelative(%q) = %q", abs, got)
	}
}
