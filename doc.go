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

// Package rescompile compiles Android resource directory trees by fanning
// each file out to the platform resource compiler binary (aapt2).
//
// A Compiler walks one or more resource roots, renaming directory
// qualifiers that use locale identifiers the resource compiler cannot
// parse, and registers one compile task per file.  The tasks then run
// concurrently, each invoking the compiler subprocess and, for values
// files, extracting the root element's attributes into a side-file, since
// the subprocess strips them from its own output.  The caller receives
// either every produced artifact path in registration order, or a single
// error aggregating every per-file failure; one bad file never hides the
// results of the others.
package rescompile
