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

import "regexp"

// The resource compiler's qualifier grammar cannot parse these locale
// identifiers, so directories using them are renamed to the BCP 47 form it
// does accept.  Group 1 matches serbian in latin script, group 2 matches
// latin american spanish.
var regionPattern = regexp.MustCompile(`(?i)(sr[_\-]r?latn)|(es[_\-]r?419)`)

// fixRegionQualifier rewrites the unsupported locale token in a qualified
// directory name, leaving the rest of the segment untouched.  Segments
// without an unsupported token are returned unchanged, so the function is
// idempotent.
func fixRegionQualifier(segment string) string {
	loc := regionPattern.FindStringSubmatchIndex(segment)
	if loc == nil {
		return segment
	}
	replacement := "b+sr+Latn"
	if loc[4] != -1 { // group 2 matched
		replacement = "b+es+419"
	}
	return segment[:loc[0]] + replacement + segment[loc[1]:]
}
