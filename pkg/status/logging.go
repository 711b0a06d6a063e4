// Copyright 2025 walteh LLC
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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent = 4 // spaces to indent file entries
)

// 🎯 FormatRecord formats a recorded outcome for the console
func FormatRecord(rec Record, f FileFormatter) string {
	msg := f.FormatOutcome(rec.Path, rec.Outcome)

	var paint func(format string, a ...interface{}) string
	switch {
	case len(rec.Outcome.Missed) > 0:
		paint = color.YellowString
	case rec.Outcome.Kind == KindApplied:
		paint = color.GreenString
	case rec.Outcome.Kind == KindSkipped:
		paint = color.HiBlackString
	case rec.Outcome.Kind == KindNotFound:
		paint = color.YellowString
	case rec.Outcome.Kind == KindIOError:
		paint = color.RedString
	default:
		paint = fmt.Sprintf
	}

	return strings.Repeat(" ", fileIndent) + paint("%s", msg)
}

// FormatRuleIssue formats a rule that was dropped before the run
func FormatRuleIssue(issue RuleIssue) string {
	return strings.Repeat(" ", fileIndent) + color.RedString("✗ Invalid rule: %v", issue.Err)
}

func colorDiffLine(line string) string {
	switch {
	case strings.HasPrefix(line, "+"):
		return color.GreenString("%s", line)
	case strings.HasPrefix(line, "-"):
		return color.RedString("%s", line)
	default:
		return line
	}
}
