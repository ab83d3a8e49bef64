package helpers

import "strings"

// The catalog pads multi-line meeting fields with this fragment.
const lineBreakPad = "<br/>&nbsp;"

// cleanMarkup drops the line-break padding and trims. Anything else in the
// field, including other markup and entities, is shown as sent.
func cleanMarkup(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, lineBreakPad, ""))
}
