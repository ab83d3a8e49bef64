package catalog

import (
	"fmt"
	"strconv"
)

var seasons = map[byte]string{
	'1': "Spring",
	'4': "Summer",
	'7': "Fall",
}

// TermName turns an ASU term code into a label: 2257 is Fall 2025. The code
// is 2, a two-digit year, then 1, 4 or 7 for the season.
func TermName(code string) string {
	if len(code) == 4 && code[0] == '2' {
		if season, ok := seasons[code[3]]; ok {
			if yy, err := strconv.Atoi(code[1:3]); err == nil {
				return fmt.Sprintf("%s %d", season, 2000+yy)
			}
		}
	}
	return "Term " + code
}
