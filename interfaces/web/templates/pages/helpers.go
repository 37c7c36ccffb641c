package pages

import "strconv"

// itemLabel renders a numbered table row label, e.g. "1: Buy milk".
func itemLabel(number int, text string) string {
	return strconv.Itoa(number) + ": " + text
}
