package layout

import "strings"

// Wrap breaks s into lines no wider than maxWidth as reported by measure.
// Newlines in s are kept; a word wider than maxWidth gets a line of its own.
func Wrap(s string, maxWidth float64, measure func(string) float64) []string {
	var result []string
	for _, para := range strings.Split(s, "\n") {
		result = append(result, wrapParagraph(para, maxWidth, measure)...)
	}
	return result
}

func wrapParagraph(s string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var result []string
	line := words[0]
	for _, w := range words[1:] {
		if measure(line+" "+w) > maxWidth {
			result = append(result, line)
			line = w
		} else {
			line += " " + w
		}
	}
	return append(result, line)
}
