package carta

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	mainPointRe = regexp.MustCompile(`^(\d+)\.\s+(.+)`)
	subPointRe  = regexp.MustCompile(`^([a-z])\.\s+(.+)`)
)

// NormalizeListNumbering re-sequences the literal list markers of the body
// paragraphs top to bottom: "N. text" main points get a running counter
// starting at 1, "x. text" lettered sub-points restart at "a" after each
// main point. The digits and letters present in the source are ignored, so
// content inserted or removed by conditional blocks cannot desynchronize
// the numbering.
func NormalizeListNumbering(body *Body) {
	if body == nil {
		return
	}

	mainCounter := 1
	subCounter := 1
	inSubList := false

	for _, p := range body.Paragraphs() {
		text := strings.TrimSpace(p.Text())

		if m := mainPointRe.FindStringSubmatch(text); m != nil {
			p.SetText(fmt.Sprintf("%d. %s", mainCounter, m[2]))
			mainCounter++
			inSubList = false
		}

		// Checked independently of the main match; a line cannot satisfy
		// both patterns.
		if m := subPointRe.FindStringSubmatch(text); m != nil {
			if !inSubList {
				subCounter = 1
				inSubList = true
			}
			letter := rune('a' + subCounter - 1)
			p.SetText(fmt.Sprintf("%c. %s", letter, m[2]))
			subCounter++
		}
	}
}
