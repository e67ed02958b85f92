// assets/embed.go
//
// Embedded word data shipped with the binary.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed answers.txt
var FS embed.FS

// readLines returns the non-empty, non-comment lines of an embedded file,
// trimmed and uppercased.
func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// AnswersList returns the embedded answer list.
func AnswersList() ([]string, error) {
	return readLines("answers.txt")
}
