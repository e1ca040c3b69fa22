package tokens

import "strings"

type Source struct {
	Name    string
	Content string
	Lines   []string
	runes   []rune
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
		runes:   []rune(content),
	}
}

// Pos is a resume point into a Source. Only a Tokenizer hands them out.
type Pos struct {
	offset int
}

// Offset is the index of the character in the source, counted in runes.
func (p Pos) Offset() int {
	return p.offset
}

// Position returns the 1-based line and column of p.
func (s *Source) Position(p Pos) (line, column int) {
	line, column = 1, 1
	for i := 0; i < p.offset && i < len(s.runes); i++ {
		if s.runes[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return
}
