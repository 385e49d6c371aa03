package pathexec

import (
	"strconv"
	"strings"

	"github.com/jauntql/jaunt"
)

// segmentKind classifies one step of a path expression.
type segmentKind uint8

const (
	segKey      segmentKind = iota // field lookup: name
	segIndex                       // array index: [i], negative counts from the end
	segWildcard                    // fan-out: [*]
	segRoot                        // re-anchor at the traversal root: ^
	segVariable                    // variable reference: $name, only valid first
)

// segment is one lexed step of a path expression.
type segment struct {
	kind  segmentKind
	key   string
	index int
}

func (s segment) String() string {
	switch s.kind {
	case segKey:
		return s.key
	case segIndex:
		return "[" + strconv.Itoa(s.index) + "]"
	case segWildcard:
		return "[*]"
	case segRoot:
		return "^"
	case segVariable:
		return s.key
	default:
		return "?"
	}
}

// parsePath lexes a path expression into segments. It reports malformed
// input as a jaunt.SyntaxError; it does not touch any document.
func parsePath(path string) ([]segment, error) {
	if strings.TrimSpace(path) == "" {
		return nil, &jaunt.SyntaxError{Msg: "empty path"}
	}

	var segs []segment
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			return nil, &jaunt.SyntaxError{Msg: "unexpected '.' at offset " + strconv.Itoa(i)}
		case '[':
			seg, next, err := lexBracket(path, i)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			i = next
		case '^':
			segs = append(segs, segment{kind: segRoot})
			i++
		case '$':
			if len(segs) > 0 {
				return nil, &jaunt.SyntaxError{Msg: "variable reference must start the path"}
			}
			name, next := lexName(path, i+1)
			if name == "" {
				return nil, &jaunt.SyntaxError{Msg: "variable name must start with '$' and have at least 2 characters"}
			}
			segs = append(segs, segment{kind: segVariable, key: "$" + name})
			i = next
		default:
			name, next := lexName(path, i)
			if name == "" {
				return nil, &jaunt.SyntaxError{Msg: "unexpected '" + string(path[i]) + "' at offset " + strconv.Itoa(i)}
			}
			segs = append(segs, segment{kind: segKey, key: name})
			i = next
		}

		// A segment is followed by '.', a bracket, or the end of the path.
		if i < len(path) && path[i] == '.' {
			i++
			if i == len(path) {
				return nil, &jaunt.SyntaxError{Msg: "path ends with '.'"}
			}
		}
	}
	return segs, nil
}

// lexName consumes a field or variable name: every rune up to the next
// separator. Returns the name and the offset just past it.
func lexName(path string, start int) (string, int) {
	i := start
	for i < len(path) && path[i] != '.' && path[i] != '[' && path[i] != ']' {
		i++
	}
	return path[start:i], i
}

// lexBracket consumes "[i]" or "[*]" starting at the '['.
func lexBracket(path string, start int) (segment, int, error) {
	end := strings.IndexByte(path[start:], ']')
	if end < 0 {
		return segment{}, 0, &jaunt.SyntaxError{Msg: "unterminated '[' at offset " + strconv.Itoa(start)}
	}
	end += start
	inner := path[start+1 : end]
	if inner == "*" {
		return segment{kind: segWildcard}, end + 1, nil
	}
	idx, err := strconv.Atoi(inner)
	if err != nil {
		return segment{}, 0, &jaunt.SyntaxError{Msg: "invalid index '" + inner + "'"}
	}
	return segment{kind: segIndex, index: idx}, end + 1, nil
}
