package jaunt

import (
	"fmt"
	"time"

	"github.com/itchyny/timefmt-go"
)

// AsTime interprets the node's text as a timestamp in the given strftime
// format (e.g. "%Y-%m-%dT%H:%M:%SZ"). Only textual nodes carry timestamps;
// anything else is an error.
func (n *Node) AsTime(format string) (time.Time, error) {
	if !n.IsTextual() {
		return time.Time{}, fmt.Errorf("not a textual node")
	}
	t, err := timefmt.Parse(n.AsText(), format)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %q: %w", n.AsText(), err)
	}
	return t, nil
}

// AsTime interprets the current node's text as a timestamp.
func (t *Trace) AsTime(format string) (time.Time, error) {
	return t.Node().AsTime(format)
}

// TimeText formats a timestamp with strftime directives and returns it as a
// string node, the inverse of AsTime.
func TimeText(t time.Time, format string) *Node {
	return Text(timefmt.Format(t, format))
}
