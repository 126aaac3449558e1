package Trees

import (
	"fmt"
	"io"
)

type branch int

const (
	brRoot branch = iota
	brLeft
	brRight
)

// Fprint draws n sideways to w, the right subtree above its parent. Each node
// shows key, value and cached height. Returns the depth of n.
func Fprint[K, V any](w io.Writer, n *Node[K, V]) (int, error) {
	d, err := fprint(w, n, "", brRoot)
	if err != nil {
		return 0, fmt.Errorf("print tree: %w", err)
	}
	return d, nil
}

func fprint[K, V any](w io.Writer, n *Node[K, V], prefix string, br branch) (int, error) {
	if n == nil {
		return 0, nil
	}
	t := "       "
	if br == brLeft {
		t = "|      "
	}
	rd, err := fprint(w, n.r, prefix+t, brRight)
	if err != nil {
		return 0, err
	}
	edge := "|------+ "
	switch br {
	case brLeft:
		edge = "\\------+ "
	case brRight:
		edge = "/------+ "
	}
	if _, err = fmt.Fprintf(w, "%s%s%v → %v h=%d\n", prefix, edge, n.k, n.v, n.h); err != nil {
		return 0, err
	}
	t = "       "
	if br == brRight {
		t = "|      "
	}
	ld, err := fprint(w, n.l, prefix+t, brLeft)
	if err != nil {
		return 0, err
	}
	return 1 + max(ld, rd), nil
}
