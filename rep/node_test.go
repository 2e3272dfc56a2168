package rep

import (
	"bytes"
	"testing"
)

func TestNodeEndOffset(t *testing.T) {
	n := &Node{Token: "FH", Offset: 257, Size: 100}
	if got, want := n.EndOffset(), 257+100+NodeHeaderWidth; got != want {
		t.Errorf("EndOffset() = %d, want %d", got, want)
	}
}

func TestNodePath(t *testing.T) {
	root := &Node{Token: "RT"}
	mp := &Node{Token: "MP", Parent: root}
	st := &Node{Token: "ST", Parent: mp}
	root.Children = []*Node{mp}
	mp.Children = []*Node{st}

	cases := []struct {
		node *Node
		want string
	}{
		{root, "RT"},
		{mp, "RT/MP"},
		{st, "RT/MP/ST"},
	}
	for _, c := range cases {
		if got := c.node.Path(); got != c.want {
			t.Errorf("Path() = %q, want %q", got, c.want)
		}
	}
}

func TestNodeGetChildrenEmptyPathReturnsSelf(t *testing.T) {
	n := &Node{Token: "RT"}
	got := n.GetChildren(nil)
	if len(got) != 1 || got[0] != n {
		t.Errorf("GetChildren(nil) = %v, want [n]", got)
	}
}

func TestNodeGetChildrenFansOutOnMultipleMatches(t *testing.T) {
	root := &Node{Token: "RT"}
	a1 := &Node{Token: "XN", Parent: root}
	a2 := &Node{Token: "XN", Parent: root}
	b := &Node{Token: "YY", Parent: root}
	root.Children = []*Node{a1, a2, b}

	got := root.GetChildren([]string{"XN"})
	if len(got) != 2 {
		t.Fatalf("GetChildren([XN]) returned %d nodes, want 2", len(got))
	}
	if got[0] != a1 || got[1] != a2 {
		t.Errorf("GetChildren([XN]) = %v, want [a1, a2] in byte order", got)
	}
}

func TestNodeGetChildrenNoMatch(t *testing.T) {
	root := &Node{Token: "RT"}
	if got := root.GetChildren([]string{"FH"}); len(got) != 0 {
		t.Errorf("GetChildren([FH]) = %v, want empty", got)
	}
}

func TestNodePrint(t *testing.T) {
	root := &Node{Token: "RT", Offset: 257, Size: 10}
	child := &Node{Token: "FH", Offset: 265, Size: 4, Parent: root}
	root.Children = []*Node{child}

	var buf bytes.Buffer
	root.Print(&buf)

	out := buf.String()
	if !bytes.Contains(buf.Bytes(), []byte("RT --")) {
		t.Errorf("Print() missing root line, got: %q", out)
	}
	if !bytes.Contains(buf.Bytes(), []byte("RT/FH --")) {
		t.Errorf("Print() missing child line, got: %q", out)
	}
}
