package forest

import (
	"testing"

	"github.com/mhoeller/charta"
	"github.com/mhoeller/charta/chart"
	"github.com/mhoeller/charta/feat"
	"github.com/mhoeller/charta/grammar"
	"github.com/mhoeller/charta/scanner"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func dogTree() *Tree {
	leaf := func(sym string, i uint64) *Tree {
		return &Tree{
			Token: scanner.MakeTerminal(sym, i),
			Span:  charta.Span{i, i + 1},
		}
	}
	pre := func(cat string, i uint64, word string) *Tree {
		return &Tree{
			Label:    feat.Cat(cat),
			Span:     charta.Span{i, i + 1},
			Children: []*Tree{leaf(word, i)},
		}
	}
	np := &Tree{
		Label:    feat.Cat("NP"),
		Span:     charta.Span{0, 2},
		Children: []*Tree{pre("Det", 0, "the"), pre("N", 1, "dog")},
	}
	return np
}

func TestTreeLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.forest")
	defer teardown()
	tree := dogTree()
	leaves := tree.Leaves()
	if len(leaves) != 2 {
		t.Fatalf("expected 2 leaves, got %d", len(leaves))
	}
	if leaves[0].Lexeme() != "the" || leaves[1].Lexeme() != "dog" {
		t.Errorf("leaves out of order: %v %v", leaves[0], leaves[1])
	}
}

func TestTreeBracketNotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.forest")
	defer teardown()
	tree := dogTree()
	want := "(NP[] (Det[] the) (N[] dog))"
	if got := tree.String(); got != want {
		t.Errorf("bracketed form is %q, expected %q", got, want)
	}
}

// chartWithDet builds the 1-token chart for grammar Det ⟶ "the" over input
// "the", bypassing the engine.
func chartWithDet(t *testing.T) (*chart.Chart, *grammar.Grammar) {
	t.Helper()
	b := grammar.NewBuilder("Det")
	b.LHS(feat.Cat("Det")).T("the").End()
	g, err := b.Grammar(feat.Cat("Det"))
	if err != nil {
		t.Fatal(err)
	}
	ch := chart.New(1)
	leaf := chart.NewLeafEdge(scanner.MakeTerminal("the", 0), 0)
	ch.Insert(leaf)
	ch.Insert(chart.NewLexicalEdge(g.Productions()[0], leaf))
	return ch, g
}

func TestExtractYieldsSpanningParses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.forest")
	defer teardown()
	ch, g := chartWithDet(t)
	seq := Extract(ch, g)
	if seq.Len() != 1 {
		t.Fatalf("expected 1 spanning parse, got %d", seq.Len())
	}
	tree, ok := seq.Next()
	if !ok {
		t.Fatal("sequence should yield its tree")
	}
	if tree.String() != "(Det[] the)" {
		t.Errorf("unexpected tree %s", tree)
	}
	if _, ok = seq.Next(); ok {
		t.Error("exhausted sequence must not yield further trees")
	}
}

func TestSequenceIsRestartable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.forest")
	defer teardown()
	ch, g := chartWithDet(t)
	seq := Extract(ch, g)
	first, _ := seq.Next()
	seq.Restart()
	again, ok := seq.Next()
	if !ok {
		t.Fatal("restarted sequence should yield its tree again")
	}
	if first.String() != again.String() {
		t.Errorf("restart changed the tree: %s vs %s", first, again)
	}
	if seq.Len() != 1 {
		t.Error("Len must not be affected by consumption")
	}
	// a second extraction over the same chart is independent
	other := Extract(ch, g)
	if other.Len() != 1 {
		t.Error("chart must support repeated extraction")
	}
}

// leafCounter sums up tokens bottom-up and remembers the deepest level.
type leafCounter struct {
	maxLevel int
}

func (lc *leafCounter) Terminal(tok charta.Token, span charta.Span, level int) interface{} {
	if level > lc.maxLevel {
		lc.maxLevel = level
	}
	return 1
}

func (lc *leafCounter) Reduce(label feat.Value, children []*RuleNode, span charta.Span,
	level int) interface{} {
	sum := 0
	for _, c := range children {
		sum += c.Value.(int)
	}
	return sum
}

func TestWalkReducesBottomUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "charta.forest")
	defer teardown()
	tree := dogTree()
	lc := &leafCounter{}
	root := Walk(tree, lc)
	if root.Value.(int) != 2 {
		t.Errorf("root value is %v, expected leaf count 2", root.Value)
	}
	if root.Label().String() != "NP[]" {
		t.Errorf("root label is %s, expected NP[]", root.Label())
	}
	if root.Extent != (charta.Span{0, 2}) {
		t.Errorf("root extent is %s, expected (0…2)", root.Extent)
	}
	if lc.maxLevel != 2 {
		t.Errorf("leaves sit at level %d, expected 2", lc.maxLevel)
	}
}
