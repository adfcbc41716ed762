package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/mhoeller/charta/forest"
	"github.com/mhoeller/charta/parser"
	"github.com/mhoeller/charta/scanner"
)

var (
	grammarName string
	traceLevel  string
	strategy    string
	maxEdges    int
)

var rootCmd = &cobra.Command{
	Use:   "charta",
	Short: "Chart parsing with feature unification",
	Long: `charta parses token sequences under a feature grammar and prints
all syntactic analyses. Built-in demo grammars: ` + demoGrammarNames() + `.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initDisplay()
		gtrace.SyntaxTracer = gologadapter.New()
		for _, key := range []string{"charta.feat", "charta.grammar", "charta.chart",
			"charta.parser", "charta.forest", "charta.scanner"} {
			tracing.Select(key).SetTraceLevel(levelFor(traceLevel))
		}
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [sentence]",
	Short: "Parse a sentence and print all parse trees",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		p, err := makeParser()
		if err != nil {
			return err
		}
		return parseAndPrint(p, input)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&grammarName, "grammar", "g", "toy",
		"Demo grammar ("+demoGrammarNames()+")")
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error",
		"Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().StringVar(&strategy, "strategy", "bottomup",
		"Parsing strategy [bottomup|topdown]")
	rootCmd.PersistentFlags().IntVar(&maxEdges, "max-edges", 0,
		"Abort parses exceeding this edge count (0 = unlimited)")
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func makeParser() (*parser.Parser, error) {
	g, err := demoGrammar(grammarName)
	if err != nil {
		return nil, err
	}
	opts := []parser.Option{parser.WithTrace(1)}
	if strategy == "topdown" {
		opts = append(opts, parser.WithStrategy(parser.TopDown()))
	}
	if maxEdges > 0 {
		opts = append(opts, parser.WithBudget(parser.Budget{MaxEdges: maxEdges}))
	}
	return parser.New(g, opts...)
}

func parseAndPrint(p *parser.Parser, input string) error {
	terminals := scanner.Words(strings.ToLower(input))
	seq, err := p.Parse(terminals)
	if err != nil {
		if partial, ok := err.(*parser.PartialParseError); ok {
			pterm.Error.Println(partial.Error())
			pterm.Info.Printf("partial chart holds %d edges\n", partial.Edges)
			return nil
		}
		return err
	}
	if seq.Len() == 0 {
		pterm.Info.Println("no parse")
		return nil
	}
	n := 1
	for tree, ok := seq.Next(); ok; tree, ok = seq.Next() {
		pterm.Info.Printf("parse %d of %d:\n", n, seq.Len())
		printTree(tree)
		n++
	}
	return nil
}

// printTree renders a tree on the terminal.
func printTree(t *forest.Tree) {
	ll := leveledTree(t, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTree(t *forest.Tree, ll pterm.LeveledList, level int) pterm.LeveledList {
	if t.IsLeaf() {
		return append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  pterm.FgYellow.Sprint(t.Token.Lexeme()),
		})
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  pterm.FgCyan.Sprint(t.Label.String()),
	})
	for _, c := range t.Children {
		ll = leveledTree(c, ll, level+1)
	}
	return ll
}

func levelFor(name string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(name)
}
