package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/dfreuden/goldengine"
	"github.com/dfreuden/goldengine/egt"
	"github.com/dfreuden/goldengine/parser"
)

// interactive runs a small REPL: every entered line is parsed against the
// loaded grammar, events are echoed, and accepted input is rendered as a
// reduction tree. Quit with :quit or ctrl-D.
func interactive(grammar *egt.Grammar, trim bool) int {
	pterm.Info.Println(fmt.Sprintf("grammar %q %s", grammar.Name(), grammar.Version()))
	pterm.Info.Println("enter input to parse, :quit to leave")
	rl, err := readline.New("goldengine> ")
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}
	defer rl.Close()
	p := parser.New(grammar, parser.TrimReductions(trim))
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		switch line {
		case ":quit", ":q":
			println("Good bye!")
			return 0
		case ":symbols":
			dumpSymbols(grammar)
			continue
		case ":rules":
			dumpRules(grammar)
			continue
		}
		parseLine(p, line)
	}
	println("Good bye!")
	return 0
}

func parseLine(p *parser.Parser, line string) {
	p.LoadSource(line)
	for {
		ev := p.Step()
		switch ev.Kind {
		case parser.Accept:
			pterm.Info.Println("accepted")
			renderTree(ev.Reduction)
			return
		case parser.Empty:
			return
		case parser.TokenRead, parser.Reduction:
			fmt.Printf("  %v\n", ev)
		default:
			pterm.Error.Println(ev.String())
			return
		}
	}
}

// renderTree prints a reduction tree with pterm's leveled lists.
func renderTree(root *goldengine.Reduction) {
	if root == nil {
		pterm.Info.Println("no reduction tree")
		return
	}
	ll := leveledReduction(root, pterm.LeveledList{}, 0)
	tree := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(tree).Render()
}

func leveledReduction(r *goldengine.Reduction, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: r.Rule.String()})
	for _, tok := range r.Tokens {
		if tok.Reduction != nil {
			ll = leveledReduction(tok.Reduction, ll, level+1)
			continue
		}
		ll = append(ll, pterm.LeveledListItem{Level: level + 1, Text: tok.String()})
	}
	return ll
}
