/*
Command goldengine inspects compiled grammar tables and parses input
against them.

	goldengine <subcommand> <table-file> [flags]

Subcommands: counts, properties, symbols, rules, charset, group, dfa, lalr
dump the respective table of an EGT file. The interactive subcommand opens a
small REPL that parses every entered line against the loaded grammar and
renders accepted inputs as a reduction tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 David Freudenthaler <david@freudenthaler.net>

*/
package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dfreuden/goldengine/egt"
)

// config holds settings read from an optional TOML file. Command-line flags
// win over the file.
type config struct {
	Trace string `toml:"trace"`
	Trim  bool   `toml:"trim-reductions"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("goldengine", pflag.ContinueOnError)
	traceFlag := flags.String("trace", "", "Trace level [Debug|Info|Error]")
	trimFlag := flags.Bool("trim", false, "Trim single-nonterminal reductions")
	confFlag := flags.String("config", "", "TOML configuration file")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: goldengine <subcommand> <table-file> [flags]")
		fmt.Fprintln(os.Stderr, "Subcommands: counts properties symbols rules charset group dfa lalr interactive")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		flags.Usage()
		return 1
	}

	cfg := config{Trace: "Error"}
	if *confFlag != "" {
		if _, err := toml.DecodeFile(*confFlag, &cfg); err != nil {
			pterm.Error.Println("cannot read config file:", err)
			return 1
		}
	}
	if *traceFlag != "" {
		cfg.Trace = *traceFlag
	}
	if flags.Changed("trim") {
		cfg.Trim = *trimFlag
	}
	initTracing(cfg.Trace)

	cmd, file := flags.Arg(0), flags.Arg(1)
	data, err := os.ReadFile(file)
	if err != nil {
		pterm.Error.Println(err)
		return 1
	}
	grammar, err := egt.Load(data)
	if err != nil {
		pterm.Error.Println("cannot load tables:", err)
		return 2
	}

	switch cmd {
	case "counts":
		dumpCounts(grammar)
	case "properties":
		dumpProperties(grammar)
	case "symbols":
		dumpSymbols(grammar)
	case "rules":
		dumpRules(grammar)
	case "charset":
		dumpCharSets(grammar)
	case "group":
		dumpGroups(grammar)
	case "dfa":
		dumpDFA(grammar)
	case "lalr":
		dumpLALR(grammar)
	case "interactive":
		return interactive(grammar, cfg.Trim)
	default:
		pterm.Error.Println(fmt.Sprintf("unknown subcommand %q", cmd))
		flags.Usage()
		return 1
	}
	return 0
}

// We use pterm for moderately fancy output.
func initTracing(level string) {
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range []string{"goldengine.egt", "goldengine.scanner", "goldengine.parser"} {
		tracing.Select(key).SetTraceLevel(l)
	}
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
}

func header(grammar *egt.Grammar, what string) {
	pterm.Info.Println(fmt.Sprintf("%s %q %s", what, grammar.Name(), grammar.Version()))
}

func dumpCounts(grammar *egt.Grammar) {
	header(grammar, "table counts of")
	fmt.Println(grammar.Counts)
	fmt.Println("fingerprint", grammar.Fingerprint())
}

func dumpProperties(grammar *egt.Grammar) {
	header(grammar, "properties of")
	for _, p := range grammar.Properties {
		fmt.Printf("%2d  %-16s %s\n", p.Index, p.Name, p.Value)
	}
}

func dumpSymbols(grammar *egt.Grammar) {
	header(grammar, "symbols of")
	grammar.Symbols.Each(func(sym *egt.Symbol) {
		fmt.Printf("%3d  %-12s %s\n", sym.Index, sym.Kind, sym)
	})
}

func dumpRules(grammar *egt.Grammar) {
	header(grammar, "rules of")
	for _, rule := range grammar.Rules {
		fmt.Printf("%3d  %s\n", rule.Index, rule)
	}
}

func dumpCharSets(grammar *egt.Grammar) {
	header(grammar, "character sets of")
	for _, cs := range grammar.CharSets {
		fmt.Println(cs)
	}
}

func dumpGroups(grammar *egt.Grammar) {
	header(grammar, "lexical groups of")
	for _, group := range grammar.Groups {
		fmt.Println(group)
	}
}

func dumpDFA(grammar *egt.Grammar) {
	header(grammar, "DFA states of")
	fmt.Println("initial state", grammar.InitialDFA)
	for _, state := range grammar.DFAStates {
		fmt.Println(state)
		for _, e := range state.Edges {
			fmt.Printf("     --%v--> %d\n", e.Chars, e.Target)
		}
	}
}

func dumpLALR(grammar *egt.Grammar) {
	header(grammar, "LALR states of")
	fmt.Println("initial state", grammar.InitialLALR)
	for _, state := range grammar.LALRStates {
		fmt.Println(state)
		for _, a := range state.Actions {
			fmt.Printf("     %v\n", a)
		}
	}
}
