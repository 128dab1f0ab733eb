package egt

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
)

// Load decodes a binary Enhanced Grammar Table into a Grammar. It is pure:
// the caller is responsible for getting the bytes from wherever they live.
//
// Records may arrive in any order as long as the TableCounts record precedes
// every record that scatter-writes into a sized table. Cross-table
// references (rules → symbols, DFA edges → character sets, …) are resolved
// in a second pass, so a symbol record may well appear after a rule that
// uses it.
func Load(data []byte) (*Grammar, error) {
	r := &reader{data: data}
	header, err := r.readString()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if header != Header {
		return nil, fmt.Errorf("%w: header is %q", ErrBadHeader, header)
	}
	var records []*record
	for !r.atEOF() {
		rec, err := r.readRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	tracer().Debugf("EGT file with %d logical records", len(records))

	asm := &assembler{
		g: &Grammar{
			Header:     header,
			Symbols:    newSymbolTable(0),
			properties: make(map[string]string),
		},
	}
	// First pass: properties, counts, and the two leaf tables everything
	// else points into.
	for _, rec := range records {
		var err error
		switch rec.kind {
		case recordProperty:
			err = asm.property(rec)
		case recordCounts:
			err = asm.counts(rec)
		case recordCharSet:
			err = asm.charset(rec)
		case recordSymbol:
			err = asm.symbol(rec)
		default:
			if !asm.sized {
				err = fmt.Errorf("%w: %s record before table counts",
					ErrIndexOutOfRange, recordName(rec.kind))
			}
		}
		if err != nil {
			return nil, err
		}
	}
	// Second pass: records referencing symbols and character sets.
	for _, rec := range records {
		var err error
		switch rec.kind {
		case recordGroup:
			err = asm.group(rec)
		case recordRule:
			err = asm.rule(rec)
		case recordInitial:
			err = asm.initial(rec)
		case recordDFA:
			err = asm.dfaState(rec)
		case recordLALR:
			err = asm.lalrState(rec)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := asm.validate(); err != nil {
		return nil, err
	}
	asm.g.buildActionIndex()
	tracer().Infof("loaded grammar %q: %v", asm.g.Name(), asm.g.Counts)
	return asm.g, nil
}

// assembler translates decoded records into the typed tables of a Grammar.
type assembler struct {
	g     *Grammar
	sized bool // TableCounts record seen, tables allocated
}

func (asm *assembler) property(rec *record) error {
	index, err := rec.intAt(0)
	if err != nil {
		return err
	}
	name, err := rec.stringAt(1)
	if err != nil {
		return err
	}
	value, err := rec.stringAt(2)
	if err != nil {
		return err
	}
	asm.g.Properties = append(asm.g.Properties, Property{Index: index, Name: name, Value: value})
	asm.g.properties[name] = value
	return nil
}

func (asm *assembler) counts(rec *record) error {
	var c Counts
	for i, dst := range []*int{&c.Symbols, &c.CharSets, &c.Rules,
		&c.DFAStates, &c.LALRStates, &c.Groups} {
		n, err := rec.intAt(i)
		if err != nil {
			return err
		}
		*dst = n
	}
	g := asm.g
	g.Counts = c
	g.CharSets = make([]*CharacterSet, c.CharSets)
	g.Symbols = newSymbolTable(c.Symbols)
	g.Groups = make([]*Group, c.Groups)
	g.Rules = make([]*Rule, c.Rules)
	g.DFAStates = make([]*DFAState, c.DFAStates)
	g.LALRStates = make([]*LALRState, c.LALRStates)
	asm.sized = true
	return nil
}

func (asm *assembler) tableIndex(rec *record, index, size int, what string) error {
	if !asm.sized {
		return fmt.Errorf("%w: %s record before table counts",
			ErrIndexOutOfRange, recordName(rec.kind))
	}
	if index < 0 || index >= size {
		return fmt.Errorf("%w: %s index %d not below %d",
			ErrIndexOutOfRange, what, index, size)
	}
	return nil
}

func (asm *assembler) lookupSymbol(rec *record, at int) (*Symbol, error) {
	index, err := rec.intAt(at)
	if err != nil {
		return nil, err
	}
	sym := asm.g.Symbols.Get(index)
	if sym == nil {
		return nil, fmt.Errorf("%w: %s record references symbol %d",
			ErrIndexOutOfRange, recordName(rec.kind), index)
	}
	return sym, nil
}

func (asm *assembler) charset(rec *record) error {
	index, err := rec.intAt(0)
	if err != nil {
		return err
	}
	if err := asm.tableIndex(rec, index, len(asm.g.CharSets), "character set"); err != nil {
		return err
	}
	plane, err := rec.intAt(1)
	if err != nil {
		return err
	}
	count, err := rec.intAt(2)
	if err != nil {
		return err
	}
	// entry 3 is reserved
	cs := &CharacterSet{Index: index, Plane: plane, Ranges: make([]CharRange, 0, count)}
	for i := 0; i < count; i++ {
		lo, err := rec.intAt(4 + 2*i)
		if err != nil {
			return err
		}
		hi, err := rec.intAt(4 + 2*i + 1)
		if err != nil {
			return err
		}
		cs.Ranges = append(cs.Ranges, CharRange{
			Lo: rune(plane)<<16 | rune(lo),
			Hi: rune(plane)<<16 | rune(hi),
		})
	}
	asm.g.CharSets[index] = cs
	return nil
}

func (asm *assembler) symbol(rec *record) error {
	index, err := rec.intAt(0)
	if err != nil {
		return err
	}
	if err := asm.tableIndex(rec, index, asm.g.Symbols.Len(), "symbol"); err != nil {
		return err
	}
	name, err := rec.stringAt(1)
	if err != nil {
		return err
	}
	kind, err := rec.intAt(2)
	if err != nil {
		return err
	}
	if kind > int(SymbolError) {
		return fmt.Errorf("%w: %d for symbol %q", ErrBadSymbolKind, kind, name)
	}
	asm.g.Symbols.add(&Symbol{Index: index, Name: name, Kind: SymbolKind(kind)})
	return nil
}

func (asm *assembler) group(rec *record) error {
	index, err := rec.intAt(0)
	if err != nil {
		return err
	}
	if err := asm.tableIndex(rec, index, len(asm.g.Groups), "group"); err != nil {
		return err
	}
	name, err := rec.stringAt(1)
	if err != nil {
		return err
	}
	container, err := asm.lookupSymbol(rec, 2)
	if err != nil {
		return err
	}
	start, err := asm.lookupSymbol(rec, 3)
	if err != nil {
		return err
	}
	end, err := asm.lookupSymbol(rec, 4)
	if err != nil {
		return err
	}
	advance, err := rec.intAt(5)
	if err != nil {
		return err
	}
	ending, err := rec.intAt(6)
	if err != nil {
		return err
	}
	// entry 7 is reserved
	count, err := rec.intAt(8)
	if err != nil {
		return err
	}
	nesting := hashset.New()
	for i := 0; i < count; i++ {
		nested, err := rec.intAt(9 + i)
		if err != nil {
			return err
		}
		if nested < 0 || nested >= len(asm.g.Groups) {
			return fmt.Errorf("%w: group %d nests unknown group %d",
				ErrIndexOutOfRange, index, nested)
		}
		nesting.Add(nested)
	}
	asm.g.Groups[index] = &Group{
		Index:     index,
		Name:      name,
		Container: container,
		Start:     start,
		End:       end,
		Advance:   AdvanceMode(advance),
		Ending:    EndingMode(ending),
		nesting:   nesting,
	}
	return nil
}

func (asm *assembler) rule(rec *record) error {
	index, err := rec.intAt(0)
	if err != nil {
		return err
	}
	if err := asm.tableIndex(rec, index, len(asm.g.Rules), "rule"); err != nil {
		return err
	}
	head, err := asm.lookupSymbol(rec, 1)
	if err != nil {
		return err
	}
	if head.Kind != SymbolNonterminal {
		return fmt.Errorf("%w: rule %d head %s is not a nonterminal",
			ErrBadRecord, index, head)
	}
	// entry 2 is reserved
	body := make([]*Symbol, 0, rec.len()-3)
	for at := 3; at < rec.len(); at++ {
		sym, err := asm.lookupSymbol(rec, at)
		if err != nil {
			return err
		}
		body = append(body, sym)
	}
	asm.g.Rules[index] = &Rule{Index: index, Head: head, Body: body}
	return nil
}

func (asm *assembler) initial(rec *record) error {
	dfa, err := rec.intAt(0)
	if err != nil {
		return err
	}
	lalr, err := rec.intAt(1)
	if err != nil {
		return err
	}
	if err := asm.tableIndex(rec, dfa, len(asm.g.DFAStates), "initial DFA state"); err != nil {
		return err
	}
	if err := asm.tableIndex(rec, lalr, len(asm.g.LALRStates), "initial LALR state"); err != nil {
		return err
	}
	asm.g.InitialDFA = dfa
	asm.g.InitialLALR = lalr
	return nil
}

func (asm *assembler) dfaState(rec *record) error {
	index, err := rec.intAt(0)
	if err != nil {
		return err
	}
	if err := asm.tableIndex(rec, index, len(asm.g.DFAStates), "DFA state"); err != nil {
		return err
	}
	accept, err := rec.boolAt(1)
	if err != nil {
		return err
	}
	state := &DFAState{Index: index, Accept: accept}
	if accept {
		state.AcceptSymbol, err = asm.lookupSymbol(rec, 2)
		if err != nil {
			return err
		}
	}
	// entry 3 is reserved; edges are (charset, target, reserved) triples
	for at := 4; at < rec.len(); at += 3 {
		csIndex, err := rec.intAt(at)
		if err != nil {
			return err
		}
		if csIndex < 0 || csIndex >= len(asm.g.CharSets) || asm.g.CharSets[csIndex] == nil {
			return fmt.Errorf("%w: DFA state %d references character set %d",
				ErrIndexOutOfRange, index, csIndex)
		}
		target, err := rec.intAt(at + 1)
		if err != nil {
			return err
		}
		if err := asm.tableIndex(rec, target, len(asm.g.DFAStates), "DFA edge target"); err != nil {
			return err
		}
		state.Edges = append(state.Edges, DFAEdge{
			Chars:  asm.g.CharSets[csIndex],
			Target: target,
		})
	}
	asm.g.DFAStates[index] = state
	return nil
}

func (asm *assembler) lalrState(rec *record) error {
	index, err := rec.intAt(0)
	if err != nil {
		return err
	}
	if err := asm.tableIndex(rec, index, len(asm.g.LALRStates), "LALR state"); err != nil {
		return err
	}
	state := &LALRState{Index: index}
	// entry 1 is reserved; actions are (symbol, action, target, reserved) quads
	for at := 2; at < rec.len(); at += 4 {
		sym, err := asm.lookupSymbol(rec, at)
		if err != nil {
			return err
		}
		kind, err := rec.intAt(at + 1)
		if err != nil {
			return err
		}
		if kind < int(ActionShift) || kind > int(ActionAccept) {
			return fmt.Errorf("%w: %d in LALR state %d", ErrBadActionType, kind, index)
		}
		target, err := rec.intAt(at + 2)
		if err != nil {
			return err
		}
		switch ActionKind(kind) {
		case ActionShift, ActionGoto:
			if err := asm.tableIndex(rec, target, len(asm.g.LALRStates), "action target state"); err != nil {
				return err
			}
		case ActionReduce:
			if err := asm.tableIndex(rec, target, len(asm.g.Rules), "action target rule"); err != nil {
				return err
			}
		}
		state.Actions = append(state.Actions, Action{
			Symbol: sym,
			Kind:   ActionKind(kind),
			Target: target,
		})
	}
	asm.g.LALRStates[index] = state
	return nil
}

// validate compares populated table sizes against the declared counts.
func (asm *assembler) validate() error {
	if !asm.sized {
		return fmt.Errorf("%w: no table counts record", ErrCountMismatch)
	}
	g := asm.g
	check := func(populated, declared int, what string) error {
		if populated != declared {
			return fmt.Errorf("%w: %d %s records for declared count %d",
				ErrCountMismatch, populated, what, declared)
		}
		return nil
	}
	nonNil := func(n int, probe func(int) bool) int {
		cnt := 0
		for i := 0; i < n; i++ {
			if probe(i) {
				cnt++
			}
		}
		return cnt
	}
	if err := check(g.Symbols.populated(), g.Counts.Symbols, "symbol"); err != nil {
		return err
	}
	if err := check(nonNil(len(g.CharSets), func(i int) bool { return g.CharSets[i] != nil }),
		g.Counts.CharSets, "character set"); err != nil {
		return err
	}
	if err := check(nonNil(len(g.Groups), func(i int) bool { return g.Groups[i] != nil }),
		g.Counts.Groups, "group"); err != nil {
		return err
	}
	if err := check(nonNil(len(g.Rules), func(i int) bool { return g.Rules[i] != nil }),
		g.Counts.Rules, "rule"); err != nil {
		return err
	}
	if err := check(nonNil(len(g.DFAStates), func(i int) bool { return g.DFAStates[i] != nil }),
		g.Counts.DFAStates, "DFA state"); err != nil {
		return err
	}
	return check(nonNil(len(g.LALRStates), func(i int) bool { return g.LALRStates[i] != nil }),
		g.Counts.LALRStates, "LALR state")
}
