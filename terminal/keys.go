package terminal

// escapeSequence maps the bytes following the introducer to a key
type escapeSequence struct {
	seq string
	key Key
}

// Known CSI sequences (ESC [ ...)
var csiSequences = []escapeSequence{
	// Arrow keys
	{"A", KeyUp},
	{"B", KeyDown},
	{"C", KeyRight},
	{"D", KeyLeft},

	// Navigation
	{"H", KeyHome},
	{"F", KeyEnd},
	{"1~", KeyHome},
	{"7~", KeyHome},
	{"4~", KeyEnd},
	{"8~", KeyEnd},
	{"5~", KeyPageUp},
	{"6~", KeyPageDown},
	{"2~", KeyInsert},
	{"3~", KeyDelete},

	// Function keys (xterm)
	{"11~", KeyF1},
	{"12~", KeyF2},
	{"13~", KeyF3},
	{"14~", KeyF4},
	{"15~", KeyF5},
	{"17~", KeyF6},
	{"18~", KeyF7},
	{"19~", KeyF8},
	{"20~", KeyF9},
	{"21~", KeyF10},
	{"23~", KeyF11},
	{"24~", KeyF12},

	// Function keys (linux console)
	{"[A", KeyF1},
	{"[B", KeyF2},
	{"[C", KeyF3},
	{"[D", KeyF4},
	{"[E", KeyF5},
}

// SS3 sequences (ESC O ...)
var ss3Sequences = []escapeSequence{
	{"A", KeyUp},
	{"B", KeyDown},
	{"C", KeyRight},
	{"D", KeyLeft},
	{"H", KeyHome},
	{"F", KeyEnd},
	{"P", KeyF1},
	{"Q", KeyF2},
	{"R", KeyF3},
	{"S", KeyF4},
}

var csiMap = buildSequenceMap(csiSequences)
var ss3Map = buildSequenceMap(ss3Sequences)

func buildSequenceMap(seqs []escapeSequence) map[string]Key {
	m := make(map[string]Key, len(seqs))
	for _, s := range seqs {
		m[s.seq] = s.key
	}
	return m
}

// lookupCSI does not allocate, the string conversion inside a map index is elided
func lookupCSI(seq []byte) (Key, bool) {
	k, ok := csiMap[string(seq)]
	return k, ok
}

func lookupSS3(seq []byte) (Key, bool) {
	k, ok := ss3Map[string(seq)]
	return k, ok
}
