// Package runeio provides rune reading, ANSI-safe rune writing, and control
// rune mnemonics.
package runeio

import (
	"errors"
	"strconv"
	"strings"
)

// c0Names holds the classic ASCII control mnemonics, indexed by codepoint.
var c0Names = [32]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "NL", "VT", "NP", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// ControlWords maps mnemonics like "<ESC>" or "<esc>", and caret forms like
// "^[", to their control runes. Space and delete are included as "<SP>" and
// "<DEL>".
var ControlWords = make(map[string]rune, 3*len(c0Names)+5)

func init() {
	add := func(name string, r rune) {
		ControlWords["<"+name+">"] = r
		ControlWords["<"+strings.ToLower(name)+">"] = r
		if caret := CaretForm(r); caret != "" {
			ControlWords[caret] = r
		}
	}
	for r, name := range c0Names {
		add(name, rune(r))
	}
	add("SP", 0x20)
	add("DEL", 0x7f)
}

// CaretForm returns the ^-escaped printable form of a control rune, or "" if
// r is not one.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	}
	return ""
}

var errInvalidRune = errors.New(`rune literal must be "^X" "<NAME>" or 'X'`)

// UnquoteRune parses a rune literal: a single-quoted character as understood
// by strconv.UnquoteChar, or any of the ControlWords.
func UnquoteRune(word string) (rune, error) {
	if r, defined := ControlWords[word]; defined {
		return r, nil
	}
	if len(word) < 3 || word[0] != '\'' || word[len(word)-1] != '\'' {
		return 0, errInvalidRune
	}
	r, _, tail, err := strconv.UnquoteChar(word[1:len(word)-1], '\'')
	if err != nil {
		return 0, err
	}
	if tail != "" {
		return 0, errInvalidRune
	}
	return r, nil
}
