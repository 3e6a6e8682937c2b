//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

var escapeMap = map[byte]byte{
	'b': '\b',
	't': '\t',
	'n': '\n',
	'r': '\r',
	'e': '\033',
}

// argState accumulates a single shell-style word
type argState struct {
	word        []byte
	quote       byte // Active quote character, or 0
	quoted      bool // An empty quoted word is still a word
	escape      bool
	octal       int
	octalDigits int
}

func (as *argState) flushOctal() {
	as.word = append(as.word, byte(as.octal))
	as.octal = 0
	as.octalDigits = 0
	as.escape = false
}

// next consumes one byte, and reports whether it ended the word
func (as *argState) next(c byte) (done bool) {
	if as.escape {
		if c >= '0' && c <= '7' {
			as.octal = as.octal*8 + int(c-'0')
			as.octalDigits++
			if as.octalDigits == 3 {
				as.flushOctal()
			}
			return
		}

		if as.octalDigits == 0 {
			as.escape = false
			if esc, ok := escapeMap[c]; ok {
				c = esc
			}
			as.word = append(as.word, c)
			return
		}

		// A short octal escape ends at the first non-octal digit
		as.flushOctal()
	}

	switch {
	case c == '\\':
		as.escape = true
	case as.quote != 0 && c == as.quote:
		as.quote = 0
	case as.quote == 0 && (c == '"' || c == '\''):
		as.quote = c
		as.quoted = true
	case as.quote == 0 && isSpace(c):
		done = true
	default:
		as.word = append(as.word, c)
	}

	return
}

func (as *argState) complete() bool {
	return as.quote == 0 && (!as.escape || as.octalDigits > 0)
}

func (as *argState) token() (token []byte) {
	if as.escape && as.octalDigits > 0 {
		as.flushOctal()
	}

	if len(as.word) > 0 || as.quoted {
		token = append([]byte{}, as.word...)
	}

	return
}

// ScanArgs is a bufio.SplitFunc for shell-style words: whitespace
// separated, with single and double quotes, and backslash escapes
// (including three digit octal escapes).
func ScanArgs(data []byte, atEOF bool) (advance int, token []byte, err error) {
	skip := 0
	for skip < len(data) && isSpace(data[skip]) {
		skip++
	}

	if skip == len(data) {
		advance = skip
		return
	}

	var as argState
	for here := skip; here < len(data); here++ {
		if as.next(data[here]) {
			advance = here + 1
			token = as.token()
			return
		}
	}

	if !atEOF {
		// Request more data
		advance = skip
		return
	}

	if !as.complete() {
		err = fmt.Errorf("incomplete line: '%v' => '%v'", string(data[skip:]), string(as.word))
		return
	}

	advance = len(data)
	token = as.token()

	return
}

// CommandExpand splits a reader into words, expanding $VAR and ${VAR}
func CommandExpand(reader io.Reader) (out []string, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(ScanArgs)
	for scanner.Scan() {
		out = append(out, os.ExpandEnv(scanner.Text()))
	}

	err = scanner.Err()
	if err != nil {
		out = nil
		return
	}

	return
}

// ExpandArgs replaces every '@file' argument with the words of that file
func ExpandArgs(args []string) (out []string, err error) {
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			out = append(out, arg)
			continue
		}

		var reader *os.File
		reader, err = os.Open(arg[1:])
		if err != nil {
			return
		}

		var words []string
		words, err = CommandExpand(reader)
		reader.Close()
		if err != nil {
			err = fmt.Errorf("%s: %w", arg[1:], err)
			return
		}

		TraceVerbosef(VerbosityDebug, "%s: %v", arg, words)

		out = append(out, words...)
	}

	return
}
