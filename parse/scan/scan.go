// Package scan implements a state-function lexer for the monomial-line
// grammar used by fastpoly's polynomial file format: a line is a sequence
// of signed terms, each term a coefficient followed by zero or more
// "*x<index>" factors.
package scan

import (
	"fmt"
	"io"
	"strings"
)

type Type int

const (
	EOF Type = iota
	Error
	Int
	Sign
	Star
	X
)

type Location struct {
	Line   int
	Column int
}

type Token struct {
	Type     Type
	Text     string
	Location Location
}

const eof = -1

type stateFn func(*Scanner) stateFn

// A Scanner tokenizes a single monomial/polynomial line read from r.
type Scanner struct {
	token Token

	r         io.ByteReader
	input     string
	start     int
	pos       int
	loc       Location
	done      bool
	lastWidth int
	buf       []byte
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.ByteReader) *Scanner {
	return &Scanner{r: r}
}

// Next returns the next token, or a Token of Type EOF/Error at end of
// input / on a malformed character.
func (l *Scanner) Next() Token {
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

func (l *Scanner) loadLine() {
	l.buf = l.buf[:0]
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			l.done = true
			break
		}
		if c == '\r' {
			continue
		}
		l.buf = append(l.buf, c)
		if c == '\n' {
			break
		}
	}
	if l.start == l.pos {
		l.input = string(l.buf)
		l.start, l.pos = 0, 0
	} else {
		l.input += string(l.buf)
	}
}

func (l *Scanner) readRune() (rune, int) {
	if !l.done && l.pos == len(l.input) {
		l.loadLine()
	}
	if l.pos == len(l.input) {
		return eof, 0
	}
	return rune(l.input[l.pos]), 1
}

func (l *Scanner) peek() rune {
	r, _ := l.readRune()
	return r
}

func (l *Scanner) next() rune {
	var r rune
	r, l.lastWidth = l.readRune()
	l.pos += l.lastWidth
	return r
}

func (l *Scanner) backup() {
	l.pos -= l.lastWidth
}

func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

func (l *Scanner) emit(t Type) stateFn {
	text := l.input[l.start:l.pos]
	l.token = Token{Type: t, Text: text, Location: l.loc}
	for _, c := range text {
		if c == '\n' {
			l.loc.Line++
			l.loc.Column = 0
		} else {
			l.loc.Column++
		}
	}
	l.start = l.pos
	return nil
}

func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Type: Error, Text: fmt.Sprintf(format, args...), Location: l.loc}
	l.input = l.input[:0]
	l.start, l.pos = 0, 0
	return nil
}

func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		l.token = Token{Type: EOF, Text: "EOF"}
		return nil
	case r == '\n':
		l.start = l.pos
		return lexAny
	case isSpace(r):
		return lexSpace
	case r == '+' || r == '-':
		return l.emit(Sign)
	case r == '*':
		return l.emit(Star)
	case r == 'x':
		return l.emit(X)
	case '0' <= r && r <= '9':
		return lexInt
	default:
		return l.errorf("unrecognized character: %q", r)
	}
}

func lexInt(l *Scanner) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	return l.emit(Int)
}

func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.start = l.pos
	return lexAny
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}
