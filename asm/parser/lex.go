package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.creack.net/hack/op"
)

type stateFn func(*lexer) stateFn

const eof = -1

// Whitespace carries no meaning in the language.
const whitespaceChars = " \t\r\n"

type itemType int

const (
	itemEOF itemType = iota // End of the input.
	itemComment
	itemLabel
	itemAInstruction
	itemCInstruction
	itemIllegal // Unrecognized character; dropped by the parser.
)

func (it itemType) String() string {
	switch it {
	case itemEOF:
		return "<eof>"
	case itemComment:
		return "<comment>"
	case itemLabel:
		return "<label>"
	case itemAInstruction:
		return "<a-instruction>"
	case itemCInstruction:
		return "<c-instruction>"
	case itemIllegal:
		return "<illegal>"
	default:
		return fmt.Sprintf("<unknown token %d>", it)
	}
}

type item struct {
	typ  itemType // The type of this item.
	pos  Pos      // The start position, in bytes, of this item in the input string.
	val  string   // The value of this item.
	line int      // The line number at the start of this item.
}

func (i item) String() string {
	switch {
	case i.typ == itemEOF:
		return "EOF"
	case len(i.val) > 10:
		return fmt.Sprintf("%s %.10q...", i.typ, i.val)
	}
	return fmt.Sprintf("%s %q", i.typ, i.val)
}

type Pos int

// lexer holds the state of the scanner.
type lexer struct {
	name      string // The name of the input; used only for error reports.
	input     string // The string being scanned.
	pos       Pos    // Current position in the input.
	start     Pos    // Start position of this item.
	atEOF     bool   // We have hit the end of input and returned eof.
	line      int    // 1+number of newlines seen.
	startLine int    // Start line of this item.
	item      item   // Item to return to parser.
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if int(l.pos) >= len(l.input) {
		l.atEOF = true
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += Pos(w)
	if r == '\n' {
		l.line++
	}
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune.
func (l *lexer) backup() {
	if !l.atEOF && l.pos > 0 {
		r, w := utf8.DecodeLastRuneInString(l.input[:l.pos])
		l.pos -= Pos(w)
		// Correct newline count.
		if r == '\n' {
			l.line--
		}
	}
}

// thisItem returns the item at the current input point with the specified type
// and advances the input.
func (l *lexer) thisItem(t itemType) item {
	i := item{t, l.start, l.input[l.start:l.pos], l.startLine}
	l.start = l.pos
	l.startLine = l.line
	return i
}

// emit passes the trailing text as an item back to the parser.
func (l *lexer) emit(t itemType) stateFn {
	return l.emitItem(l.thisItem(t))
}

// emitItem passes the specified item to the parser.
func (l *lexer) emitItem(i item) stateFn {
	l.item = i
	return nil
}

// ignore skips over the pending input before this point. Newlines are
// already counted by next, nothing to adjust here.
func (l *lexer) ignore() {
	l.start = l.pos
	l.startLine = l.line
}

// acceptRun consumes a run of runes from the valid set.
func (l *lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

// lexText skips whitespace and classifies the next token by its first
// character.
func lexText(l *lexer) stateFn {
	l.acceptRun(whitespaceChars)
	l.ignore()

	r := l.next()
	if r == eof {
		return l.emit(itemEOF)
	}

	// C-instructions keep their first character, every other branch
	// drops its marker before scanning the body.
	if strings.ContainsRune(op.ComputeStartChars, r) {
		l.backup()
		return lexCInstruction
	}
	l.ignore()

	switch r {
	case op.CommentChar:
		if l.peek() == op.CommentChar {
			l.next()
			l.ignore()
			return lexComment
		}
		return l.emit(itemIllegal)
	case op.LabelOpenChar:
		return lexLabel
	case op.AddressChar:
		return lexAInstruction
	default:
		return l.emit(itemIllegal)
	}
}

// lexCInstruction scans the remainder of the line as the literal.
func lexCInstruction(l *lexer) stateFn {
	for {
		r := l.next()
		if r == eof {
			break
		}
		if r == '\n' || r == '\r' {
			l.backup()
			break
		}
	}
	return l.emit(itemCInstruction)
}

// lexComment scans everything up to the line terminator, excluded.
func lexComment(l *lexer) stateFn {
	for {
		r := l.next()
		if r == eof {
			break
		}
		if r == '\n' || r == '\r' {
			l.backup()
			break
		}
	}
	return l.emit(itemComment)
}

// lexLabel scans up to the closing parenthesis, excluded from the
// literal. A label cut short by a line terminator or the end of input is
// truncated there, not rejected.
func lexLabel(l *lexer) stateFn {
	for {
		r := l.next()
		if r == eof {
			return l.emit(itemLabel)
		}
		if r == '\n' || r == '\r' {
			l.backup()
			return l.emit(itemLabel)
		}
		if r == op.LabelCloseChar {
			i := l.thisItem(itemLabel)
			i.val = strings.TrimSuffix(i.val, string(op.LabelCloseChar))
			return l.emitItem(i)
		}
	}
}

// lexAInstruction scans the target up to the first whitespace character.
func lexAInstruction(l *lexer) stateFn {
	for {
		r := l.next()
		if r == eof {
			break
		}
		if strings.ContainsRune(whitespaceChars, r) {
			l.backup()
			break
		}
	}
	return l.emit(itemAInstruction)
}

// nextItem returns the next item from the input. Called by the parser.
func (l *lexer) nextItem() item {
	l.item = item{itemEOF, l.pos, "", l.startLine}
	state := lexText
	for {
		state = state(l)
		if state == nil {
			return l.item
		}
	}
}

// NewLexer creates a new scanner for the input string.
func NewLexer(name, input string) *lexer {
	// A leading byte order mark is not part of the program.
	input = strings.TrimPrefix(input, "\uFEFF")
	return &lexer{
		name:      name,
		input:     input,
		line:      1,
		startLine: 1,
	}
}
