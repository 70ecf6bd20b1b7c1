package lexer

import (
	stderrors "errors"
	"strconv"

	"github.com/KimNorgaard/go-lox/errors"
	"github.com/KimNorgaard/go-lox/token"
)

// Lexer holds the state for tokenizing a source.
type Lexer struct {
	input   []rune
	start   int // first rune of the token being scanned
	current int // next rune to be read
	line    int

	tokens []token.Token
	errors errors.List
}

// New creates and returns a new Lexer.
func New(source string) *Lexer {
	return &Lexer{
		input: []rune(source),
		line:  1,
	}
}

// Scan tokenizes source in a single pass. It always returns every token it
// could produce, terminated by an EOF token, together with any lexical
// errors found along the way.
func Scan(source string) ([]token.Token, errors.List) {
	l := New(source)
	return l.ScanTokens(), l.Errors()
}

// Errors returns the lexical errors encountered so far.
func (l *Lexer) Errors() errors.List {
	return l.errors
}

// ScanTokens scans the whole input and returns the token sequence.
func (l *Lexer) ScanTokens() []token.Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.tokens = append(l.tokens, token.Token{Type: token.EOF, Line: l.line})
	return l.tokens
}

func (l *Lexer) scanToken() { //nolint:gocyclo
	ch := l.advance()
	switch ch {
	case '(', ')', '{', '}', ',', '.', '-', '+', ';', '*':
		l.addToken(token.Type(ch))
	case '!':
		l.addToken(l.either('=', token.BANG_EQUAL, token.BANG))
	case '=':
		l.addToken(l.either('=', token.EQUAL_EQUAL, token.EQUAL))
	case '<':
		l.addToken(l.either('=', token.LESS_EQUAL, token.LESS))
	case '>':
		l.addToken(l.either('=', token.GREATER_EQUAL, token.GREATER))
	case '/':
		switch {
		case l.match('/'):
			l.skipLineComment()
		case l.match('*'):
			l.skipBlockComment()
		default:
			l.addToken(token.SLASH)
		}
	case ' ', '\r', '\t':
	case '\n':
		l.line++
	case '"':
		l.readString()
	default:
		switch {
		case isDigit(ch):
			l.readNumber()
		case isAlpha(ch):
			l.readIdentifier()
		default:
			l.error("Unexpected character")
		}
	}
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.input)
}

func (l *Lexer) advance() rune {
	ch := l.input[l.current]
	l.current++
	return ch
}

// match consumes the next rune if it is expected.
func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() || l.input[l.current] != expected {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) either(next rune, two, one token.Type) token.Type {
	if l.match(next) {
		return two
	}
	return one
}

func (l *Lexer) peekRune() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.input[l.current]
}

func (l *Lexer) peekNextRune() rune {
	if l.current+1 >= len(l.input) {
		return 0
	}
	return l.input[l.current+1]
}

func (l *Lexer) skipLineComment() {
	for l.peekRune() != '\n' && !l.isAtEnd() {
		l.advance()
	}
}

func (l *Lexer) skipBlockComment() {
	for !l.isAtEnd() {
		if l.peekRune() == '*' && l.peekNextRune() == '/' {
			l.advance() // consume '*'
			l.advance() // consume '/'
			return
		}
		if l.advance() == '\n' {
			l.line++
		}
	}
	l.error("Unterminated block comment")
}

func (l *Lexer) readString() {
	for l.peekRune() != '"' && !l.isAtEnd() {
		if l.peekRune() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.isAtEnd() {
		l.error("Unterminated string")
		return
	}
	l.advance() // consume closing quote
	value := string(l.input[l.start+1 : l.current-1])
	l.addLiteral(token.STRING, token.String(value))
}

func (l *Lexer) readNumber() {
	for isDigit(l.peekRune()) {
		l.advance()
	}
	// A trailing '.' is left for the DOT token: "123." scans as 123 then '.'.
	if l.peekRune() == '.' && isDigit(l.peekNextRune()) {
		l.advance() // consume '.'
		for isDigit(l.peekRune()) {
			l.advance()
		}
	}
	text := string(l.input[l.start:l.current])
	// Digit runs beyond float64 range scan as infinity.
	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !stderrors.Is(err, strconv.ErrRange) {
		l.error("Invalid number")
		return
	}
	l.addLiteral(token.NUMBER, token.Number(value))
}

func (l *Lexer) readIdentifier() {
	for isAlphaNumeric(l.peekRune()) {
		l.advance()
	}
	text := string(l.input[l.start:l.current])
	l.addToken(token.LookupIdent(text))
}

func (l *Lexer) addToken(typ token.Type) {
	l.addLiteral(typ, nil)
}

func (l *Lexer) addLiteral(typ token.Type, lit token.Literal) {
	l.tokens = append(l.tokens, token.Token{
		Type:    typ,
		Lexeme:  string(l.input[l.start:l.current]),
		Literal: lit,
		Line:    l.line,
	})
}

func (l *Lexer) error(message string) {
	l.errors = append(l.errors, errors.NewScanError(l.line, message))
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isAlpha(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isAlphaNumeric(ch rune) bool {
	return isAlpha(ch) || isDigit(ch)
}
