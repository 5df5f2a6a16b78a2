package syntax

import (
	"unicode"
	"unicode/utf8"
)

// Lexer scans Java source into tokens with attached trivia.
type Lexer struct {
	input  []byte
	pos    int
	line   int
	column int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input:  input,
		pos:    0,
		line:   1,
		column: 1,
	}
}

func (l *Lexer) Position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) textFrom(start Position) string {
	return string(l.input[start.Offset:l.pos])
}

// Lex scans the whole input and returns the token stream, trivia attached
// per the partition convention: trivia after a token up to and including
// the first newline is its trailing run, the rest becomes the next
// token's leading run. The final element is always an EOF token; it holds
// whatever trivia is left at the end of the file as leading.
func Lex(input []byte) []Token {
	l := NewLexer(input)
	var tokens []Token
	var pending []Trivia
	for {
		tok, trivia, isTrivia := l.scanPiece()
		if isTrivia {
			pending = append(pending, trivia)
			continue
		}
		attach(tokens, &tok, pending)
		pending = nil
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

// attach splits a pending trivia run between the previous token's
// trailing and the new token's leading.
func attach(tokens []Token, tok *Token, pending []Trivia) {
	if len(tokens) == 0 {
		tok.Leading = pending
		return
	}
	prev := &tokens[len(tokens)-1]
	split := len(pending)
	for i, t := range pending {
		if t.IsNewline() {
			split = i + 1
			break
		}
	}
	prev.Trailing = pending[:split:split]
	tok.Leading = pending[split:]
}

// scanPiece scans the next token or trivia piece.
func (l *Lexer) scanPiece() (Token, Trivia, bool) {
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}, Trivia{}, false
	}

	ch := l.peek()

	switch {
	case ch == ' ' || ch == '\t':
		for l.peek() == ' ' || l.peek() == '\t' {
			l.advance()
		}
		return Token{}, Trivia{Kind: TriviaSpace, Text: l.textFrom(start)}, true
	case ch == '\r':
		l.advance()
		if l.peek() == '\n' {
			l.advance()
		}
		return Token{}, Trivia{Kind: TriviaNewline, Text: l.textFrom(start)}, true
	case ch == '\n':
		l.advance()
		return Token{}, Trivia{Kind: TriviaNewline, Text: l.textFrom(start)}, true
	case ch == '/' && l.peekN(1) == '/':
		l.advanceN(2)
		for l.peek() != 0 && l.peek() != '\n' && l.peek() != '\r' {
			l.advance()
		}
		return Token{}, Trivia{Kind: TriviaLineComment, Text: l.textFrom(start)}, true
	case ch == '/' && l.peekN(1) == '*':
		l.advanceN(2)
		for {
			if l.peek() == 0 {
				break
			}
			if l.peek() == '*' && l.peekN(1) == '/' {
				l.advanceN(2)
				break
			}
			l.advance()
		}
		return Token{}, Trivia{Kind: TriviaBlockComment, Text: l.textFrom(start)}, true
	}

	return l.scanToken(start), Trivia{}, false
}

func (l *Lexer) scanToken(start Position) Token {
	ch := l.peek()

	if isJavaLetter(ch) {
		return l.scanIdentOrKeyword(start)
	}
	if isDigit(ch) {
		return l.scanNumber(start)
	}
	if ch == '\'' {
		return l.scanCharLiteral(start)
	}
	if ch == '"' {
		if l.peekN(1) == '"' && l.peekN(2) == '"' {
			return l.scanTextBlock(start)
		}
		return l.scanStringLiteral(start)
	}
	return l.scanOperator(start)
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	return Token{
		Kind: kind,
		Span: Span{Start: start, End: l.Position()},
		Text: l.textFrom(start),
	}
}

func (l *Lexer) scanIdentOrKeyword(start Position) Token {
	for isJavaLetterOrDigit(l.peek()) {
		l.advance()
	}
	literal := l.textFrom(start)

	// "non-sealed" is the only keyword containing a dash.
	if literal == "non" && l.peek() == '-' {
		rest := l.input[l.pos:]
		if len(rest) >= 7 && string(rest[:7]) == "-sealed" {
			if len(rest) == 7 || !isJavaLetterOrDigit(rest[7]) {
				l.advanceN(7)
				return l.token(TokenNonSealed, start)
			}
		}
	}

	return l.token(LookupKeyword(literal), start)
}

func (l *Lexer) scanNumber(start Position) Token {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X' || l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		l.advanceN(2)
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
		if l.peek() == 'l' || l.peek() == 'L' {
			l.advance()
		}
		return l.token(TokenIntLiteral, start)
	}

	isFloat := false
	for isDigit(l.peek()) || l.peek() == '_' {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.advance()
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) || l.peek() == '_' {
			l.advance()
		}
	}
	switch l.peek() {
	case 'f', 'F', 'd', 'D':
		isFloat = true
		l.advance()
	case 'l', 'L':
		l.advance()
	}

	kind := TokenIntLiteral
	if isFloat {
		kind = TokenFloatLiteral
	}
	return l.token(kind, start)
}

func (l *Lexer) scanCharLiteral(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '\'' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '\'' {
		l.advance()
	}
	return l.token(TokenCharLiteral, start)
}

func (l *Lexer) scanStringLiteral(start Position) Token {
	l.advance()
	for l.peek() != 0 && l.peek() != '"' && l.peek() != '\n' {
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	if l.peek() == '"' {
		l.advance()
	}
	return l.token(TokenStringLiteral, start)
}

func (l *Lexer) scanTextBlock(start Position) Token {
	l.advanceN(3)
	for l.peek() != 0 {
		if l.peek() == '"' && l.peekN(1) == '"' && l.peekN(2) == '"' {
			l.advanceN(3)
			break
		}
		if l.peek() == '\\' {
			l.advance()
		}
		l.advance()
	}
	return l.token(TokenTextBlock, start)
}

// scanOperator scans punctuation. Angle brackets are always single tokens
// so that generic headers stay balanced; everything the declaration
// parser does not care about becomes TokenOperator.
func (l *Lexer) scanOperator(start Position) Token {
	ch := l.peek()

	switch ch {
	case '(':
		l.advance()
		return l.token(TokenLParen, start)
	case ')':
		l.advance()
		return l.token(TokenRParen, start)
	case '{':
		l.advance()
		return l.token(TokenLBrace, start)
	case '}':
		l.advance()
		return l.token(TokenRBrace, start)
	case '[':
		l.advance()
		return l.token(TokenLBracket, start)
	case ']':
		l.advance()
		return l.token(TokenRBracket, start)
	case ';':
		l.advance()
		return l.token(TokenSemicolon, start)
	case ',':
		l.advance()
		return l.token(TokenComma, start)
	case '@':
		l.advance()
		return l.token(TokenAt, start)
	case '<':
		l.advance()
		return l.token(TokenLAngle, start)
	case '>':
		l.advance()
		return l.token(TokenRAngle, start)

	case '.':
		if l.peekN(1) == '.' && l.peekN(2) == '.' {
			l.advanceN(3)
			return l.token(TokenOperator, start)
		}
		l.advance()
		return l.token(TokenDot, start)

	case ':':
		if l.peekN(1) == ':' {
			l.advanceN(2)
			return l.token(TokenOperator, start)
		}
		l.advance()
		return l.token(TokenOperator, start)

	case '=':
		if l.peekN(1) == '=' {
			l.advanceN(2)
			return l.token(TokenOperator, start)
		}
		l.advance()
		return l.token(TokenAssign, start)

	case '+', '-', '*', '/', '%', '&', '|', '^', '!', '~', '?':
		first := ch
		l.advance()
		next := l.peek()
		switch {
		case next == '=':
			l.advance()
		case (first == '+' || first == '-' || first == '&' || first == '|') && next == first:
			l.advance()
		case first == '-' && next == '>':
			l.advance()
		}
		return l.token(TokenOperator, start)
	}

	l.advance()
	return l.token(TokenError, start)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isJavaLetter(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || r == '_' || r == '$'
	}
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isJavaLetterOrDigit(ch byte) bool {
	if ch >= 128 {
		r, _ := utf8.DecodeRune([]byte{ch})
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$'
	}
	return isJavaLetter(ch) || isDigit(ch)
}
