package syntax

// TokenKind identifies the lexical class of a token. The set is trimmed to
// declaration vocabulary: keywords that only occur inside statements are
// lexed as TokenIdent and treated as raw material.
type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals and names
	TokenIdent
	TokenIntLiteral
	TokenFloatLiteral
	TokenCharLiteral
	TokenStringLiteral
	TokenTextBlock

	// Modifier keywords
	TokenPublic
	TokenProtected
	TokenPrivate
	TokenAbstract
	TokenStatic
	TokenFinal
	TokenStrictfp
	TokenNative
	TokenSynchronized
	TokenTransient
	TokenVolatile
	TokenDefault
	TokenSealed
	TokenNonSealed

	// Declaration keywords
	TokenPackage
	TokenImport
	TokenClass
	TokenInterface
	TokenEnum
	TokenRecord
	TokenExtends
	TokenImplements
	TokenPermits
	TokenThrows
	TokenVoid

	// Punctuation
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenSemicolon
	TokenComma
	TokenDot
	TokenAt
	TokenLAngle
	TokenRAngle
	TokenAssign

	// TokenOperator is any other operator or punctuation sequence.
	TokenOperator
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenError:         "Error",
	TokenIdent:         "Identifier",
	TokenIntLiteral:    "IntLiteral",
	TokenFloatLiteral:  "FloatLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenStringLiteral: "StringLiteral",
	TokenTextBlock:     "TextBlock",
	TokenPublic:        "public",
	TokenProtected:     "protected",
	TokenPrivate:       "private",
	TokenAbstract:      "abstract",
	TokenStatic:        "static",
	TokenFinal:         "final",
	TokenStrictfp:      "strictfp",
	TokenNative:        "native",
	TokenSynchronized:  "synchronized",
	TokenTransient:     "transient",
	TokenVolatile:      "volatile",
	TokenDefault:       "default",
	TokenSealed:        "sealed",
	TokenNonSealed:     "non-sealed",
	TokenPackage:       "package",
	TokenImport:        "import",
	TokenClass:         "class",
	TokenInterface:     "interface",
	TokenEnum:          "enum",
	TokenRecord:        "record",
	TokenExtends:       "extends",
	TokenImplements:    "implements",
	TokenPermits:       "permits",
	TokenThrows:        "throws",
	TokenVoid:          "void",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenSemicolon:     ";",
	TokenComma:         ",",
	TokenDot:           ".",
	TokenAt:            "@",
	TokenLAngle:        "<",
	TokenRAngle:        ">",
	TokenAssign:        "=",
	TokenOperator:      "Operator",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsModifier reports whether the kind is a declaration modifier keyword.
func (k TokenKind) IsModifier() bool {
	switch k {
	case TokenPublic, TokenProtected, TokenPrivate,
		TokenAbstract, TokenStatic, TokenFinal,
		TokenStrictfp, TokenNative, TokenSynchronized,
		TokenTransient, TokenVolatile, TokenDefault,
		TokenSealed, TokenNonSealed:
		return true
	default:
		return false
	}
}

// Token is a single source token. Leading and Trailing hold the trivia
// partitioned around it; see the package invariants.
type Token struct {
	Kind     TokenKind
	Span     Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// FullStart returns the byte offset where the token's leading trivia
// begins.
func (t Token) FullStart() int {
	return t.Span.Start.Offset - TriviaLen(t.Leading)
}

// HasTrivia reports whether the token carries any leading or trailing
// trivia at all.
func (t Token) HasTrivia() bool {
	return len(t.Leading) > 0 || len(t.Trailing) > 0
}

// WithLeading returns a copy of the token with the given leading trivia.
func (t Token) WithLeading(run []Trivia) Token {
	t.Leading = run
	return t
}

// WithTrailing returns a copy of the token with the given trailing trivia.
func (t Token) WithTrailing(run []Trivia) Token {
	t.Trailing = run
	return t
}

var keywords = map[string]TokenKind{
	"public":       TokenPublic,
	"protected":    TokenProtected,
	"private":      TokenPrivate,
	"abstract":     TokenAbstract,
	"static":       TokenStatic,
	"final":        TokenFinal,
	"strictfp":     TokenStrictfp,
	"native":       TokenNative,
	"synchronized": TokenSynchronized,
	"transient":    TokenTransient,
	"volatile":     TokenVolatile,
	"default":      TokenDefault,
	"sealed":       TokenSealed,
	"package":      TokenPackage,
	"import":       TokenImport,
	"class":        TokenClass,
	"interface":    TokenInterface,
	"enum":         TokenEnum,
	"record":       TokenRecord,
	"extends":      TokenExtends,
	"implements":   TokenImplements,
	"permits":      TokenPermits,
	"throws":       TokenThrows,
	"void":         TokenVoid,
}

// LookupKeyword maps an identifier to its keyword kind, or TokenIdent.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
