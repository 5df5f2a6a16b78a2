package syntax

// Parser builds a declaration-level tree over the token stream. Every
// token ends up in exactly one leaf, so rendering the tree reproduces the
// input. Malformed input degrades to raw token leaves, never to loss.
type Parser struct {
	tokens []Token
	pos    int
}

// Parse lexes and parses a compilation unit.
func Parse(input []byte) *Node {
	p := &Parser{tokens: Lex(input)}
	return p.parseCompilationUnit()
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	} else {
		p.pos = len(p.tokens)
	}
	return tok
}

func (p *Parser) at(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) consumeRaw(node *Node) {
	node.Children = append(node.Children, tokenLeaf(p.advance()))
}

func (p *Parser) parseCompilationUnit() *Node {
	unit := &Node{Kind: KindCompilationUnit}
	for !p.at(TokenEOF) {
		switch p.peek().Kind {
		case TokenPackage:
			unit.Children = append(unit.Children, p.parseSimpleDecl(KindPackageDecl))
		case TokenImport:
			unit.Children = append(unit.Children, p.parseSimpleDecl(KindImportDecl))
		default:
			unit.Children = append(unit.Children, p.parseTypeDecl())
		}
	}
	unit.Children = append(unit.Children, tokenLeaf(p.advance()))
	return finishSpan(unit)
}

// parseSimpleDecl consumes raw tokens through the closing semicolon.
func (p *Parser) parseSimpleDecl(kind NodeKind) *Node {
	node := &Node{Kind: kind}
	for !p.at(TokenEOF) {
		tok := p.advance()
		node.Children = append(node.Children, tokenLeaf(tok))
		if tok.Kind == TokenSemicolon {
			break
		}
	}
	return finishSpan(node)
}

func (p *Parser) parseTypeDecl() *Node {
	mods := p.parseModifiers()
	return p.parseTypeDeclAfterModifiers(mods)
}

func (p *Parser) parseTypeDeclAfterModifiers(mods *Node) *Node {
	var kind NodeKind
	switch p.peek().Kind {
	case TokenClass:
		kind = KindClassDecl
	case TokenInterface:
		kind = KindInterfaceDecl
	case TokenEnum:
		kind = KindEnumDecl
	case TokenRecord:
		kind = KindRecordDecl
	case TokenAt:
		kind = KindAnnotationDecl
	default:
		node := &Node{Kind: KindError, Children: []*Node{mods}}
		if !p.at(TokenEOF) {
			p.consumeRaw(node)
		}
		return finishSpan(node)
	}

	node := &Node{Kind: kind, Children: []*Node{mods}}
	p.consumeRaw(node) // the keyword, or '@' of '@interface'
	if kind == KindAnnotationDecl && p.at(TokenInterface) {
		p.consumeRaw(node)
	}
	p.consumeHeader(node)

	switch p.peek().Kind {
	case TokenSemicolon:
		p.consumeRaw(node)
	case TokenLBrace:
		if kind == KindEnumDecl {
			node.Children = append(node.Children, p.parseEnumBody())
		} else {
			node.Children = append(node.Children, p.parseTypeBody())
		}
	}
	return finishSpan(node)
}

// consumeHeader consumes the declaration header (name, type parameters,
// record components, extends/implements/permits clauses) up to the body
// brace or terminating semicolon.
func (p *Parser) consumeHeader(node *Node) {
	paren, bracket, angle := 0, 0, 0
	for !p.at(TokenEOF) {
		kind := p.peek().Kind
		if paren == 0 && bracket == 0 && angle == 0 &&
			(kind == TokenLBrace || kind == TokenSemicolon) {
			return
		}
		switch kind {
		case TokenLParen:
			paren++
		case TokenRParen:
			paren--
		case TokenLBracket:
			bracket++
		case TokenRBracket:
			bracket--
		case TokenLAngle:
			angle++
		case TokenRAngle:
			angle--
		}
		p.consumeRaw(node)
	}
}

func (p *Parser) parseTypeBody() *Node {
	body := &Node{Kind: KindTypeBody}
	p.consumeRaw(body) // '{'
	for !p.at(TokenEOF) && !p.at(TokenRBrace) {
		body.Children = append(body.Children, p.parseMember())
	}
	if p.at(TokenRBrace) {
		p.consumeRaw(body)
	}
	return finishSpan(body)
}

// parseEnumBody consumes the constant list as raw tokens (anonymous
// constant bodies stay balanced), then parses members after the
// separating semicolon like any other type body.
func (p *Parser) parseEnumBody() *Node {
	body := &Node{Kind: KindTypeBody}
	p.consumeRaw(body) // '{'
	depth := 0
	for !p.at(TokenEOF) {
		kind := p.peek().Kind
		if depth == 0 && (kind == TokenSemicolon || kind == TokenRBrace) {
			break
		}
		switch kind {
		case TokenLBrace, TokenLParen:
			depth++
		case TokenRBrace, TokenRParen:
			depth--
		}
		p.consumeRaw(body)
	}
	if p.at(TokenSemicolon) {
		p.consumeRaw(body)
		for !p.at(TokenEOF) && !p.at(TokenRBrace) {
			body.Children = append(body.Children, p.parseMember())
		}
	}
	if p.at(TokenRBrace) {
		p.consumeRaw(body)
	}
	return finishSpan(body)
}

func (p *Parser) parseMember() *Node {
	if p.at(TokenSemicolon) {
		return tokenLeaf(p.advance())
	}

	mods := p.parseModifiers()

	switch p.peek().Kind {
	case TokenClass, TokenInterface, TokenEnum:
		return p.parseTypeDeclAfterModifiers(mods)
	case TokenAt:
		return p.parseTypeDeclAfterModifiers(mods)
	case TokenRecord:
		// contextual: only a declaration when "record Name (" / "record Name <"
		if p.peekN(1).Kind == TokenIdent &&
			(p.peekN(2).Kind == TokenLParen || p.peekN(2).Kind == TokenLAngle) {
			return p.parseTypeDeclAfterModifiers(mods)
		}
	case TokenLBrace:
		node := &Node{Kind: KindInitializerDecl, Children: []*Node{mods}}
		node.Children = append(node.Children, p.parseRawBlock())
		return finishSpan(node)
	case TokenRBrace, TokenEOF:
		node := &Node{Kind: KindError, Children: []*Node{mods}}
		if len(mods.Children) == 0 && !p.at(TokenEOF) && !p.at(TokenRBrace) {
			p.consumeRaw(node)
		}
		return finishSpan(node)
	}

	if p.memberIsMethod() {
		return p.parseMethodRest(mods)
	}
	return p.parseFieldRest(mods)
}

// memberIsMethod looks ahead without consuming: the first structural
// token at depth zero decides. '(' means method (or compact constructor
// via '{'), '=' or ';' means field.
func (p *Parser) memberIsMethod() bool {
	paren, bracket, brace, angle := 0, 0, 0, 0
	for i := p.pos; i < len(p.tokens); i++ {
		kind := p.tokens[i].Kind
		if paren == 0 && bracket == 0 && brace == 0 && angle == 0 {
			switch kind {
			case TokenLParen, TokenLBrace:
				return true
			case TokenAssign, TokenSemicolon, TokenEOF, TokenRBrace:
				return false
			}
		}
		switch kind {
		case TokenLParen:
			paren++
		case TokenRParen:
			paren--
		case TokenLBracket:
			bracket++
		case TokenRBracket:
			bracket--
		case TokenLBrace:
			brace++
		case TokenRBrace:
			brace--
		case TokenLAngle:
			angle++
		case TokenRAngle:
			angle--
		}
	}
	return false
}

func (p *Parser) parseMethodRest(mods *Node) *Node {
	node := &Node{Kind: KindMethodDecl, Children: []*Node{mods}}
	paren, bracket, angle := 0, 0, 0
	for !p.at(TokenEOF) {
		kind := p.peek().Kind
		if paren == 0 && bracket == 0 && angle == 0 {
			if kind == TokenLBrace {
				node.Children = append(node.Children, p.parseRawBlock())
				return finishSpan(node)
			}
			if kind == TokenSemicolon {
				p.consumeRaw(node)
				return finishSpan(node)
			}
			if kind == TokenRBrace {
				break
			}
		}
		switch kind {
		case TokenLParen:
			paren++
		case TokenRParen:
			paren--
		case TokenLBracket:
			bracket++
		case TokenRBracket:
			bracket--
		case TokenLAngle:
			angle++
		case TokenRAngle:
			angle--
		}
		p.consumeRaw(node)
	}
	return finishSpan(node)
}

// parseFieldRest consumes through the terminating semicolon. Only
// bracket-like pairs are tracked: angle brackets are unreliable inside
// initializer expressions (they may be comparisons).
func (p *Parser) parseFieldRest(mods *Node) *Node {
	node := &Node{Kind: KindFieldDecl, Children: []*Node{mods}}
	paren, bracket, brace := 0, 0, 0
	for !p.at(TokenEOF) {
		kind := p.peek().Kind
		if paren == 0 && bracket == 0 && brace == 0 {
			if kind == TokenSemicolon {
				p.consumeRaw(node)
				return finishSpan(node)
			}
			if kind == TokenRBrace {
				break
			}
		}
		switch kind {
		case TokenLParen:
			paren++
		case TokenRParen:
			paren--
		case TokenLBracket:
			bracket++
		case TokenRBracket:
			bracket--
		case TokenLBrace:
			brace++
		case TokenRBrace:
			brace--
		}
		p.consumeRaw(node)
	}
	return finishSpan(node)
}

func (p *Parser) parseRawBlock() *Node {
	node := &Node{Kind: KindBlock}
	p.consumeRaw(node) // '{'
	depth := 1
	for !p.at(TokenEOF) && depth > 0 {
		switch p.peek().Kind {
		case TokenLBrace:
			depth++
		case TokenRBrace:
			depth--
		}
		p.consumeRaw(node)
	}
	return finishSpan(node)
}

func (p *Parser) parseModifiers() *Node {
	node := &Node{Kind: KindModifiers}
	for {
		switch {
		case p.at(TokenAt):
			if p.peekN(1).Kind == TokenInterface {
				return finishSpan(node)
			}
			node.Children = append(node.Children, p.parseAnnotation())
		case p.peek().Kind.IsModifier():
			// contextual keywords used as plain names are not modifiers
			switch p.peekN(1).Kind {
			case TokenAssign, TokenSemicolon, TokenDot, TokenComma, TokenRParen:
				return finishSpan(node)
			}
			node.Children = append(node.Children, modifierLeaf(p.advance()))
		default:
			return finishSpan(node)
		}
	}
}

func (p *Parser) parseAnnotation() *Node {
	node := &Node{Kind: KindAnnotation}
	p.consumeRaw(node) // '@'
	for p.at(TokenIdent) {
		p.consumeRaw(node)
		if p.at(TokenDot) && p.peekN(1).Kind == TokenIdent {
			p.consumeRaw(node)
			continue
		}
		break
	}
	if p.at(TokenLParen) {
		depth := 0
		for !p.at(TokenEOF) {
			switch p.peek().Kind {
			case TokenLParen:
				depth++
			case TokenRParen:
				depth--
			}
			p.consumeRaw(node)
			if depth == 0 {
				break
			}
		}
	}
	return finishSpan(node)
}

// finishSpan derives a node's span from its first and last token leaves.
func finishSpan(node *Node) *Node {
	first, ok := FirstToken(node)
	if !ok {
		return node
	}
	last, _ := LastToken(node)
	node.Span = Span{Start: first.Span.Start, End: last.Span.End}
	return node
}
