// Package syntax provides a full-fidelity syntax tree for Java source.
//
// Invariants:
//   - Token.Text is the exact source substring covered by Token.Span.
//   - Every source byte belongs to exactly one token's leading trivia,
//     text, or trailing trivia, in tree order. Rendering a tree with Text
//     reproduces the parsed input byte for byte.
//   - A token's trailing trivia extends up to and including the first
//     newline after it; everything past that newline is the next token's
//     leading trivia. The EOF token carries any remainder of the file.
//   - Nodes are never mutated after parsing. Rewrites return a new root
//     that shares untouched subtrees with the old one; positions in the
//     new tree still describe the originally parsed text.
//   - The parser works at declaration granularity: member bodies and
//     statement-level keywords are kept as raw token runs below the
//     declaration that owns them. Statement keywords are lexed as plain
//     identifiers; declaration structure never depends on them.
package syntax
