/*
Package query provides the lexer, parser, and expression tree for the bq
boolean query language.

# Overview

A query string passes through two phases. The Lexer splits it into
tokens; the Parser builds an immutable expression tree from the token
list using recursive descent. The tree is then evaluated against target
text with Eval, which dispatches on node kind and tests substring
containment at each leaf.

# Syntax

	query      := or_group ( '|' or_group )*
	or_group   := and_group ( '&' and_group )*
	and_group  := LITERAL | '!' and_group | '(' query ')'
	LITERAL    := '"' <chars excluding '"'> '"'

NOT binds tightest, then AND, then OR; the precedence is encoded
entirely in the grammar nesting. Whitespace between tokens is
insignificant. There is no escaping inside literals, so a literal cannot
contain a double quote.

# Matching rules

A query tree matches target text as follows:

  - A Literal leaf matches if its keyword occurs as a contiguous
    substring of the text (byte-exact, no case folding).
  - An And node matches if both children match.
  - An Or node matches if either child matches.
  - A Not node matches if its child doesn't.

# Errors

Malformed input is rejected at construction time with *LexError
(unterminated literal, unrecognized character) or *ParseError (empty
query, unexpected token, unmatched parenthesis, trailing tokens, empty
literal), each carrying the byte position of the offense. Evaluation of
a successfully built tree never fails.
*/
package query
