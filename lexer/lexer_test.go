package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/twiglang/twig/diag"
)

type tokenCase struct {
	input    string
	expected []TokenType
}

func typesOf(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScan_Punctuation(t *testing.T) {
	tests := []tokenCase{
		{
			input:    `(){},.;+-*/%`,
			expected: []TokenType{LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, COMMA, DOT, SEMICOLON, PLUS, MINUS, STAR, SLASH, PERCENT, EOF},
		},
		{
			input:    `! != = == < <= > >=`,
			expected: []TokenType{BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, EOF},
		},
	}
	for _, tt := range tests {
		tokens, diags := New(tt.input).Scan()
		assert.Empty(t, diags)
		assert.Equal(t, tt.expected, typesOf(tokens))
	}
}

func TestScan_KeywordsAndIdentifiers(t *testing.T) {
	tokens, diags := New(`var x = fun while break print nil true false myVar_1`).Scan()
	assert.Empty(t, diags)
	assert.Equal(t, []TokenType{VAR, IDENTIFIER, EQUAL, FUN, WHILE, BREAK, PRINT, NIL, TRUE, FALSE, IDENTIFIER, EOF}, typesOf(tokens))
}

func TestScan_NumbersAndStrings(t *testing.T) {
	tokens, diags := New(`123 3.14 "hello world"`).Scan()
	assert.Empty(t, diags)
	assert.Equal(t, []TokenType{NUMBER, NUMBER, STRING, EOF}, typesOf(tokens))
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, "hello world", tokens[2].Literal)
}

func TestScan_CommentsAndWhitespaceIgnored(t *testing.T) {
	toks, diagsGot := New("1 + 2 // trailing comment\n+ 3").Scan()
	assert.Empty(t, diagsGot)
	assert.Equal(t, []TokenType{NUMBER, PLUS, NUMBER, PLUS, NUMBER, EOF}, typesOf(toks))
}

func TestScan_UnterminatedString(t *testing.T) {
	_, diags := New(`"never closes`).Scan()
	if assert.Len(t, diags, 1) {
		assert.Equal(t, diag.KindUnterminatedString, diags[0].Kind)
	}
}

func TestScan_UnexpectedCharacterContinuesScanning(t *testing.T) {
	tokens, diags := New("1 @ 2").Scan()
	if assert.Len(t, diags, 1) {
		assert.Equal(t, diag.KindUnexpectedChar, diags[0].Kind)
	}
	assert.Equal(t, []TokenType{NUMBER, NUMBER, EOF}, typesOf(tokens))
}

func TestScan_MultilineStringTracksLine(t *testing.T) {
	tokens, diags := New("\"line one\nstill the string\" after").Scan()
	assert.Empty(t, diags)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}
