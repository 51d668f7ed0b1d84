package parser

import "testing"

func TestParseValid(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"empty", "$$$$", "TRUE"},
		{"single variable", "$$a$$", "a"},
		{"negation", "$$NOT a$$", "NOT a"},
		{"conjunction", "$$a AND b$$", "(a AND b)"},
		{"disjunction", "$$a OR b$$", "(a OR b)"},
		{"implication", "$$a IMPLIES b$$", "(a IMPLIES b)"},
		{"precedence not over and", "$$NOT a AND b$$", "(NOT a AND b)"},
		{"precedence and over or", "$$a OR b AND c$$", "(a OR (b AND c))"},
		{"precedence or over implies", "$$a AND b IMPLIES c OR d$$", "((a AND b) IMPLIES (c OR d))"},
		{"parens override", "$$(a OR b) AND c$$", "((a OR b) AND c)"},
		{"symbolic operators", "$$¬a ∧ b$$", "(NOT a AND b)"},
		{"double negation kept until normalized", "$$NOT NOT a$$", "NOT NOT a"},
		{"scenario: a and not a", "$$a AND NOT a$$", "(a AND NOT a)"},
		{"scenario: implication chain", "$$(a IMPLIES b) AND a AND NOT b$$", "(((a IMPLIES b) AND a) AND NOT b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.expr, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []string{
		"a b",        // missing delimiters entirely
		"$$a b$$",    // missing operator between variables (scenario 7)
		"$$a AND$$",  // dangling operator
		"$$(a$$",     // unterminated parenthesis
		"$$a)$$",     // unmatched closing paren
		"a$$",        // missing opening delimiter
		"$$a",        // missing closing delimiter
		"$$a # b$$",  // invalid character
		"$a$",        // single-'$' delimiter is not the two-character token
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			if err == nil {
				t.Fatalf("Parse(%q) expected a syntax error, got nil", expr)
			}
			if _, ok := err.(*SyntaxError); !ok {
				t.Errorf("Parse(%q) returned %T, want *SyntaxError", expr, err)
			}
		})
	}
}
