package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

func TestBracketRewriter_Rewrite(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		want        string
		wantChanged bool
		wantHits    []RuleHit
	}{
		{
			name:        "load_simple_label",
			content:     "LD AB, [foo]",
			want:        "LDAAB AB, foo",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-label", Count: 1}},
		},
		{
			name:        "load_simple_label_word",
			content:     "LDAW BX, [buf]",
			want:        "LDABX BX, buf",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-label", Count: 1}},
		},
		{
			name:        "load_simple_label_accumulator",
			content:     "LDA CD, [bar]",
			want:        "LDACD CD, bar",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-label", Count: 1}},
		},
		{
			name:        "load_underscore_label",
			content:     "LD AB, [_tmp]",
			want:        "LDAAB AB, _tmp",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-label", Count: 1}},
		},
		{
			name:        "load_expression_plus",
			content:     "LD AB, [label + 4]",
			want:        "LDALD AB, (label + 4)",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-expr", Count: 1}},
		},
		{
			name:        "load_expression_byte",
			content:     "LDAB CX, [base + idx]",
			want:        "LDALDAB CX, (base + idx)",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-expr", Count: 1}},
		},
		{
			name:        "load_expression_minus",
			content:     "LDAW DE, [tbl - 2]",
			want:        "LDALDAW DE, (tbl - 2)",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-expr", Count: 1}},
		},
		{
			name:        "store_simple_label",
			content:     "LD [dest], CD",
			want:        "LDALD dest, CD",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "store-label", Count: 1}},
		},
		{
			name:        "store_simple_label_byte",
			content:     "LDAB [flag], AB",
			want:        "LDALDAB flag, AB",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "store-label", Count: 1}},
		},
		{
			name:        "store_expression",
			content:     "LDAW [buf + 2], EF",
			want:        "LDALDAW (buf + 2), EF",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "store-expr", Count: 1}},
		},
		{
			name:        "whitespace_normalized",
			content:     "LD   AB,[foo]",
			want:        "LDAAB AB, foo",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-label", Count: 1}},
		},
		{
			name:        "multiple_matches_same_rule",
			content:     "LD AB, [foo]\nLD CD, [bar]\n",
			want:        "LDAAB AB, foo\nLDACD CD, bar\n",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-label", Count: 2}},
		},
		{
			name:        "mixed_rules",
			content:     "    LD AB, [foo]\n    LDAW [buf + 2], EF\n    LD [dest], CD\n",
			want:        "    LDAAB AB, foo\n    LDALDAW (buf + 2), EF\n    LDALD dest, CD\n",
			wantChanged: true,
			wantHits: []RuleHit{
				{Rule: "load-label", Count: 1},
				{Rule: "store-label", Count: 1},
				{Rule: "store-expr", Count: 1},
			},
		},
		{
			name:        "bracket_spans_lines",
			content:     "LD AB, [first\n+ second]\n",
			want:        "LDALD AB, (first\n+ second)\n",
			wantChanged: true,
			wantHits:    []RuleHit{{Rule: "load-expr", Count: 1}},
		},
		{
			name:    "byte_load_simple_untouched",
			content: "LDAB AB, [foo]",
			want:    "LDAB AB, [foo]",
		},
		{
			name:    "lowercase_register_untouched",
			content: "LD ab, [foo]",
			want:    "LD ab, [foo]",
		},
		{
			name:    "lowercase_mnemonic_untouched",
			content: "ld AB, [foo]",
			want:    "ld AB, [foo]",
		},
		{
			name:    "three_letter_register_untouched",
			content: "LD ABC, [foo]",
			want:    "LD ABC, [foo]",
		},
		{
			name:    "mid_word_mnemonic_untouched",
			content: "HOLD AB, [foo]",
			want:    "HOLD AB, [foo]",
		},
		{
			name:    "star_expression_untouched",
			content: "LD AB, [a*b]",
			want:    "LD AB, [a*b]",
		},
		{
			name:    "dotted_operand_untouched",
			content: "LD AB, [a.b]",
			want:    "LD AB, [a.b]",
		},
		{
			name:    "digit_leading_label_untouched",
			content: "LD AB, [9foo]",
			want:    "LD AB, [9foo]",
		},
		{
			name:    "other_mnemonic_untouched",
			content: "STA [result], AB",
			want:    "STA [result], AB",
		},
		{
			name:    "bracket_free_identity",
			content: "start:\n    MOV AB, CD\n    HALT\n",
			want:    "start:\n    MOV AB, CD\n    HALT\n",
		},
		{
			name:    "empty_content",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewriter := New()
			result := rewriter.Rewrite(tt.content)

			require.NotNil(t, result)
			assert.Equal(t, tt.content, result.Original)
			assert.Equal(t, tt.want, result.Text)
			assert.Equal(t, tt.wantChanged, result.Changed)
			assert.Equal(t, tt.wantHits, result.Hits)
		})
	}
}

func TestBracketRewriter_Rewrite_Idempotent(t *testing.T) {
	content := "start:\n" +
		"    LD AB, [foo]\n" +
		"    LDAW BX, [buf]\n" +
		"    LD AB, [label + 4]\n" +
		"    LDAB CX, [base + idx]\n" +
		"    LD [dest], CD\n" +
		"    LDAW [buf + 2], EF\n" +
		"    HALT\n"

	rewriter := New()
	first := rewriter.Rewrite(content)
	require.True(t, first.Changed)
	assert.Equal(t, []RuleHit{
		{Rule: "load-label", Count: 2},
		{Rule: "load-expr", Count: 2},
		{Rule: "store-label", Count: 1},
		{Rule: "store-expr", Count: 1},
	}, first.Hits)
	assert.Equal(t, 6, first.Replacements())

	second := rewriter.Rewrite(first.Text)
	assert.False(t, second.Changed)
	assert.Equal(t, first.Text, second.Text)
	assert.Empty(t, second.Hits)
}

func TestBracketRewriter_Rewrite_RuleOrder(t *testing.T) {
	// A stray open bracket before a well-formed load line. The load-expr
	// pass runs first and consumes the only closing bracket, leaving
	// nothing for store-expr to match across the newline.
	content := "LDAW [a\nLD AB, [x + y], CD\n"

	result := New().Rewrite(content)

	assert.Equal(t, "LDAW [a\nLDALD AB, (x + y), CD\n", result.Text)
	assert.Equal(t, []RuleHit{{Rule: "load-expr", Count: 1}}, result.Hits)
}

func TestBracketRewriter_Rewrite_LiteralReplacements(t *testing.T) {
	rewriter := NewWithReplacements([]Replacement{
		{Old: "old_label", New: "new_label"},
		{Old: "", New: "ignored"},
	})

	result := rewriter.Rewrite("LD AB, [old_label]\n")

	assert.Equal(t, "LDAAB AB, new_label\n", result.Text)
	assert.True(t, result.Changed)
	assert.Equal(t, []RuleHit{
		{Rule: "load-label", Count: 1},
		{Rule: "literal:old_label", Count: 1},
	}, result.Hits)
	assert.Equal(t, 2, result.Replacements())
}

func TestBracketRewriter_Rewrite_Concurrent(t *testing.T) {
	content := "LD AB, [foo]\nLDAW [buf + 2], EF\n"
	want := "LDAAB AB, foo\nLDALDAW (buf + 2), EF\n"

	rewriter := New()
	var g errgroup.Group
	for i := 0; i < 16; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				result := rewriter.Rewrite(content)
				if result.Text != want {
					return errors.Errorf("rewrite mismatch: %q", result.Text)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TODO(sw): 🧪 Add benchmarks for whole-file rewrites
