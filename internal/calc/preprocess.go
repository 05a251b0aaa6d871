// Package calc implements the Calculator port: a LaTeX-flavored
// preprocessor feeding a hand-written infix expression evaluator. No
// library for expression evaluation appears anywhere in the retrieved
// example corpus, so this is the one component built on the standard
// library alone (see DESIGN.md); the preprocessing rules themselves are
// grounded on the original calculator_adapter's LaTeX-to-meval rewriting.
package calc

import (
	"slices"
	"sort"
	"strings"
)

// unaryFuncNames and standaloneNames are listed longest-first so that,
// e.g., "\sinh" is matched before the shorter "\sin" prefix.
var unaryFuncNames = sortedByLengthDesc([]string{
	"sin", "cos", "tan", "sec", "csc", "cot",
	"sinh", "cosh", "tanh",
	"exp", "ln", "log",
	"arcsin", "arccos", "arctan",
	"arsinh", "arccosh", "arctanh",
	"min", "max", "det", "dim", "deg", "gcd", "Pr", "hom", "ker", "arg",
})

var standaloneNames = sortedByLengthDesc([]string{
	"lim", "inf", "sup", "sum", "prod", "int", "bigcup", "bigcap",
})

func sortedByLengthDesc(names []string) []string {
	out := append([]string(nil), names...)
	sort.Slice(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

// preprocessLatex applies the rewrite rules from spec §4.E, converting a
// LaTeX-flavored expression into one the infix evaluator can parse.
func preprocessLatex(expr string) string {
	expr = strings.ReplaceAll(expr, `\cdot`, "*")
	expr = strings.ReplaceAll(expr, `\times`, "*")
	expr = strings.ReplaceAll(expr, `\left(`, "(")
	expr = strings.ReplaceAll(expr, `\right)`, ")")
	expr = strings.ReplaceAll(expr, `\pi`, "PI")

	expr = rewriteBraceCall(expr, `\sqrt`, "sqrt")
	expr = rewriteFrac(expr)
	expr = rewriteCaret(expr)

	for _, name := range unaryFuncNames {
		expr = rewriteBraceCall(expr, `\`+name, name)
	}
	// Bare backslash-prefixed function/operator names with no following
	// brace group (e.g. "\sin(x)" or "\gcd(a,b)") just lose the backslash.
	for _, name := range unaryFuncNames {
		expr = strings.ReplaceAll(expr, `\`+name, name)
	}
	for _, name := range standaloneNames {
		expr = strings.ReplaceAll(expr, `\`+name, name)
	}

	// \e must run last: it is a prefix of \exp, \exp already consumed above.
	expr = strings.ReplaceAll(expr, `\e`, "E")

	expr = insertImplicitMultiplication(expr)
	return expr
}

// rewriteBraceCall rewrites every occurrence of prefix{x} to name(x),
// where {x} is a single balanced-brace group.
func rewriteBraceCall(expr, prefix, name string) string {
	var b strings.Builder
	i := 0
	for i < len(expr) {
		if strings.HasPrefix(expr[i:], prefix) && i+len(prefix) < len(expr) && expr[i+len(prefix)] == '{' {
			start := i + len(prefix) + 1
			end, ok := matchingBrace(expr, i+len(prefix))
			if ok {
				b.WriteString(name)
				b.WriteByte('(')
				b.WriteString(expr[start:end])
				b.WriteByte(')')
				i = end + 1
				continue
			}
		}
		b.WriteByte(expr[i])
		i++
	}
	return b.String()
}

// rewriteFrac rewrites every \frac{a}{b} to (a)/(b).
func rewriteFrac(expr string) string {
	const prefix = `\frac`
	var b strings.Builder
	i := 0
	for i < len(expr) {
		if strings.HasPrefix(expr[i:], prefix) && i+len(prefix) < len(expr) && expr[i+len(prefix)] == '{' {
			aEnd, ok1 := matchingBrace(expr, i+len(prefix))
			if ok1 && aEnd+1 < len(expr) && expr[aEnd+1] == '{' {
				bEnd, ok2 := matchingBrace(expr, aEnd+1)
				if ok2 {
					aStart := i + len(prefix) + 1
					bStart := aEnd + 2
					b.WriteByte('(')
					b.WriteString(expr[aStart:aEnd])
					b.WriteString(")/(")
					b.WriteString(expr[bStart:bEnd])
					b.WriteByte(')')
					i = bEnd + 1
					continue
				}
			}
		}
		b.WriteByte(expr[i])
		i++
	}
	return b.String()
}

// rewriteCaret rewrites ^{x} to ^(x); bare ^x is left untouched (the
// evaluator's exponent operator already handles unbraced operands).
func rewriteCaret(expr string) string {
	var b strings.Builder
	i := 0
	for i < len(expr) {
		if expr[i] == '^' && i+1 < len(expr) && expr[i+1] == '{' {
			end, ok := matchingBrace(expr, i+1)
			if ok {
				b.WriteByte('^')
				b.WriteByte('(')
				b.WriteString(expr[i+2 : end])
				b.WriteByte(')')
				i = end + 1
				continue
			}
		}
		b.WriteByte(expr[i])
		i++
	}
	return b.String()
}

// matchingBrace returns the index of the '}' matching the '{' at
// expr[openIdx], tracking nesting depth.
func matchingBrace(expr string, openIdx int) (int, bool) {
	if openIdx >= len(expr) || expr[openIdx] != '{' {
		return 0, false
	}
	depth := 0
	for i := openIdx; i < len(expr); i++ {
		switch expr[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isDigit(b byte) bool  { return b >= '0' && b <= '9' }
func isLetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// insertImplicitMultiplication inserts '*' between a digit and a
// following letter or '(', and between a letter or ')' and a following
// '(', per spec §4.E. A known function name directly before '(' (e.g.
// "sqrt(" or "sin(") is a call and is left as is.
func insertImplicitMultiplication(expr string) string {
	var b strings.Builder
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		b.WriteByte(c)
		if i+1 >= len(expr) {
			continue
		}
		next := expr[i+1]
		switch {
		case isDigit(c) && (isLetter(next) || next == '('):
			b.WriteByte('*')
		case c == ')' && next == '(':
			b.WriteByte('*')
		case isLetter(c) && next == '(':
			start := i
			for start > 0 && isLetter(expr[start-1]) {
				start--
			}
			if word := expr[start : i+1]; word != "sqrt" && !slices.Contains(unaryFuncNames, word) {
				b.WriteByte('*')
			}
		}
	}
	return b.String()
}
