package namelist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Format converts one textual token into a typed scalar. Spaces are removed
// first; T and F are booleans, a token containing a decimal point is a float,
// otherwise an integer is tried. Anything that fails to parse is returned as
// a string with single quotes stripped.
func Format(token string) Value {
	s := strings.ReplaceAll(token, " ", "")
	switch s {
	case "T":
		return Bool(true)
	case "F":
		return Bool(false)
	}
	if strings.Contains(s, ".") {
		f, err := strconv.ParseFloat(s, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return Float(f)
		}
		return String(strings.ReplaceAll(s, "'", ""))
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return Int(i)
	}
	if errors.Is(err, strconv.ErrRange) {
		f, _ := strconv.ParseFloat(s, 64)
		return Float(f)
	}
	return String(strings.ReplaceAll(s, "'", ""))
}

// formatGroup formats a token that may be a parenthesized tuple.
func formatGroup(token string) Value {
	if !strings.Contains(token, "(") {
		return Format(token)
	}
	token = strings.NewReplacer("(", "", ")", "").Replace(token)
	parts := strings.Split(token, ",")
	items := make([]Value, len(parts))
	for i, p := range parts {
		items[i] = Format(p)
	}
	return Tuple(items...)
}

// splitTokens splits a right-hand side at commas that are not inside a
// parenthesized group.
func splitTokens(rhs string) []string {
	var (
		tokens []string
		cur    strings.Builder
		depth  int
	)
	for i := 0; i < len(rhs); i++ {
		c := rhs[i]
		switch {
		case c == '(':
			depth++
		case c == ')' && depth > 0:
			depth--
		case c == ',' && depth == 0:
			tokens = append(tokens, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	tokens = append(tokens, cur.String())
	return tokens
}

// MaxRepeat bounds the count of an N*value repeat. Larger counts are not
// expanded.
const MaxRepeat = 1 << 20

// Tokenize parses the right-hand side of an assignment. Repeat counts of the
// form N*value are expanded. A single resulting value is returned bare; two or
// more are wrapped in a Sequence. An empty right-hand side yields an empty
// Sequence.
func Tokenize(rhs string) Value {
	v, _ := tokenize(rhs)
	return v
}

// tokenize is Tokenize reporting the first repeat that was left unexpanded
// because its count exceeds MaxRepeat. Such a token is kept as a single
// formatted value.
func tokenize(rhs string) (Value, error) {
	var (
		values []Value
		err    error
	)
	for _, tok := range splitTokens(rhs) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		count, rest, ok := splitRepeat(tok)
		if ok && count > MaxRepeat {
			if err == nil {
				err = fmt.Errorf("%w: %d", ErrRepeatTooLarge, count)
			}
			ok = false
		}
		if ok {
			v := formatGroup(rest)
			for range count {
				values = append(values, v)
			}
			continue
		}
		values = append(values, formatGroup(tok))
	}
	if len(values) == 1 {
		return values[0], err
	}
	return Sequence(values...), err
}

// splitRepeat recognizes count*value. Tokens whose prefix is not a
// non-negative integer are not repeats.
func splitRepeat(tok string) (int, string, bool) {
	head, rest, found := strings.Cut(tok, "*")
	if !found {
		return 0, "", false
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || n < 0 {
		return 0, "", false
	}
	return n, rest, true
}
