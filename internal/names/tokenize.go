package names

// Tokenize splits a segment into typed tokens. The scan proceeds left to
// right; at each position the matcher table is tried in precedence order
// and the first match wins. Runes between matches accumulate into raw
// tokens, so concatenating the token texts always reconstructs the input
// exactly, unicode included.
func Tokenize(segment string) []Token {
	if segment == "" {
		return nil
	}

	rs := []rune(segment)
	var tokens []Token
	rawStart := -1

	flushRaw := func(end int) {
		if rawStart >= 0 {
			tokens = append(tokens, Token{Text: string(rs[rawStart:end]), Kind: KindRaw})
			rawStart = -1
		}
	}

	pos := 0
	for pos < len(rs) {
		matched := false
		for _, m := range matchers {
			n := m.Match(rs, pos)
			if n <= 0 {
				continue
			}
			flushRaw(pos)
			tokens = append(tokens, Token{Text: string(rs[pos : pos+n]), Kind: m.Kind})
			pos += n
			matched = true
			break
		}
		if !matched {
			if rawStart < 0 {
				rawStart = pos
			}
			pos++
		}
	}
	flushRaw(len(rs))

	return tokens
}
