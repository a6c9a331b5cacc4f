package rubytime

import "strings"

// directiveOptions carries the flags, width, colon count, and modifier
// parsed alongside a directive. The zero value is "no options", which
// compile collapses to for directives that used only defaults.
type directiveOptions struct {
	noPad       bool // '-' flag: suppress padding entirely
	blankPad    bool // '_' flag: pad with spaces
	zeroPad     bool // '0' flag: pad with zeros
	upper       bool // '^' flag
	swapCase    bool // '#' flag
	colons      int  // 0-4, %z only
	width       int  // explicit width; 0 means "use directive default"
	hasModifier bool // E or O modifier present (accepted as no-op)
}

// isEmpty reports whether o carries no formatter-only feature. colons is
// deliberately excluded from the zero-value comparison: 1-3 colons on %z
// are parseable (matchOffsetDirective never consults tok.options.colons),
// only the 4-colon form is formatter-only, and that is checked separately
// by OnlyForFormatter.
func (o directiveOptions) isEmpty() bool {
	o.colons = 0
	return o == directiveOptions{}
}

// FormatToken is one element of a compiled Format: either a literal run of
// text, or a directive with the raw text it was parsed from.
type FormatToken struct {
	immediate string // non-empty only for literal tokens
	rawText   string // exact source spelling, directive tokens only
	directive directiveInfo
	specifier byte
	options   directiveOptions
	isLiteral bool
	subFormat *Format // recurred directives only: their expansion, precompiled
}

// IsImmediate reports whether tok is a literal text run rather than a
// directive.
func (tok FormatToken) IsImmediate() bool {
	return tok.isLiteral
}

// Text returns the literal text of an Immediate token.
func (tok FormatToken) Text() string {
	return tok.immediate
}

// Format is the immutable, ordered token sequence produced by Compile.
type Format struct {
	tokens []FormatToken
}

// Tokens returns the ordered token sequence. The returned slice must not be
// mutated by the caller.
func (f Format) Tokens() []FormatToken {
	return f.tokens
}

// OnlyForFormatter reports whether f contains any token whose options use a
// width, padding override, case flag, or 4-colon %z — features the
// strptime engine does not honor, so a round-trip through parse would lose
// information.
func (f Format) OnlyForFormatter() bool {
	for _, tok := range f.tokens {
		if tok.isLiteral {
			continue
		}
		o := tok.options
		if o.colons == 4 {
			return true
		}
		if !o.isEmpty() {
			return true
		}
	}
	return false
}

// Compile tokenizes pattern into a Format. It never fails: any sequence it
// cannot recognize as a directive is emitted as a literal run, verbatim,
// including the leading '%'.
func Compile(pattern string) Format {
	var tokens []FormatToken
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, FormatToken{immediate: literal.String(), isLiteral: true})
			literal.Reset()
		}
	}

	i := 0
	for i < len(pattern) {
		c := pattern[i]
		if c != '%' {
			literal.WriteByte(c)
			i++
			continue
		}

		tok, consumed, ok := compileDirective(pattern[i:])
		if !ok {
			literal.WriteString(pattern[i : i+consumed])
			i += consumed
			continue
		}

		flushLiteral()
		tokens = append(tokens, tok)
		i += consumed
	}
	flushLiteral()

	return Format{tokens: tokens}
}

// compileDirective attempts to parse one directive starting at s[0] == '%'.
// It returns the token, the number of bytes consumed (directive length on
// success, or the length of the literal fallback on failure), and whether a
// directive was recognized.
func compileDirective(s string) (FormatToken, int, bool) {
	if len(s) == 1 {
		// Lone '%' at end of input.
		return FormatToken{}, 1, false
	}

	i := 1
	var opts directiveOptions
	colons := 0

loop:
	for i < len(s) {
		switch s[i] {
		case '-':
			opts.noPad = true
		case '_':
			opts.blankPad = true
		case '0':
			opts.zeroPad = true
		case '^':
			opts.upper = true
		case '#':
			opts.swapCase = true
		case ':':
			colons++
			if colons > 4 {
				return FormatToken{}, i, false
			}
		default:
			break loop
		}
		i++
	}
	opts.colons = colons

	widthStart := i
	if i < len(s) && s[i] >= '1' && s[i] <= '9' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
	}
	if i > widthStart {
		width := 0
		for j := widthStart; j < i; j++ {
			width = width*10 + int(s[j]-'0')
		}
		opts.width = width
	}

	if i < len(s) && (s[i] == 'E' || s[i] == 'O') {
		opts.hasModifier = true
		i++
	}

	if i >= len(s) {
		return FormatToken{}, i, false
	}

	specifier := s[i]
	i++

	if colons > 0 && !acceptsColonModifier(specifier) {
		return FormatToken{}, i, false
	}
	if opts.hasModifier && !acceptsEOModifier(specifier) {
		return FormatToken{}, i, false
	}

	info, known := directiveTable[specifier]
	if !known {
		return FormatToken{}, i, false
	}

	rawText := s[:i]

	if info.class == classRecurred {
		sub := Compile(recurredExpansions[specifier])
		return FormatToken{
			rawText:   rawText,
			directive: info,
			specifier: specifier,
			options:   opts,
			subFormat: &sub,
		}, i, true
	}

	return FormatToken{
		rawText:   rawText,
		directive: info,
		specifier: specifier,
		options:   opts,
	}, i, true
}

// IsDirective reports whether tok is a directive token.
func (tok FormatToken) IsDirective() bool {
	return !tok.isLiteral
}

// RawText returns the exact source spelling of a directive token, used to
// echo an unhonored specifier verbatim.
func (tok FormatToken) RawText() string {
	return tok.rawText
}
