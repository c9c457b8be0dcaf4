package kylang

var precedences = map[Symbol]int{
	SymEqual:        1,
	SymPlusEqual:    1,
	SymMinusEqual:   1,
	SymStarEqual:    1,
	SymSlashEqual:   1,
	SymPercentEqual: 1,

	SymBarBar: 3,
	SymAndAnd: 4,

	SymEqualEqual: 8,
	SymBangEqual:  8,

	SymLess:         9,
	SymGreater:      9,
	SymLessEqual:    9,
	SymGreaterEqual: 9,

	SymPlus:  11,
	SymMinus: 11,

	SymStar:    12,
	SymSlash:   12,
	SymPercent: 12,

	SymBang: 14,
}

func Precedence(sym Symbol) (int, bool) {
	p, ok := precedences[sym]
	return p, ok
}

// IsBinaryOperator reports whether sym continues an expression to the right.
// `!` has a precedence but is prefix only.
func IsBinaryOperator(sym Symbol) bool {
	_, ok := precedences[sym]
	return ok && sym != SymBang
}
