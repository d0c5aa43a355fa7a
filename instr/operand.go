package instr

// OperandKind classifies a value reference inside a statement.
type OperandKind int

const (
	OtherOperand OperandKind = iota
	Constant
	Symbol
)

func (k OperandKind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Symbol:
		return "symbol"
	default:
		return "other"
	}
}

// Operand is a value reference. For constants Value holds the literal, for
// symbols the name, otherwise the host's text.
type Operand struct {
	Kind  OperandKind
	Value string
}

// Const creates a constant operand with the given literal.
func Const(literal string) *Operand {
	return &Operand{Kind: Constant, Value: literal}
}

// Sym creates a symbolic name operand.
func Sym(name string) *Operand {
	return &Operand{Kind: Symbol, Value: name}
}

// Opaque creates an operand that is neither a constant nor a name, such as a
// memory reference.
func Opaque(text string) *Operand {
	return &Operand{Kind: OtherOperand, Value: text}
}

// IsConstant reports whether the operand is a literal.
func (o *Operand) IsConstant() bool {
	return o != nil && o.Kind == Constant
}

func (o *Operand) String() string {
	if o == nil {
		return "<nil>"
	}
	switch o.Kind {
	case Constant:
		return "#" + o.Value
	case Symbol:
		return "$" + o.Value
	default:
		return o.Value
	}
}
