package core

// Constructors for IRExpr variants. Kept separate from the type
// declarations so external packages (internal/elaborate) can build IR
// nodes without reaching into the unexported exprBase embedding.

func NewLitInt(t *IRType, v int64) *LitInt     { return &LitInt{exprBase{t}, v} }
func NewLitFloat(t *IRType, v float64) *LitFloat { return &LitFloat{exprBase{t}, v} }
func NewLitBool(t *IRType, v bool) *LitBool     { return &LitBool{exprBase{t}, v} }
func NewLitStr(t *IRType, v string) *LitStr     { return &LitStr{exprBase{t}, v} }
func NewLitNone(t *IRType) *LitNone             { return &LitNone{exprBase{t}} }
func NewName(t *IRType, v string) *Name         { return &Name{exprBase{t}, v} }

func NewUnary(t *IRType, op string, x IRExpr) *Unary {
	return &Unary{exprBase{t}, op, x}
}

func NewBinary(t *IRType, op string, l, r IRExpr) *Binary {
	return &Binary{exprBase{t}, op, l, r}
}

func NewSubscript(t *IRType, c, i IRExpr, varName string) *Subscript {
	return &Subscript{exprBase{t}, c, i, varName}
}

func NewField(t *IRType, recv IRExpr, name string) *Field {
	return &Field{exprBase{t}, recv, name}
}

func NewCall(t *IRType, callee string, args []IRExpr) *Call {
	return &Call{exprBase{t}, callee, args}
}

func NewMethodCall(t *IRType, recv IRExpr, tag MethodTag, runtimeFn string, args []IRExpr) *MethodCall {
	return &MethodCall{exprBase{t}, recv, tag, runtimeFn, args}
}

func NewCast(t *IRType, target *IRType, x IRExpr) *Cast {
	return &Cast{exprBase{t}, target, x}
}

func NewParen(t *IRType, x IRExpr) *Paren {
	return &Paren{exprBase{t}, x}
}

func NewRecordCtor(t *IRType, name string, args []IRExpr) *RecordCtor {
	return &RecordCtor{exprBase{t}, name, args}
}

func NewContainerLit(t *IRType, kind string) *ContainerLit {
	return &ContainerLit{exprBase{t}, kind}
}

func NewTempRef(t *IRType, name string) *TempRef {
	return &TempRef{exprBase{t}, name}
}
