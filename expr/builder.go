package expr

// Builder constructs expressions. Style constructors receive a Builder
// rather than looking one up from process-wide state.
type Builder interface {
	Literal(v any) Expression
	Property(name string) Expression
	Function(name string, args ...Expression) Expression
}

// Factory is the default Builder.
type Factory struct{}

// Literal implements Builder.
func (Factory) Literal(v any) Expression {
	if e, ok := v.(Expression); ok {
		return e
	}
	return NewLiteral(v)
}

// Property implements Builder.
func (Factory) Property(name string) Expression { return Property(name) }

// Function implements Builder.
func (Factory) Function(name string, args ...Expression) Expression {
	return Call(name, args...)
}

var _ Builder = Factory{}
