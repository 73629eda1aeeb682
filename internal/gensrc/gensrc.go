// Package gensrc builds the source text executed by the isolated trials.
//
// Generation is a pure function of its inputs so that every trial of a
// variant compiles byte-identical code (modulo the trial tag comment) and
// any timing difference comes from the runtime, not the input.
package gensrc

import (
	"fmt"
	"strings"
)

// Variant selects which callable-member definition style the generated
// source (and the in-process invocation pools) use.
type Variant string

const (
	// ShorthandMethod defines the callable as a method reading the
	// object's own value field at call time (late-bound self-reference).
	ShorthandMethod Variant = "shorthand-method"

	// ClosureProperty defines the callable as a function field capturing
	// the value at definition time (early-bound, no self-reference).
	ClosureProperty Variant = "closure-property"
)

// Variants lists both arms of the experiment in report order.
var Variants = []Variant{ShorthandMethod, ClosureProperty}

// Valid reports whether v is one of the two known variants.
func (v Variant) Valid() bool {
	return v == ShorthandMethod || v == ClosureProperty
}

func (v Variant) String() string { return string(v) }

// Generate returns the source for one load trial. The unit is all
// declarations, ending in `var pool = build()`: yaegi wraps multi-declaration
// source as a file, where a bare trailing call expression would be a parse
// error. Executing the unit binds the constructed pool of objectCount
// entries to the `pool` global, the unit's sole result. The i-th entry
// carries value i and a zero-argument callable returning that value, defined
// in the variant's style. trialIndex only appears in the leading comment; it
// never influences the generated code.
func Generate(variant Variant, objectCount, trialIndex int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// trial %d: %s, %d objects\n\n", trialIndex, variant, objectCount)

	switch variant {
	case ShorthandMethod:
		b.WriteString("type item struct {\n")
		b.WriteString("\tValue int\n")
		b.WriteString("}\n\n")
		b.WriteString("func (it *item) Invoke() int {\n")
		b.WriteString("\treturn it.Value\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func build() []*item {\n")
		fmt.Fprintf(&b, "\tpool := make([]*item, 0, %d)\n", objectCount)
		fmt.Fprintf(&b, "\tfor i := 0; i < %d; i++ {\n", objectCount)
		b.WriteString("\t\tpool = append(pool, &item{Value: i})\n")
		b.WriteString("\t}\n")
		b.WriteString("\treturn pool\n")
		b.WriteString("}\n\n")
	case ClosureProperty:
		b.WriteString("type item struct {\n")
		b.WriteString("\tValue  int\n")
		b.WriteString("\tInvoke func() int\n")
		b.WriteString("}\n\n")
		fmt.Fprintf(&b, "func build() []*item {\n")
		fmt.Fprintf(&b, "\tpool := make([]*item, 0, %d)\n", objectCount)
		fmt.Fprintf(&b, "\tfor i := 0; i < %d; i++ {\n", objectCount)
		b.WriteString("\t\tv := i\n")
		b.WriteString("\t\tpool = append(pool, &item{Value: v, Invoke: func() int { return v }})\n")
		b.WriteString("\t}\n")
		b.WriteString("\treturn pool\n")
		b.WriteString("}\n\n")
	}

	b.WriteString("var pool = build()\n")
	return b.String()
}
