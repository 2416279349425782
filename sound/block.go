// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"github.com/ik5/bae/generators"
	"github.com/ik5/bae/modifiers"
	"github.com/ik5/bae/sample"
)

// Interactor combines the generator and modifier outputs of a Block.
type Interactor[S sample.Frame[S]] func(gen, mod S) S

// Multiply modulates the modifier output by the generator output.
func Multiply[S sample.Frame[S]](gen, mod S) S { return gen.Mul(mod) }

// GeneratorPassthrough ignores the modifier output.
func GeneratorPassthrough[S sample.Frame[S]](gen, _ S) S { return gen }

// ModifierPassthrough ignores the generator output.
func ModifierPassthrough[S sample.Frame[S]](_, mod S) S { return mod }

// Block pairs a generator and a modifier. Inputs primed between two
// Process calls are summed and fed to the modifier on the next call.
type Block[S sample.Frame[S]] struct {
	gen      generators.Generator[S]
	mod      modifiers.Modifier[S]
	interact Interactor[S]
	acc      S
}

// NewBlock builds a Block. A nil interactor means Multiply.
func NewBlock[S sample.Frame[S]](g generators.Generator[S], m modifiers.Modifier[S], i Interactor[S]) Block[S] {
	if i == nil {
		i = Multiply[S]
	}

	return Block[S]{gen: g, mod: m, interact: i}
}

// FromGenerator wraps g; the block outputs g unchanged and ignores its input.
func FromGenerator[S sample.Frame[S]](g generators.Generator[S]) Block[S] {
	return NewBlock[S](g, modifiers.NewPassthrough[S](), GeneratorPassthrough[S])
}

// FromModifier wraps m; the block outputs m applied to its input.
func FromModifier[S sample.Frame[S]](m modifiers.Modifier[S]) Block[S] {
	return NewBlock[S](generators.NewZero[S](), m, ModifierPassthrough[S])
}

// Prime adds x to the input of the next Process call.
func (b *Block[S]) Prime(x S) {
	b.acc = b.acc.Add(x)
}

// Process advances the generator and modifier once each, combines them and
// clears the primed input.
func (b *Block[S]) Process() S {
	y := b.interact(b.gen.Process(), b.mod.Process(b.acc))

	var zero S
	b.acc = zero

	return y
}

// Generator returns the block's generator. Use it only inside Modify when the
// block is owned by a graph.
func (b *Block[S]) Generator() generators.Generator[S] { return b.gen }

// Modifier returns the block's modifier, under the same rule as Generator.
func (b *Block[S]) Modifier() modifiers.Modifier[S] { return b.mod }

// Clone deep copies the generator and modifier. The primed input is not
// carried over.
func (b *Block[S]) Clone() Block[S] {
	return Block[S]{
		gen:      b.gen.Clone(),
		mod:      b.mod.Clone(),
		interact: b.interact,
	}
}
