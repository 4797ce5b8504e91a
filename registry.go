package scn

// decodeFunc decodes one variant of a record family.
type decodeFunc[T any] func(d *decoder, v *Value) (T, error)

// registry maps a family's discriminator tokens to variant decoders.
// Registries are built once as package-level literals and never mutated;
// dispatch is a single table lookup. On a miss the caller decides policy:
// instructions fail hard, events and snapshot objects fall back to
// passthrough variants.
type registry[T any] map[string]decodeFunc[T]

func (r registry[T]) lookup(tag string) (decodeFunc[T], bool) {
	fn, ok := r[tag]
	return fn, ok
}
