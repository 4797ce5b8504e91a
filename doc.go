// Package scn implements a lossless codec for the compact array-based
// scene-script format ("SCN") used by a family of visual-novel engines.
//
// The codec converts between a generic JSON-like Value tree (as produced by
// FromJSON or FromMsgpack) and a typed document model:
//
//	Document → Scene → Line → Event → Instruction / ObjectDetails
//
// Every record family in the format is a tagged union: events and
// instructions carry their discriminator as the first element of a
// positional array, snapshot objects carry theirs in a "class" field.
// Decoding dispatches through static per-family registries.
//
// # Forward compatibility
//
// The format grows over time. Unknown event tags and unknown snapshot object
// classes decode to opaque fallback variants that re-encode byte-for-byte,
// so a document containing records this package does not understand still
// round-trips losslessly. Instructions are a small closed vocabulary: an
// unknown instruction tag is a hard error, as is a shape violation on any
// recognized record.
//
// # Round-trip fidelity
//
// For any Value tree v that is a legitimate instance of the format,
//
//	EncodeDocument(must(DecodeDocument(v)))
//
// is structurally equal to v. Optional fields are re-emitted only if they
// were observed at decode time, and object keys outside a record's declared
// schema are preserved in order.
package scn
