// Package names converts compact font filenames into human-readable
// family/subfamily name strings.
//
// The pipeline for one input:
//
//	basename -> sanitize forbidden chars -> drop .CFF2 marker -> strip
//	extension -> split at first hyphen -> per side: split on underscores,
//	tokenize each segment, merge digit+lowercase pairs, apply casing rules,
//	then apply spacing rules across the side's full token stream.
//
// Tokenization is an ordered matcher table evaluated left to right; the
// first matcher that succeeds at a position wins, and any span no matcher
// claims is carried through verbatim as a raw token. The package never
// returns errors: malformed or empty input degrades to empty output.
//
// Split along these boundaries: token.go (kinds and matchers), tokenize.go
// (scan loop), format.go (casing and digit-lowercase merging), spacing.go
// (inter-token spacing), parser.go (basename normalization and the
// family/subfamily split).
package names
