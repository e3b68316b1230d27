// Package sanitizer provides small, stateless helpers for cleaning user input
// before it is validated or forwarded to a third party.
//
// The helpers fall into two groups:
//
//   - Strings: trimming, whitespace normalisation, truncation, HTML stripping
//     and collapsing multi-line input to a single line.
//
//   - Security: removing null bytes, ANSI/control sequences and characters
//     that would allow header injection or markup in an e-mail address.
//
// The higher-order Apply and Compose helpers build sanitisation pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.SingleLine,
//	    sanitizer.Truncate(100),
//	)
//
//	name := clean("  Jane\n  Doe ") // "Jane Doe"
//
// None of the helpers returns an error. They always fall back to a safe
// result, and because there is no global state they are safe for concurrent use.
package sanitizer
