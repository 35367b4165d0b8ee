package errors

// Error codes for the jasy front-end. The codes appear in error messages
// and documentation to give every failure a stable identity.
//
// Error code ranges:
// E0100-E0199: Scanner (tokenizer) errors
// E0200-E0299: Reserved for parser errors
// E0300-E0399: Reserved for future use
const (
	// E0100: no classification rule matches at the current position
	ErrorIllegalToken = "E0100"

	// E0101: block comment opened but input ends before */
	ErrorUnterminatedComment = "E0101"

	// E0102: quote opened but input ends before the matching close quote
	ErrorUnterminatedString = "E0102"

	// E0103: regex literal runs off the end of input
	ErrorUnterminatedRegExp = "E0103"

	// E0104: bracketed character class runs off the end of input
	ErrorUnterminatedCharClass = "E0104"

	// E0105: exponent marker not followed by at least one digit
	ErrorMissingExponentDigits = "E0105"

	// E0106: MustMatch failed to find the expected token type
	ErrorMissingExpectedToken = "E0106"

	// E0107: more than 3 tokens pushed back; a driver bug, not a source
	// problem
	ErrorLookaheadOverflow = "E0107"
)
