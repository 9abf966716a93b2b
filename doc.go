/*
Package charconv converts 128-bit integers to and from text in any base from
2 to 36, in the manner of strconv but at a width the standard library stops
short of.

The package provides U128 and I128 value types and a codec that operates on
caller-supplied buffers without allocating:

	EncodeU128(dst []byte, x U128, base int) (n int, err error)
	EncodeI128(dst []byte, x I128, base int) (n int, err error)
	DecodeU128(src []byte, base int) (x U128, n int, err error)
	DecodeI128(src []byte, base int) (x I128, n int, err error)

Decode functions consume the longest prefix of valid digits and report how
far they got, so delimited input can be scanned without pre-splitting:

	x, n, err := charconv.DecodeU128([]byte("123,456"), 10)
	// x == 123, n == 3, err == nil

Values that fit a uint64 or int64 are handed straight to strconv; wider
values are cut into at most three uint64-sized chunks, each handled by a
single strconv call.

strconv-shaped conveniences are provided on top of the codec:

	ParseU128(s string, base int) (U128, error)
	ParseI128(s string, base int) (I128, error)
	AppendU128(dst []byte, x U128, base int) []byte
	AppendI128(dst []byte, x I128, base int) []byte

U128 and I128 support fmt.Stringer, fmt.Formatter, json.Marshaler,
json.Unmarshaler, encoding.TextMarshaler and encoding.TextUnmarshaler, all
backed by the same codec.

DecodeUintBits, DecodeIntBits, EncodeUintBits and EncodeIntBits generalise
the codec over a declared bit width of up to 128, re-validating that decoded
values are exactly representable at that width.
*/
package charconv
