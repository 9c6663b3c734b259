package operation

// Operation IDs of the built-in catalog.
const (
	ToBase64     = "To Base64"
	FromBase64   = "From Base64"
	URLEncode    = "URL Encode"
	URLDecode    = "URL Decode"
	ToHex        = "To Hex"
	FromHex      = "From Hex"
	HTMLEncode   = "HTML Encode"
	HTMLDecode   = "HTML Decode"
	MD5          = "MD5"
	SHA256       = "SHA256"
	CRC32        = "CRC32"
	CaesarCipher = "Caesar Cipher"
	ROT13        = "ROT13"
	XORCipher    = "XOR Cipher"
	Reverse      = "Reverse"
	ToUpper      = "To Upper"
	ToLower      = "To Lower"
	RemoveSpaces = "Remove Spaces"
	JSONPretty   = "JSON Pretty"
	JSONMinify   = "JSON Minify"
)

// MD5 and SHA256 keep their historical names but are a 32-bit rolling
// checksum, not the real digests. The descriptions say so.
var defaultCatalog = MustNew(
	Descriptor{ToBase64, CategoryEncoding, "Encode data using Base64"},
	Descriptor{FromBase64, CategoryEncoding, "Decode Base64 encoded data"},
	Descriptor{URLEncode, CategoryEncoding, "Percent-encode URL components"},
	Descriptor{URLDecode, CategoryEncoding, "Decode percent-encoded URLs"},
	Descriptor{ToHex, CategoryEncoding, "Convert data to hexadecimal"},
	Descriptor{FromHex, CategoryEncoding, "Convert hexadecimal to text"},
	Descriptor{HTMLEncode, CategoryEncoding, "Encode HTML entities"},
	Descriptor{HTMLDecode, CategoryEncoding, "Decode HTML entities"},
	Descriptor{MD5, CategoryHashing, "32-bit rolling checksum, 8 hex digits (not real MD5)"},
	Descriptor{SHA256, CategoryHashing, "32-bit rolling checksum, 16 hex digits (not real SHA-256)"},
	Descriptor{CRC32, CategoryHashing, "Calculate CRC-32 checksum"},
	Descriptor{CaesarCipher, CategoryCrypto, "Classical substitution cipher"},
	Descriptor{ROT13, CategoryCrypto, "Simple letter substitution"},
	Descriptor{XORCipher, CategoryCrypto, "XOR encryption with key"},
	Descriptor{Reverse, CategoryTransform, "Reverse string order"},
	Descriptor{ToUpper, CategoryTransform, "Convert to uppercase"},
	Descriptor{ToLower, CategoryTransform, "Convert to lowercase"},
	Descriptor{RemoveSpaces, CategoryTransform, "Strip whitespace"},
	Descriptor{JSONPretty, CategoryFormat, "Format JSON with indentation"},
	Descriptor{JSONMinify, CategoryFormat, "Compress JSON structure"},
)

// Default returns the built-in catalog. It is shared and read-only.
func Default() *Catalog {
	return defaultCatalog
}
