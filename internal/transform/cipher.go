package transform

import "strings"

// shiftLetters rotates ASCII letters by n within their case. Everything else
// passes through unchanged.
func shiftLetters(s string, n int) string {
	n %= 26
	if n < 0 {
		n += 26
	}
	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z':
			return 'a' + (r-'a'+rune(n))%26
		case 'A' <= r && r <= 'Z':
			return 'A' + (r-'A'+rune(n))%26
		}
		return r
	}, s)
}

func caesar(shift int) Func {
	return func(s string) (string, error) {
		return shiftLetters(s, shift), nil
	}
}

func rot13(s string) (string, error) {
	return shiftLetters(s, 13), nil
}

// xorCipher XORs every rune with the key rune at the same position modulo
// the key length. Applying it twice with the same key is the identity.
func xorCipher(key string) Func {
	k := []rune(key)
	return func(s string) (string, error) {
		if len(k) == 0 {
			return s, nil
		}
		in := []rune(s)
		out := make([]rune, len(in))
		for i, r := range in {
			out[i] = r ^ k[i%len(k)]
		}
		return string(out), nil
	}
}
