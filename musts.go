package pi

import "fmt"

// MustNewRequest is like [NewRequest] but panics if the request is invalid.
func MustNewRequest(digits, base int) Request {
	r, err := NewRequest(digits, base)
	if err != nil {
		panic(fmt.Sprintf("MustNewRequest(%v, %v) failed: %v", digits, base, err))
	}
	return r
}

// MustParseRequest is like [ParseRequest] but panics if the strings cannot be parsed.
func MustParseRequest(digits, base string) Request {
	r, err := ParseRequest(digits, base)
	if err != nil {
		panic(fmt.Sprintf("MustParseRequest(%q, %q) failed: %v", digits, base, err))
	}
	return r
}

// MustCompute is like [Compute] but panics if computing error.
func MustCompute(digits, base int) Digits {
	d, err := Compute(digits, base)
	if err != nil {
		panic(fmt.Sprintf("MustCompute(%v, %v) failed: %v", digits, base, err))
	}
	return d
}
