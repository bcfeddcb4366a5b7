// Package mdid parses the vendor metadata block ("MDID") that follows
// a QIC archive's volume header. It is a trivial key/value splitter,
// kept separate from the core per spec.md §1.
package mdid

import (
	"bytes"
	"errors"
)

// ErrBadTag means the block does not start with the "MDID" tag.
var ErrBadTag = errors.New("mdid: missing MDID tag")

const (
	tag         = "MDID"
	terminator  = 0xB0
	mediumIDKey = "MediumID"
)

// Parse decodes the MDID block's ASCII key/value list. The first
// recognized key is the literal "MediumID"; every other token is a
// two-character key followed by its value text, up to the next
// terminator. A NUL reached before the next terminator ends the token
// loop early, matching split() in the original decoder: its inner
// character loop breaks on the first NUL, but the accumulated
// characters up to that point are still pushed as the list's final
// entry, so the token containing the NUL survives (truncated at the
// NUL) and nothing after it is parsed.
func Parse(b []byte) (map[string]string, error) {
	if len(b) < len(tag) || string(b[:len(tag)]) != tag {
		return nil, ErrBadTag
	}
	b = b[len(tag):]

	values := make(map[string]string)
	for len(b) > 0 {
		tok, rest := nextToken(b)
		b = rest
		if len(tok) == 0 {
			continue
		}

		if bytes.HasPrefix(tok, []byte(mediumIDKey)) {
			values[mediumIDKey] = string(tok[len(mediumIDKey):])
			continue
		}

		if len(tok) < 2 {
			continue
		}
		values[string(tok[:2])] = string(bytes.TrimRight(tok[2:], "\x00"))
	}

	return values, nil
}

// nextToken splits off one token: everything up to the next
// terminator, or up to a NUL if one appears first. A NUL-terminated
// token is the list's last one — rest is nil, ending Parse's loop.
func nextToken(b []byte) (tok, rest []byte) {
	term := bytes.IndexByte(b, terminator)
	nul := bytes.IndexByte(b, 0)

	switch {
	case term >= 0 && (nul < 0 || term < nul):
		return b[:term], b[term+1:]
	case nul >= 0:
		return b[:nul], nil
	default:
		return b, nil
	}
}
