package web

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DecodeUploadName repairs a multipart filename whose UTF-8 bytes were
// mis-read upstream as one character per byte ("rÃ©sumÃ©.pdf" for
// "résumé.pdf"). Each character of such a name is a raw byte value (0–255);
// the repair collects those bytes and re-reads the sequence as UTF-8 text.
//
// The reinterpretation is applied only when the mojibake signature is
// present: every rune fits in one byte and the collected bytes form valid
// UTF-8. A name the transport already decoded correctly passes through
// unchanged; re-applying the byte-reinterpretation to it would corrupt every
// non-ASCII filename.
func DecodeUploadName(raw string) string {
	b := make([]byte, 0, len(raw))
	for _, r := range raw {
		if r > 0xFF {
			return raw
		}
		b = append(b, byte(r))
	}
	if !utf8.Valid(b) {
		return raw
	}
	return string(b)
}

func isAttrChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	}
	return false
}

// EncodeDownloadName percent-encodes a filename for the extended-filename
// form of Content-Disposition (RFC 5987/6266):
//
//	filename*=UTF-8''<percent-encoded>
//
// Every byte outside the unreserved set is encoded, so the header value
// never carries raw non-ASCII bytes.
func EncodeDownloadName(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if isAttrChar(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
