package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// CodePage identifies a text encoding by its legacy Windows code page
// number, plus 65001 for UTF-8.
type CodePage int

const (
	CpUTF8          CodePage = 65001
	CpShiftJIS      CodePage = 932
	CpGBK           CodePage = 936
	CpKoreanWansung CodePage = 949
	CpBig5          CodePage = 950
	CpJohab         CodePage = 1361
)

// leadByteRanges gives the [lo, hi] lead-byte ranges for each supported
// DBCS code page. A byte outside every range for its code page is a
// single-byte (or, for pages with an ASCII-compatible low half, ASCII)
// character.
var leadByteRanges = map[CodePage][][2]byte{
	CpShiftJIS:      {{0x81, 0x9F}, {0xE0, 0xFC}},
	CpGBK:           {{0x81, 0xFE}},
	CpKoreanWansung: {{0x81, 0xFE}},
	CpBig5:          {{0x81, 0xFE}},
	CpJohab:         {{0x84, 0xF9}},
}

// IsDBCS reports whether cp is one of the supported multi-byte code pages.
func IsDBCS(cp CodePage) bool {
	_, ok := leadByteRanges[cp]
	return ok
}

// IsLeadByte reports whether b begins a two-byte character under cp.
// It is always false for CpUTF8 and for code pages this package does not
// recognize (treated as single-byte).
func IsLeadByte(cp CodePage, b byte) bool {
	for _, r := range leadByteRanges[cp] {
		if b >= r[0] && b <= r[1] {
			return true
		}
	}
	return false
}

// Encoding returns the golang.org/x/text encoding for cp's DBCS transform,
// or nil for CpUTF8, CpJohab and unrecognized pages (callers fall back to treating
// bytes as opaque single-byte or UTF-8 data).
func Encoding(cp CodePage) encoding.Encoding {
	switch cp {
	case CpShiftJIS:
		return japanese.ShiftJIS
	case CpGBK:
		return simplifiedchinese.GBK
	case CpKoreanWansung:
		return korean.EUCKR
	case CpBig5:
		return traditionalchinese.Big5
	default:
		return nil
	}
}
