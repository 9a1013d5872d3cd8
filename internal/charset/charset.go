// Package charset normalises raw encoding labels to canonical ones and
// decodes bytes in a detected encoding to UTF-8.
//
// The normalisation table is ported verbatim from the calou/prouste
// implementation this library's specification was distilled from
// (src/charset.rs in the retrieved reference material).
package charset

import "strings"

// Normalize maps a raw, case-insensitive charset label to its canonical
// upper-case form.
func Normalize(label string) string {
	upper := strings.ToUpper(label)
	switch upper {
	case "UTF8", "UT-8", "UTR-8", "UFT-8", "UTF8-WITHOUT-BOM", "UTF8_GENERAL_CI":
		return "UTF-8"
	case "CP943", "CP943C", "SIFT_JIS", "SHIFT-JIS":
		return "SHIFT_JIS"
	case "EUC-KR", "MS949", "KSC5601", "WINDOWS-949", "KS_C_5601-1987", "KSC_5601":
		return "UHC"
	case "LATIN2_HUNGARIAN_CI", "LATIN2":
		return "LATIN-2"
	case "WIN1251", "WIN-1251", "WINDOWS-1251":
		return "CP1251"
	case "WINDOWS-1255":
		return "ISO-8859-8"
	case "WINDOWS-1257":
		return "ISO-8859-13"
	case "ANSI", "LATIN-1", "ISO", "RFC", "MACINTOSH", "8859-1", "8859-15",
		"ISO8859-1", "ISO8859-15", "ISO-8559-1", "ISO-8859-1", "ISO-8859-15":
		return "CP1252"
	default:
		return upper
	}
}
