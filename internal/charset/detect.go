package charset

import (
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Detect sniffs the most likely charset label for raw bytes. It is the
// external charset-detection contract the extraction pipeline consumes:
// an empty result means no charset could be guessed.
func Detect(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return ""
	}
	return result.Charset
}

// Decode converts data from the given canonical charset label to a UTF-8
// string, replacing unmappable byte sequences rather than failing.
// The second return value reports whether the label was recognised.
func Decode(data []byte, canonicalLabel string) (string, bool) {
	enc := encodingFor(canonicalLabel)
	if enc == nil {
		return "", false
	}
	decoded, _ := enc.NewDecoder().Bytes(data)
	return string(decoded), true
}

// encodingFor maps a canonical (or common raw) charset label to a Go
// encoding.Encoding. Table grounded on BumpyClock-hermes's charset-name
// to golang.org/x/text/encoding mapping, extended with the labels this
// package's own Normalize produces.
func encodingFor(label string) encoding.Encoding {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "UTF-8", "UTF8":
		return unicode.UTF8
	case "UTF-16", "UTF16", "UTF-16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "UTF-16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "CP1252":
		return charmap.Windows1252
	case "CP1251":
		return charmap.Windows1251
	case "ISO-8859-1", "ISO8859-1", "LATIN-1":
		return charmap.ISO8859_1
	case "LATIN-2", "ISO-8859-2":
		return charmap.ISO8859_2
	case "ISO-8859-5":
		return charmap.ISO8859_5
	case "ISO-8859-7":
		return charmap.ISO8859_7
	case "ISO-8859-8":
		return charmap.ISO8859_8
	case "ISO-8859-13":
		return charmap.ISO8859_13
	case "ISO-8859-15":
		return charmap.ISO8859_15
	case "KOI8-R":
		return charmap.KOI8R
	case "KOI8-U":
		return charmap.KOI8U
	case "SHIFT_JIS", "SHIFT-JIS":
		return japanese.ShiftJIS
	case "EUC-JP":
		return japanese.EUCJP
	case "UHC", "EUC-KR":
		return korean.EUCKR
	case "GBK":
		return simplifiedchinese.GBK
	case "GB2312", "GB18030":
		return simplifiedchinese.GB18030
	case "BIG5", "BIG-5":
		return traditionalchinese.Big5
	default:
		return nil
	}
}
