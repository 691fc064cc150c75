package font

// Tag is a 4-byte OpenType tag such as 'latn' or 'GSUB'.
type Tag uint32

// MakeTag builds a tag from up to four ASCII characters, padding with spaces.
func MakeTag(s string) Tag {
	var b [4]byte
	for i := range b {
		if i < len(s) {
			b[i] = s[i]
		} else {
			b[i] = ' '
		}
	}
	return Tag(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

var (
	tagHead = MakeTag("head")
	tagHhea = MakeTag("hhea")
	tagMaxp = MakeTag("maxp")
	tagOS2  = MakeTag("OS/2")
	tagCmap = MakeTag("cmap")
	tagHmtx = MakeTag("hmtx")
	tagLoca = MakeTag("loca")
	tagGlyf = MakeTag("glyf")
	tagCFF  = MakeTag("CFF ")
	tagGSUB = MakeTag("GSUB")
	tagGPOS = MakeTag("GPOS")
	tagGDEF = MakeTag("GDEF")
	tagTTC  = MakeTag("ttcf")
)

// DefaultScript and DefaultLanguage are the fallbacks used when a script or
// language system is missing from a layout table.
var (
	DefaultScript   = MakeTag("DFLT")
	DefaultLanguage = MakeTag("dflt")
)
