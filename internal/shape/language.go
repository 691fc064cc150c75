package shape

import (
	"strings"
	"unicode"

	"github.com/grindlemire/go-gui/internal/font"
)

// languageProfiles lists the most frequent trigrams per language, most
// frequent first. Words are padded with spaces.
var languageProfiles = []struct {
	tag      font.Tag
	trigrams []string
}{
	{font.MakeTag("ENG"), []string{" th", "the", "he ", "and", " an", "nd ", " of", "of ", "ing", "ng ", " to", "to ", "ion", " in", "in ", "er ", "ed ", " a ", "is ", "tio"}},
	{font.MakeTag("DEU"), []string{"en ", "er ", "der", " de", "ie ", " di", "die", "sch", "ein", "che", "ich", "den", "nd ", " un", "und", "cht", " ei", "ine", "ung", " ge"}},
	{font.MakeTag("FRA"), []string{" de", "es ", "de ", "le ", " le", "ent", "ion", "les", " la", "la ", "re ", " et", "et ", "tio", "ne ", "on ", "que", " qu", "ue ", "des"}},
	{font.MakeTag("ESP"), []string{" de", "de ", "os ", "la ", " la", "el ", " el", "en ", "es ", "ión", "que", " qu", "ue ", " en", "as ", "aci", "ado", "cio", "con", " co"}},
	{font.MakeTag("ITA"), []string{" di", "di ", "la ", " la", "che", " ch", "to ", "re ", "ell", "del", " de", "lla", "ne ", "ion", "one", "zio", " co", "ent", "per", " pe"}},
	{font.MakeTag("PTG"), []string{" de", "de ", "os ", "ão ", "ção", "que", " qu", "ue ", " co", "do ", "da ", "ent", "as ", " a ", "com", "nte", " pr", "es ", "men", "ra "}},
	{font.MakeTag("NLD"), []string{"en ", "de ", " de", "het", " he", "et ", "an ", "van", " va", " ee", "een", "er ", "ijk", "ij ", "oor", "aar", " en", "nd ", "sch", "ver"}},
}

// minLanguageScore is the score below which no language is reported.
const minLanguageScore = 40

// DetectLanguage guesses the OpenType language system tag of Latin text by
// comparing its trigrams against small frequency profiles. It reports false
// when the text is too short or too ambiguous to decide.
func DetectLanguage(text []rune) (font.Tag, bool) {
	if len(text) > detectWindow {
		text = text[:detectWindow]
	}
	var sb strings.Builder
	sb.WriteByte(' ')
	for _, r := range text {
		switch {
		case unicode.IsLetter(r):
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte(' ')
	padded := []rune(strings.Join(strings.Fields(sb.String()), " "))
	padded = append(append([]rune{' '}, padded...), ' ')

	counts := make(map[string]int)
	for i := 0; i+3 <= len(padded); i++ {
		counts[string(padded[i:i+3])]++
	}

	var (
		best      font.Tag
		bestScore int
		tie       bool
	)
	for _, p := range languageProfiles {
		score := 0
		for rank, tg := range p.trigrams {
			score += counts[tg] * (len(p.trigrams) - rank)
		}
		switch {
		case score > bestScore:
			best, bestScore, tie = p.tag, score, false
		case score == bestScore:
			tie = true
		}
	}
	if bestScore < minLanguageScore || tie {
		return 0, false
	}
	return best, true
}
