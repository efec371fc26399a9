package locale

// Language identifies one of the two supported display languages.
type Language string

const (
	English Language = "en"
	Sinhala Language = "si"
)

// DefaultLanguage is used whenever no preference is stored or a lookup in
// the active language misses.
const DefaultLanguage = English

// Supported reports whether the code names a language the catalogue covers.
func Supported(code string) bool {
	switch Language(code) {
	case English, Sinhala:
		return true
	default:
		return false
	}
}
