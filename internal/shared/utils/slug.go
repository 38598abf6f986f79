package utils

import (
	"regexp"
	"strings"
)

const maxSlugLength = 50

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugMultiHyphen  = regexp.MustCompile(`-+`)
)

// GenerateSlug turns a wishlist title into a URL-safe slug.
// "День Рождения Маши" -> "den-rozhdeniya-mashi"
// "Tết Quà Tặng"       -> "tet-qua-tang"
// Uniqueness is the caller's concern (collision-checked with a suffix).
func GenerateSlug(input string) string {
	// Step 1: fold non-ASCII letters to their base/transliterated form
	ascii := Transliterate(input)

	// Step 2: lowercase
	lower := strings.ToLower(ascii)

	// Step 3: spaces to hyphens
	hyphenated := strings.ReplaceAll(lower, " ", "-")

	// Step 4: drop everything outside a-z, 0-9, hyphen
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")

	// Step 5: collapse consecutive hyphens, trim
	normalized := slugMultiHyphen.ReplaceAllString(cleaned, "-")
	trimmed := strings.Trim(normalized, "-")

	if len(trimmed) > maxSlugLength {
		trimmed = strings.Trim(trimmed[:maxSlugLength], "-")
	}

	if trimmed == "" {
		// Title had no usable characters (e.g. emoji only)
		return "wishlist"
	}

	return trimmed
}

// Transliterate maps accented Latin and Cyrillic characters to ASCII.
// The user base writes titles in both scripts, so both tables matter.
func Transliterate(input string) string {
	var b strings.Builder
	b.Grow(len(input))

	for _, r := range input {
		if repl, ok := latinFold[r]; ok {
			b.WriteRune(repl)
			continue
		}
		if repl, ok := cyrillicMap[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// latinFold strips diacritics from Latin letters (covers Vietnamese tones).
var latinFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'ả': 'a', 'ã': 'a', 'ạ': 'a',
	'ă': 'a', 'ắ': 'a', 'ằ': 'a', 'ẳ': 'a', 'ẵ': 'a', 'ặ': 'a',
	'â': 'a', 'ấ': 'a', 'ầ': 'a', 'ẩ': 'a', 'ẫ': 'a', 'ậ': 'a',
	'ä': 'a', 'å': 'a',

	'é': 'e', 'è': 'e', 'ẻ': 'e', 'ẽ': 'e', 'ẹ': 'e',
	'ê': 'e', 'ế': 'e', 'ề': 'e', 'ể': 'e', 'ễ': 'e', 'ệ': 'e',
	'ë': 'e',

	'í': 'i', 'ì': 'i', 'ỉ': 'i', 'ĩ': 'i', 'ị': 'i', 'ï': 'i',

	'ó': 'o', 'ò': 'o', 'ỏ': 'o', 'õ': 'o', 'ọ': 'o',
	'ô': 'o', 'ố': 'o', 'ồ': 'o', 'ổ': 'o', 'ỗ': 'o', 'ộ': 'o',
	'ơ': 'o', 'ớ': 'o', 'ờ': 'o', 'ở': 'o', 'ỡ': 'o', 'ợ': 'o',
	'ö': 'o',

	'ú': 'u', 'ù': 'u', 'ủ': 'u', 'ũ': 'u', 'ụ': 'u',
	'ư': 'u', 'ứ': 'u', 'ừ': 'u', 'ử': 'u', 'ữ': 'u', 'ự': 'u',
	'ü': 'u',

	'ý': 'y', 'ỳ': 'y', 'ỷ': 'y', 'ỹ': 'y', 'ỵ': 'y',

	'đ': 'd', 'ñ': 'n', 'ç': 'c',

	'Á': 'A', 'À': 'A', 'Ả': 'A', 'Ã': 'A', 'Ạ': 'A',
	'Ă': 'A', 'Ắ': 'A', 'Ằ': 'A', 'Ẳ': 'A', 'Ẵ': 'A', 'Ặ': 'A',
	'Â': 'A', 'Ấ': 'A', 'Ầ': 'A', 'Ẩ': 'A', 'Ẫ': 'A', 'Ậ': 'A',
	'Ä': 'A', 'Å': 'A',

	'É': 'E', 'È': 'E', 'Ẻ': 'E', 'Ẽ': 'E', 'Ẹ': 'E',
	'Ê': 'E', 'Ế': 'E', 'Ề': 'E', 'Ể': 'E', 'Ễ': 'E', 'Ệ': 'E',
	'Ë': 'E',

	'Í': 'I', 'Ì': 'I', 'Ỉ': 'I', 'Ĩ': 'I', 'Ị': 'I', 'Ï': 'I',

	'Ó': 'O', 'Ò': 'O', 'Ỏ': 'O', 'Õ': 'O', 'Ọ': 'O',
	'Ô': 'O', 'Ố': 'O', 'Ồ': 'O', 'Ổ': 'O', 'Ỗ': 'O', 'Ộ': 'O',
	'Ơ': 'O', 'Ớ': 'O', 'Ờ': 'O', 'Ở': 'O', 'Ỡ': 'O', 'Ợ': 'O',
	'Ö': 'O',

	'Ú': 'U', 'Ù': 'U', 'Ủ': 'U', 'Ũ': 'U', 'Ụ': 'U',
	'Ư': 'U', 'Ứ': 'U', 'Ừ': 'U', 'Ử': 'U', 'Ữ': 'U', 'Ự': 'U',
	'Ü': 'U',

	'Ý': 'Y', 'Ỳ': 'Y', 'Ỷ': 'Y', 'Ỹ': 'Y', 'Ỵ': 'Y',

	'Đ': 'D', 'Ñ': 'N', 'Ç': 'C',
}

// cyrillicMap transliterates Russian Cyrillic to Latin.
var cyrillicMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",

	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "Yo",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "Y", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "Kh", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Shch",
	'Ъ': "", 'Ы': "Y", 'Ь': "", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
}
