package utils

import "strings"

// DefaultLoginToken is used when a transliterated organization name produces an empty slug
const DefaultLoginToken = "operator"

// MaxLoginBaseLength bounds the base login candidate before uniqueness suffixes
const MaxLoginBaseLength = 20

// Fixed Cyrillic to ASCII transliteration table. Whitespace and hyphens map to
// underscores; characters absent from the table are kept only if alphanumeric.
var transliteration = map[rune]string{
    'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
    'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
    'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
    'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
    'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
    ' ': "_", '-': "_",
}

// TransliterateLogin derives an ASCII login slug from an organization display name.
// The result is lower-cased, capped at MaxLoginBaseLength characters, stripped of
// leading/trailing underscores and falls back to DefaultLoginToken when empty.
func TransliterateLogin(name string) string {
    var b strings.Builder
    for _, r := range strings.ToLower(name) {
        if mapped, ok := transliteration[r]; ok {
            b.WriteString(mapped)
            continue
        }
        if isASCIIAlphanumeric(r) {
            b.WriteRune(r)
        }
    }

    login := b.String()
    if len(login) > MaxLoginBaseLength {
        login = login[:MaxLoginBaseLength]
    }
    login = strings.Trim(login, "_")
    if login == "" {
        login = DefaultLoginToken
    }
    return login
}

func isASCIIAlphanumeric(r rune) bool {
    return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
