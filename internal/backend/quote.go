package backend

import "strings"

// safeShellWord covers names that need no quoting on a shell command line.
const safeShellChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789@%+=:,./_-"

// shellQuote single-quotes a word for the login-shell command line when it
// contains anything outside the safe set. Winget IDs with spaces need this.
func shellQuote(word string) string {
	if word != "" && strings.Trim(word, safeShellChars) == "" {
		return word
	}
	return "'" + strings.ReplaceAll(word, "'", `'"'"'`) + "'"
}
