// Package i18n renders dates and confirmation messages per a two-letter
// language tag. Unrecognized tags fall back to English.
package i18n

import (
	"strings"
	"time"
)

const (
	layoutEN = "01/02/2006 at 3:04 PM"
	layoutFR = "02/01/2006 à 15:04"
)

var translations = map[string]map[string]string{
	"en": {
		"user_created":    "User created successfully",
		"user_updated":    "User updated successfully",
		"user_deleted":    "User deleted successfully",
		"post_created":    "Post created successfully",
		"post_updated":    "Post updated successfully",
		"post_deleted":    "Post deleted successfully",
		"comment_created": "Comment created successfully",
		"comment_deleted": "Comment deleted successfully",
		"not_found":       "Resource not found",
		"invalid_params":  "Invalid parameters",
		"invalid_body":    "Invalid request body",
	},
	"fr": {
		"user_created":    "Utilisateur créé avec succès",
		"user_updated":    "Utilisateur mis à jour avec succès",
		"user_deleted":    "Utilisateur supprimé avec succès",
		"post_created":    "Publication créée avec succès",
		"post_updated":    "Publication mise à jour avec succès",
		"post_deleted":    "Publication supprimée avec succès",
		"comment_created": "Commentaire créé avec succès",
		"comment_deleted": "Commentaire supprimé avec succès",
		"not_found":       "Ressource non trouvée",
		"invalid_params":  "Paramètres invalides",
		"invalid_body":    "Corps de requête invalide",
	},
}

// Lang extracts the language tag from an Accept-Language style header:
// first comma-separated entry, trimmed, lowercased, first two characters.
func Lang(header string) string {
	first, _, _ := strings.Cut(header, ",")
	lang := strings.ToLower(strings.TrimSpace(first))
	if len(lang) > 2 {
		lang = lang[:2]
	}
	return normalize(lang)
}

func normalize(lang string) string {
	if _, ok := translations[lang]; !ok {
		return "en"
	}
	return lang
}

// FormatDate renders t per the language tag. A nil timestamp renders as "".
func FormatDate(t *time.Time, lang string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	if normalize(lang) == "fr" {
		return t.Format(layoutFR)
	}
	return t.Format(layoutEN)
}

// Translate looks up a message key; unknown keys are returned verbatim.
func Translate(key, lang string) string {
	if msg, ok := translations[normalize(lang)][key]; ok {
		return msg
	}
	return key
}
