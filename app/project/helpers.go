package project

import (
	"strings"
)

// Authors joins the ordered author list with the configured separator. The
// same string is used everywhere the feed needs an author value.
func (c *Channel) Authors() string {
	join := c.AuthorJoin
	if join == "" {
		join = ", "
	}
	return strings.Join(c.Author, join)
}

// Spaces become underscores and German umlauts are transliterated so the
// result is safe for URLs and non-UTF-8 filesystems.
var filenameReplacer = strings.NewReplacer(
	" ", "_",
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"Ä", "Ae",
	"Ö", "Oe",
	"Ü", "Ue",
	"ß", "ss",
)

// SanitizeFilename derives a filename-safe form of text.
func SanitizeFilename(text string) string {
	return filenameReplacer.Replace(text)
}

// AudioFilename returns the episode's local MP3 filename, derived from the
// title when none is set explicitly.
func (e *Episode) AudioFilename() string {
	if e.Filename != "" {
		return e.Filename
	}
	return SanitizeFilename(e.Title) + ".mp3"
}
