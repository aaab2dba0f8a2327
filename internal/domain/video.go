package domain

import "regexp"

// youtubeIDLength is the fixed length of a YouTube video id.
const youtubeIDLength = 11

// youtubeURL captures whatever follows the first recognized marker.
// The id is validated by length only, not by character class.
var youtubeURL = regexp.MustCompile(`^.*(youtu.be\/|v\/|u\/\w\/|embed\/|watch\?v=|&v=)([^#&?]*).*`)

// ParseVideoURL converts a YouTube watch, short, embed or legacy URL into an
// embeddable player URL. It returns false when no marker is found or the
// captured id is not exactly eleven characters long.
func ParseVideoURL(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	m := youtubeURL.FindStringSubmatch(url)
	if m == nil || len(m[2]) != youtubeIDLength {
		return "", false
	}
	return "https://www.youtube.com/embed/" + m[2], true
}
