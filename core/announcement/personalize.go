package announcement

import "regexp"

var (
	placeholderRe = regexp.MustCompile(`\{(\w+)\}`)
	videoURLRe    = regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`)
	videoIDRe     = regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`)
)

// Personalize replaces every {key} in s with vals[key]. Placeholders without a value are left as is.
func Personalize(s string, vals map[string]string) string {
	if s == "" {
		return s
	}
	return placeholderRe.ReplaceAllStringFunc(s, func(m string) string {
		if val, ok := vals[m[1:len(m)-1]]; ok {
			return val
		}
		return m
	})
}

// VideoID extracts a YouTube video id from a watch, short or embed URL, or a bare id.
func VideoID(url string) string {
	if m := videoURLRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	if m := videoIDRe.FindStringSubmatch(url); m != nil {
		return m[1]
	}
	return ""
}
