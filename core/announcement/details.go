package announcement

import (
	"strings"
	"unicode"
)

// Details is the structured form of an announcement's More details block.
type Details struct {
	Priority       string            `json:"priority,omitempty"`
	Category       string            `json:"category,omitempty"`
	Deadline       string            `json:"deadline,omitempty"`
	Location       string            `json:"location,omitempty"`
	Contact        string            `json:"contact,omitempty"`
	Link           string            `json:"link,omitempty"`
	Author         string            `json:"author,omitempty"`
	AdditionalInfo []string          `json:"additionalInfo,omitempty"`
	Extra          map[string]string `json:"extra,omitempty"`
}

var synonyms = map[string]string{
	"priority":    "priority",
	"importance":  "priority",
	"category":    "category",
	"type":        "category",
	"deadline":    "deadline",
	"duedate":     "deadline",
	"lastdate":    "deadline",
	"location":    "location",
	"venue":       "location",
	"place":       "location",
	"contact":     "contact",
	"email":       "contact",
	"phone":       "contact",
	"contactinfo": "contact",
	"link":        "link",
	"url":         "link",
	"website":     "link",
	"author":      "author",
	"by":          "author",
	"postedby":    "author",
}

// ParseDetails reads "Key: value" lines. Keys are matched without case or whitespace
// against a synonym table; unknown keys go to Extra and lines without a colon to AdditionalInfo.
// A later line overrides an earlier one with the same key.
func ParseDetails(block string) Details {
	var d Details
	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		idx := strings.Index(line, ":")
		if idx < 0 {
			d.AdditionalInfo = append(d.AdditionalInfo, strings.TrimSpace(line))
			continue
		}
		key := cleanKey(line[:idx])
		d.set(key, strings.TrimSpace(line[idx+1:]))
	}
	return d
}

func (d *Details) set(key, val string) {
	switch synonyms[key] {
	case "priority":
		d.Priority = val
	case "category":
		d.Category = val
	case "deadline":
		d.Deadline = val
	case "location":
		d.Location = val
	case "contact":
		d.Contact = val
	case "link":
		d.Link = val
	case "author":
		d.Author = val
	default:
		if d.Extra == nil {
			d.Extra = make(map[string]string)
		}
		d.Extra[key] = val
	}
}

// IsZero reports whether the block held nothing.
func (d Details) IsZero() bool {
	return d.Priority == "" && d.Category == "" && d.Deadline == "" && d.Location == "" &&
		d.Contact == "" && d.Link == "" && d.Author == "" && len(d.AdditionalInfo) == 0 && len(d.Extra) == 0
}

// Personalize substitutes vals into every field.
func (d Details) Personalize(vals map[string]string) Details {
	d.Priority = Personalize(d.Priority, vals)
	d.Category = Personalize(d.Category, vals)
	d.Deadline = Personalize(d.Deadline, vals)
	d.Location = Personalize(d.Location, vals)
	d.Contact = Personalize(d.Contact, vals)
	d.Link = Personalize(d.Link, vals)
	d.Author = Personalize(d.Author, vals)
	if d.AdditionalInfo != nil {
		info := make([]string, len(d.AdditionalInfo))
		for i, line := range d.AdditionalInfo {
			info[i] = Personalize(line, vals)
		}
		d.AdditionalInfo = info
	}
	if d.Extra != nil {
		extra := make(map[string]string, len(d.Extra))
		for k, v := range d.Extra {
			extra[k] = Personalize(v, vals)
		}
		d.Extra = extra
	}
	return d
}

func cleanKey(k string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, strings.ToLower(k))
}
