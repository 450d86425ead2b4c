package domain

import (
	"fmt"
	"strings"
)

// ConfirmationCeiling is the highest confidence that still asks the user to
// confirm. 0.60 asks, 0.61 auto-saves.
const ConfirmationCeiling = 0.60

// NeedsConfirmation reports whether a classification must be confirmed by
// the user before anything is stored.
func NeedsConfirmation(confidence float64) bool {
	return confidence <= ConfirmationCeiling
}

// Fields holds structured values extracted from a note, keyed by the
// lowercase field names the oracle uses ("name", "task", "next_step", ...).
type Fields map[string]string

// Get returns the first non-blank value among keys.
func (f Fields) Get(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(f[k]); v != "" {
			return v
		}
	}
	return ""
}

// Classification is the ephemeral result of classifying one note.
type Classification struct {
	Category   Category
	Confidence float64
	Fields     Fields
	Source     ClassificationSource
}

// Title picks a short human label for the note.
func (c Classification) Title(text string) string {
	if t := c.Fields.Get("name", "idea", "company", "task"); t != "" {
		return t
	}
	return Truncate(strings.TrimSpace(text), 50)
}

// Percent renders the confidence as a whole percentage.
func (c Classification) Percent() string {
	return fmt.Sprintf("%d%%", int(c.Confidence*100+1e-9))
}

// OracleVerdict is the raw answer of the model oracle. Category is the
// oracle's label as given and is validated by the classifier.
type OracleVerdict struct {
	Category   string
	Confidence float64
	Fields     Fields
}
