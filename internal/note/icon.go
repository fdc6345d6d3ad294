// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package note

// DefaultIcon is shown for any category without its own glyph.
const DefaultIcon = "📝"

var categoryIcons = map[string]string{
	"shopping": "🛍️",
	"work":     "💼",
	"personal": "🌟",
	"study":    "📚",
}

// Icon returns the glyph for a category. Matching is exact.
func Icon(category string) string {
	if icon, ok := categoryIcons[category]; ok {
		return icon
	}
	return DefaultIcon
}
