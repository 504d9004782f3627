// Package domain contains core business entities and rules.
package domain

// Quote represents a quotation with its author.
// This is a domain entity - it has no knowledge of external systems.
// A Quote is created fresh per fetch and is owned by whichever Output
// event carries it.
type Quote struct {
	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string
}
