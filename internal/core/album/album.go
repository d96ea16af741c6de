// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package album provides read access to the albums of the catalogue.
//
// Albums are only ever listed per artist; the artist package owns the
// HTTP surface and the existence check that precedes a listing.
package album

// Album is the summary of a record released by exactly one artist.
type Album struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}
