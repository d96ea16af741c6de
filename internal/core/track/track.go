// Copyright (c) 2026 Melodia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package track provides read access to the tracks of the catalogue.
//
// A track belongs to an artist through its album; listing an artist's tracks
// therefore joins through the album table.
package track

import "github.com/shopspring/decimal"

// Track is the descriptive record of a single recording.
type Track struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	AlbumID      int             `json:"album_id"`
	Composer     *string         `json:"composer"`
	Milliseconds int             `json:"milliseconds"`
	Bytes        *int            `json:"bytes"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
}
