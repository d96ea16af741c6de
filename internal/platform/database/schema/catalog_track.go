package schema

import "github.com/shopspring/decimal"

// TrackTable represents the 'track' table
type TrackTable struct {
	Table        string
	ID           string
	Name         string
	AlbumID      string
	Composer     string
	Milliseconds string
	Bytes        string
	UnitPrice    string
}

// Track is the schema definition for track
var Track = TrackTable{
	Table:        "track",
	ID:           "id",
	Name:         "name",
	AlbumID:      "album_id",
	Composer:     "composer",
	Milliseconds: "milliseconds",
	Bytes:        "bytes",
	UnitPrice:    "unit_price",
}

func (t TrackTable) Columns() []string {
	return []string{t.ID, t.Name, t.AlbumID, t.Composer, t.Milliseconds, t.Bytes, t.UnitPrice}
}

// TrackModel is the GORM mapping of the track table.
type TrackModel struct {
	ID           int             `gorm:"column:id;primaryKey"`
	Name         string          `gorm:"column:name;size:200;not null"`
	AlbumID      int             `gorm:"column:album_id;not null;index"`
	Composer     *string         `gorm:"column:composer;size:220"`
	Milliseconds int             `gorm:"column:milliseconds;not null"`
	Bytes        *int            `gorm:"column:bytes"`
	UnitPrice    decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null"`
}

func (TrackModel) TableName() string { return Track.Table }

// Qualified returns column prefixed with the table name, for joins.
func (t TrackTable) Qualified(column string) string {
	return t.Table + "." + column
}
