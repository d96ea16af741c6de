package schema

// AlbumTable represents the 'album' table
type AlbumTable struct {
	Table    string
	ID       string
	Title    string
	ArtistID string
}

// Album is the schema definition for album
var Album = AlbumTable{
	Table:    "album",
	ID:       "id",
	Title:    "title",
	ArtistID: "artist_id",
}

func (t AlbumTable) Columns() []string {
	return []string{t.ID, t.Title, t.ArtistID}
}

// AlbumModel is the GORM mapping of the album table.
type AlbumModel struct {
	ID       int    `gorm:"column:id;primaryKey"`
	Title    string `gorm:"column:title;size:160;not null"`
	ArtistID int    `gorm:"column:artist_id;not null;index"`
}

func (AlbumModel) TableName() string { return Album.Table }

// Qualified returns column prefixed with the table name, for joins.
func (t AlbumTable) Qualified(column string) string {
	return t.Table + "." + column
}
