package schema

// ArtistTable represents the 'artist' table
type ArtistTable struct {
	Table string
	ID    string
	Name  string
}

// Artist is the schema definition for artist
var Artist = ArtistTable{
	Table: "artist",
	ID:    "id",
	Name:  "name",
}

func (t ArtistTable) Columns() []string {
	return []string{t.ID, t.Name}
}

// ArtistModel is the GORM mapping of the artist table.
type ArtistModel struct {
	ID   int    `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;size:120;not null"`
}

func (ArtistModel) TableName() string { return Artist.Table }
