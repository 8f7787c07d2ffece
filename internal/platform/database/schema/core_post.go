package schema

// RefPostTable represents the 'core.post' table
type RefPostTable struct {
	Table           string
	ID              string
	AuthorFirstName string
	AuthorLastName  string
	Title           string
	Content         string
	CreatedAt       string
}

// RefPost is the schema definition for core.post
var RefPost = RefPostTable{
	Table:           "core.post",
	ID:              "id",
	AuthorFirstName: "author_firstname",
	AuthorLastName:  "author_lastname",
	Title:           "title",
	Content:         "content",
	CreatedAt:       "createdat",
}

func (t RefPostTable) Columns() []string {
	return []string{t.ID, t.AuthorFirstName, t.AuthorLastName, t.Title, t.Content, t.CreatedAt}
}
