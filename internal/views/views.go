package views

// Defaults substituted for missing row fields. View models never expose a
// raw null: every optional column maps to one of these.
const (
	UnknownAuthor     = "Unknown Author"
	Uncategorized     = "Uncategorized"
	DefaultReadTime   = "5 min read"
	DefaultPosition   = "Member"
	DefaultDepartment = "General"
	UnknownName       = "Unknown"

	PlaceholderArticleImage = "https://images.unsplash.com/photo-1557426272-fc759fdf7a8d?auto=format&fit=crop&w=2070&q=80"
	PlaceholderProfileImage = "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=faces"
)

// ArticleView is the display-ready article shape handed to consumers
type ArticleView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Excerpt     string `json:"excerpt"`
	Author      string `json:"author"`
	PublishDate string `json:"publishDate"`
	ReadTime    string `json:"readTime"`
	ImageURL    string `json:"imageUrl"`
	Link        string `json:"link"`
	Category    string `json:"category"`
}

// EditionView is an edition plus its published-article count. The count is
// not a column; it is computed by a companion query and injected here.
type EditionView struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	Description     string `json:"description"`
	CoverImage      string `json:"coverImage"`
	IssueNumber     int    `json:"issueNumber"`
	PublicationDate string `json:"publicationDate"`
	ArticleCount    int    `json:"articleCount"`
}

// SocialLink is one entry in a team member's ordered link list
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// TeamMemberView is the display-ready person shape for the team roster
type TeamMemberView struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Position    string       `json:"position"`
	Department  string       `json:"department"`
	ImageURL    string       `json:"imageUrl"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

// TeamDepartment groups the members of one team for the roster page
type TeamDepartment struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Color       string           `json:"color"`
	Members     []TeamMemberView `json:"members"`
}
