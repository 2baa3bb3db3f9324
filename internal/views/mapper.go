package views

import (
	"fmt"
	"strconv"
	"time"

	"github.com/abr-content-api/internal/models"
)

// MapArticle transforms one joined article row into an ArticleView,
// substituting the documented defaults for anything missing. Pure and
// side-effect-free; absent sub-rows are fallbacks, never failures.
func MapArticle(a *models.Article) ArticleView {
	v := ArticleView{
		ID:       a.ID,
		Title:    a.Title,
		Author:   UnknownAuthor,
		ReadTime: DefaultReadTime,
		ImageURL: PlaceholderArticleImage,
		Link:     "/article/" + a.Slug,
		Category: Uncategorized,
	}

	if a.Excerpt != nil {
		v.Excerpt = *a.Excerpt
	}
	if a.Author != nil && a.Author.FullName != nil {
		v.Author = *a.Author.FullName
	}
	if a.ReadTime != nil {
		v.ReadTime = fmt.Sprintf("%d min read", *a.ReadTime)
	}
	if a.FeaturedImage != nil {
		v.ImageURL = *a.FeaturedImage
	}
	if a.Category != nil {
		v.Category = a.Category.Name
	}

	// published_at wins over created_at; empty string when neither is set
	switch {
	case a.PublishedAt != nil:
		v.PublishDate = a.PublishedAt.Format(time.RFC3339)
	case a.CreatedAt != nil:
		v.PublishDate = a.CreatedAt.Format(time.RFC3339)
	}

	return v
}

// MapArticles maps a slice of rows, preserving order
func MapArticles(articles []*models.Article) []ArticleView {
	out := make([]ArticleView, 0, len(articles))
	for _, a := range articles {
		out = append(out, MapArticle(a))
	}
	return out
}

// MapEdition transforms one edition row into an EditionView. articleCount
// comes from the companion count query, not from the row itself.
func MapEdition(e *models.Edition, articleCount int) EditionView {
	v := EditionView{
		ID:           e.ID,
		Title:        e.Title,
		ArticleCount: articleCount,
	}

	if e.Subtitle != nil {
		v.Subtitle = *e.Subtitle
	}
	if e.Description != nil {
		v.Description = *e.Description
	}
	if e.CoverImage != nil {
		v.CoverImage = *e.CoverImage
	}
	if e.IssueNumber != nil {
		v.IssueNumber = *e.IssueNumber
	}
	if e.PublicationDate != nil {
		v.PublicationDate = e.PublicationDate.Format(time.RFC3339)
	}

	return v
}

// MapTeamMember transforms one person row (with role/team joins) into a
// TeamMemberView. Social links are appended in a fixed order: linkedin,
// email, instagram, twitter. Missing fields are skipped, never padded.
func MapTeamMember(p *models.Person) TeamMemberView {
	v := TeamMemberView{
		ID:          p.ID,
		Name:        UnknownName,
		Position:    DefaultPosition,
		Department:  DefaultDepartment,
		ImageURL:    PlaceholderProfileImage,
		SocialLinks: []SocialLink{},
	}

	if p.FullName != nil {
		v.Name = *p.FullName
	}
	if p.Role != nil && p.Role.Name != nil {
		v.Position = *p.Role.Name
	}
	if p.Team != nil && p.Team.Name != nil {
		v.Department = *p.Team.Name
	}
	if p.ProfileImage != nil {
		v.ImageURL = *p.ProfileImage
	}

	if p.LinkedIn != nil {
		v.SocialLinks = append(v.SocialLinks, SocialLink{Platform: "linkedin", URL: *p.LinkedIn})
	}
	if p.Email != nil {
		v.SocialLinks = append(v.SocialLinks, SocialLink{Platform: "email", URL: *p.Email})
	}
	if p.Instagram != nil {
		v.SocialLinks = append(v.SocialLinks, SocialLink{Platform: "instagram", URL: *p.Instagram})
	}
	if p.Twitter != nil {
		v.SocialLinks = append(v.SocialLinks, SocialLink{Platform: "twitter", URL: *p.Twitter})
	}

	return v
}

// teamColors assigns a gradient per known team name for the roster page
var teamColors = map[string]string{
	"Editorial":  "from-blue-600 to-purple-600",
	"Content":    "from-purple-600 to-pink-600",
	"Design":     "from-pink-600 to-red-600",
	"Digital":    "from-red-600 to-orange-600",
	"Marketing":  "from-orange-600 to-yellow-600",
	"Operations": "from-green-600 to-teal-600",
}

const defaultTeamColor = "from-blue-600 to-purple-600"

// MapTeamDepartment builds the department grouping for one team and its
// members. The caller decides which people belong to the team.
func MapTeamDepartment(t *models.Team, members []TeamMemberView) TeamDepartment {
	name := "Team"
	if t.Name != nil {
		name = *t.Name
	}

	color, ok := teamColors[name]
	if !ok {
		color = defaultTeamColor
	}

	return TeamDepartment{
		ID:          strconv.FormatInt(t.ID, 10),
		Name:        name,
		Description: "Our " + name + " team",
		Color:       color,
		Members:     members,
	}
}
