package views_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/abr-content-api/internal/models"
	"github.com/abr-content-api/internal/views"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }

func TestMapArticle_AllFieldsPresent(t *testing.T) {
	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	article := &models.Article{
		ID:            42,
		Slug:          "campus-economy",
		Title:         "The Campus Economy",
		Excerpt:       strPtr("How student ventures reshape local markets."),
		FeaturedImage: strPtr("https://cdn.example.com/campus.jpg"),
		Status:        models.StatusPublished,
		ReadTime:      intPtr(7),
		PublishedAt:   timePtr(published),
		Author:        &models.Person{ID: 1, FullName: strPtr("Sarah Johnson")},
		Category:      &models.Category{ID: 1, Name: "Economics"},
	}

	v := views.MapArticle(article)

	if v.Title != "The Campus Economy" {
		t.Errorf("Expected title to pass through, got %q", v.Title)
	}
	if v.Author != "Sarah Johnson" {
		t.Errorf("Expected author name, got %q", v.Author)
	}
	if v.ReadTime != "7 min read" {
		t.Errorf("Expected '7 min read', got %q", v.ReadTime)
	}
	if v.ImageURL != "https://cdn.example.com/campus.jpg" {
		t.Errorf("Expected featured image, got %q", v.ImageURL)
	}
	if v.Link != "/article/campus-economy" {
		t.Errorf("Expected slug link, got %q", v.Link)
	}
	if v.Category != "Economics" {
		t.Errorf("Expected category name, got %q", v.Category)
	}
	if v.PublishDate != published.Format(time.RFC3339) {
		t.Errorf("Expected published_at, got %q", v.PublishDate)
	}
}

func TestMapArticle_AllFallbacks(t *testing.T) {
	// Row with every optional field missing except timestamps
	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	article := &models.Article{
		ID:          7,
		Slug:        "bare-article",
		Title:       "Bare Article",
		Status:      models.StatusPublished,
		PublishedAt: timePtr(published),
		CreatedAt:   timePtr(created),
	}

	v := views.MapArticle(article)

	if v.Author != views.UnknownAuthor {
		t.Errorf("Expected %q, got %q", views.UnknownAuthor, v.Author)
	}
	if v.ReadTime != views.DefaultReadTime {
		t.Errorf("Expected %q, got %q", views.DefaultReadTime, v.ReadTime)
	}
	if v.ImageURL != views.PlaceholderArticleImage {
		t.Errorf("Expected placeholder image, got %q", v.ImageURL)
	}
	if v.Category != views.Uncategorized {
		t.Errorf("Expected %q, got %q", views.Uncategorized, v.Category)
	}
	if v.Excerpt != "" {
		t.Errorf("Expected empty excerpt, got %q", v.Excerpt)
	}
	// published_at wins over created_at
	if v.PublishDate != published.Format(time.RFC3339) {
		t.Errorf("Expected published_at to win, got %q", v.PublishDate)
	}
}

func TestMapArticle_PublishDateFallsBackToCreatedAt(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	article := &models.Article{
		ID:        1,
		Slug:      "created-only",
		Title:     "Created Only",
		CreatedAt: timePtr(created),
	}

	v := views.MapArticle(article)
	if v.PublishDate != created.Format(time.RFC3339) {
		t.Errorf("Expected created_at fallback, got %q", v.PublishDate)
	}
}

func TestMapArticle_NoTimestamps(t *testing.T) {
	article := &models.Article{ID: 1, Slug: "no-dates", Title: "No Dates"}

	v := views.MapArticle(article)
	if v.PublishDate != "" {
		t.Errorf("Expected empty publish date, got %q", v.PublishDate)
	}
}

func TestMapArticle_AuthorWithoutName(t *testing.T) {
	article := &models.Article{
		ID:     1,
		Slug:   "anon",
		Title:  "Anon",
		Author: &models.Person{ID: 9},
	}

	v := views.MapArticle(article)
	if v.Author != views.UnknownAuthor {
		t.Errorf("Joined author row without full_name should fall back, got %q", v.Author)
	}
}

func TestMapArticle_Idempotent(t *testing.T) {
	article := &models.Article{
		ID:          3,
		Slug:        "twice",
		Title:       "Twice",
		ReadTime:    intPtr(4),
		PublishedAt: timePtr(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),
		Category:    &models.Category{ID: 2, Name: "Markets"},
	}

	first := views.MapArticle(article)
	second := views.MapArticle(article)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Mapping the same row twice diverged: %+v vs %+v", first, second)
	}
}

func TestMapEdition(t *testing.T) {
	pubDate := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	edition := &models.Edition{
		ID:              5,
		Title:           "Monocle No. 1",
		Subtitle:        strPtr("First light"),
		CoverImage:      strPtr("https://cdn.example.com/m1.jpg"),
		IssueNumber:     intPtr(1),
		PublicationDate: timePtr(pubDate),
		Status:          models.StatusPublished,
		PublicationID:   2,
	}

	v := views.MapEdition(edition, 12)

	if v.Title != "Monocle No. 1" {
		t.Errorf("Expected title, got %q", v.Title)
	}
	if v.Subtitle != "First light" {
		t.Errorf("Expected subtitle, got %q", v.Subtitle)
	}
	if v.IssueNumber != 1 {
		t.Errorf("Expected issue number 1, got %d", v.IssueNumber)
	}
	if v.ArticleCount != 12 {
		t.Errorf("Expected injected article count 12, got %d", v.ArticleCount)
	}
	if v.Description != "" {
		t.Errorf("Expected empty description, got %q", v.Description)
	}
}

func TestMapTeamMember_SocialLinkOrder(t *testing.T) {
	// linkedin set, email null, instagram set, twitter null
	person := &models.Person{
		ID:        1,
		FullName:  strPtr("Sarah Johnson"),
		LinkedIn:  strPtr("https://linkedin.com/in/sarahjohnson"),
		Instagram: strPtr("https://instagram.com/sarahjohnson"),
	}

	v := views.MapTeamMember(person)

	want := []views.SocialLink{
		{Platform: "linkedin", URL: "https://linkedin.com/in/sarahjohnson"},
		{Platform: "instagram", URL: "https://instagram.com/sarahjohnson"},
	}
	if !reflect.DeepEqual(v.SocialLinks, want) {
		t.Errorf("Expected %+v, got %+v", want, v.SocialLinks)
	}
}

func TestMapTeamMember_AllLinksFixedOrder(t *testing.T) {
	person := &models.Person{
		ID:        2,
		FullName:  strPtr("Michael Chen"),
		Email:     strPtr("michael.chen@example.edu"),
		LinkedIn:  strPtr("https://linkedin.com/in/michaelchen"),
		Instagram: strPtr("https://instagram.com/michaelchen"),
		Twitter:   strPtr("https://twitter.com/michaelchen"),
	}

	v := views.MapTeamMember(person)

	platforms := make([]string, 0, len(v.SocialLinks))
	for _, link := range v.SocialLinks {
		platforms = append(platforms, link.Platform)
	}
	want := []string{"linkedin", "email", "instagram", "twitter"}
	if !reflect.DeepEqual(platforms, want) {
		t.Errorf("Expected fixed order %v, got %v", want, platforms)
	}
}

func TestMapTeamMember_Fallbacks(t *testing.T) {
	person := &models.Person{ID: 3}

	v := views.MapTeamMember(person)

	if v.Name != views.UnknownName {
		t.Errorf("Expected %q, got %q", views.UnknownName, v.Name)
	}
	if v.Position != views.DefaultPosition {
		t.Errorf("Expected %q, got %q", views.DefaultPosition, v.Position)
	}
	if v.Department != views.DefaultDepartment {
		t.Errorf("Expected %q, got %q", views.DefaultDepartment, v.Department)
	}
	if v.ImageURL != views.PlaceholderProfileImage {
		t.Errorf("Expected placeholder profile image, got %q", v.ImageURL)
	}
	if len(v.SocialLinks) != 0 {
		t.Errorf("Expected no social links, got %+v", v.SocialLinks)
	}
}

func TestMapTeamMember_RoleAndTeamJoined(t *testing.T) {
	person := &models.Person{
		ID:       4,
		FullName: strPtr("Priya Mehta"),
		Role:     &models.Role{ID: 4, Name: strPtr("Designer")},
		Team:     &models.Team{ID: 2, Name: strPtr("Design")},
	}

	v := views.MapTeamMember(person)
	if v.Position != "Designer" {
		t.Errorf("Expected role name, got %q", v.Position)
	}
	if v.Department != "Design" {
		t.Errorf("Expected team name, got %q", v.Department)
	}
}

func TestMapTeamDepartment(t *testing.T) {
	team := &models.Team{ID: 1, Name: strPtr("Editorial")}
	members := []views.TeamMemberView{{ID: 1, Name: "Sarah Johnson"}}

	dept := views.MapTeamDepartment(team, members)

	if dept.ID != "1" {
		t.Errorf("Expected id '1', got %q", dept.ID)
	}
	if dept.Name != "Editorial" {
		t.Errorf("Expected name, got %q", dept.Name)
	}
	if dept.Description != "Our Editorial team" {
		t.Errorf("Unexpected description %q", dept.Description)
	}
	if dept.Color != "from-blue-600 to-purple-600" {
		t.Errorf("Unexpected color %q", dept.Color)
	}
	if len(dept.Members) != 1 {
		t.Errorf("Expected 1 member, got %d", len(dept.Members))
	}
}

func TestMapTeamDepartment_UnknownTeam(t *testing.T) {
	team := &models.Team{ID: 8, Name: strPtr("Podcast")}

	dept := views.MapTeamDepartment(team, nil)
	if dept.Color == "" {
		t.Error("Unknown team should still get a color")
	}
}
