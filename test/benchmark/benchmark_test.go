package benchmark

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/config"
	"github.com/carewell-health/cms-api/internal/mocks"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
	"github.com/carewell-health/cms-api/internal/validation"
)

// BenchmarkPostList benchmarks a filtered, paginated list over 1000 posts
func BenchmarkPostList(b *testing.B) {
	m := mocks.NewMockRepos()
	for i := 0; i < 1000; i++ {
		id := fmt.Sprintf("post-%04d", i)
		status := models.PostStatusPublished
		if i%3 == 0 {
			status = models.PostStatusDraft
		}
		m.Post.Posts[id] = &models.Post{
			ID:        id,
			Title:     "Post " + id,
			Slug:      "post-" + id,
			Content:   "Content for " + id,
			Status:    status,
			CreatedAt: time.Now().Add(-time.Duration(i) * time.Minute),
		}
	}
	svcs := service.NewServices(m.Repos, &config.Config{}, zerolog.Nop())

	filter := &models.PostFilter{
		ListParams: models.ListParams{Page: 5, Limit: 10},
		Status:     string(models.PostStatusPublished),
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, _, err := svcs.Post.List(context.Background(), filter); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSlugify benchmarks slug derivation from titles
func BenchmarkSlugify(b *testing.B) {
	title := "10 Tips for Healthy Aging & Wellness (2025 Edition!)"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.Slugify(title)
	}
}

// BenchmarkValidatePostInput benchmarks the full post validation pipeline
func BenchmarkValidatePostInput(b *testing.B) {
	in := &models.PostInput{
		Title:   "A Valid Post",
		Content: "Some content",
		Status:  "PUBLISHED",
		Slug:    "a-valid-post",
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		validation.ValidatePostInput(in)
	}
}

// BenchmarkTokenVerify benchmarks bearer token parse and validation
func BenchmarkTokenVerify(b *testing.B) {
	verifier := auth.NewTokenVerifier("benchmark-secret", time.Hour)
	token, err := verifier.Issue(auth.Identity{
		UserID: "user-1",
		Name:   "Bench User",
		Role:   models.RoleEditor,
	})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := verifier.Parse(token); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAuditedCreate benchmarks a mutation with its audit write
func BenchmarkAuditedCreate(b *testing.B) {
	m := mocks.NewMockRepos()
	svcs := service.NewServices(m.Repos, &config.Config{}, zerolog.Nop())
	actor := &auth.Identity{UserID: "user-admin", Name: "Admin", Role: models.RoleAdmin}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		in := &models.TaxonomyInput{
			Name: fmt.Sprintf("Category %d", i),
			Slug: fmt.Sprintf("category-%d", i),
		}
		if _, err := svcs.Category.Create(context.Background(), actor, in); err != nil {
			b.Fatal(err)
		}
	}
}
