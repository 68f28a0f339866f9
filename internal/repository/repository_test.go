package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/carewell-health/cms-api/internal/mocks"
	"github.com/carewell-health/cms-api/internal/models"
)

func TestMockPostRepositoryFiltering(t *testing.T) {
	m := mocks.NewMockPostRepository()
	ctx := context.Background()

	now := time.Now()
	for i := 0; i < 5; i++ {
		id := fmt.Sprintf("post-%d", i)
		status := models.PostStatusPublished
		if i%2 == 0 {
			status = models.PostStatusDraft
		}
		m.Posts[id] = &models.Post{
			ID:        id,
			Title:     "Post " + id,
			Content:   "content",
			Status:    status,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		}
	}
	m.CategoriesByPost["post-1"] = []string{"cat-a"}

	posts, total, err := m.List(ctx, &models.PostFilter{
		ListParams: models.ListParams{Page: 1, Limit: 10},
		Status:     string(models.PostStatusPublished),
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 published posts, got %d", total)
	}
	for _, p := range posts {
		if p.Status != models.PostStatusPublished {
			t.Errorf("Filter leaked status %s", p.Status)
		}
	}

	_, total, err = m.List(ctx, &models.PostFilter{
		ListParams: models.ListParams{Page: 1, Limit: 10},
		CategoryID: "cat-a",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected 1 post in category, got %d", total)
	}
}

func TestMockPostRepositorySortOrder(t *testing.T) {
	m := mocks.NewMockPostRepository()
	ctx := context.Background()

	base := time.Now()
	m.Posts["old"] = &models.Post{ID: "old", Title: "Old", CreatedAt: base.Add(-2 * time.Hour)}
	m.Posts["new"] = &models.Post{ID: "new", Title: "New", CreatedAt: base}
	m.Posts["mid"] = &models.Post{ID: "mid", Title: "Mid", CreatedAt: base.Add(-time.Hour)}

	posts, _, err := m.List(ctx, &models.PostFilter{ListParams: models.ListParams{Page: 1, Limit: 10}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(posts) != 3 || posts[0].ID != "new" || posts[2].ID != "old" {
		got := make([]string, len(posts))
		for i, p := range posts {
			got[i] = p.ID
		}
		t.Errorf("Expected newest-first order, got %v", got)
	}
}

func TestMockCategoryRepositorySlugExists(t *testing.T) {
	m := mocks.NewMockCategoryRepository()
	ctx := context.Background()

	m.Categories["c1"] = &models.Category{ID: "c1", Name: "Home Care", Slug: "home-care"}

	exists, err := m.SlugExists(ctx, "home-care", "")
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected slug to exist")
	}

	// the row itself is excluded when checking for an update
	exists, err = m.SlugExists(ctx, "home-care", "c1")
	if err != nil {
		t.Fatalf("SlugExists failed: %v", err)
	}
	if exists {
		t.Error("Expected excluded id to be ignored")
	}
}

func TestMockMediaRepositoryDeleteOwnedBy(t *testing.T) {
	m := mocks.NewMockMediaRepository()
	ctx := context.Background()

	m.Items["a"] = &models.Media{ID: "a", Name: "a.jpg", UserID: "owner"}
	m.Items["b"] = &models.Media{ID: "b", Name: "b.jpg", UserID: "owner"}
	m.Items["c"] = &models.Media{ID: "c", Name: "c.jpg", UserID: "someone-else"}

	deleted, err := m.DeleteOwnedBy(ctx, []string{"a", "b", "c", "missing"}, "owner")
	if err != nil {
		t.Fatalf("DeleteOwnedBy failed: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 deleted, got %d", deleted)
	}
	if _, ok := m.Items["c"]; !ok {
		t.Error("Row owned by another user must survive")
	}
}

func TestMockAuditRepositoryFiltering(t *testing.T) {
	m := mocks.NewMockAuditRepository()
	ctx := context.Background()

	base := time.Now()
	m.Entries = []*models.AuditLogEntry{
		{ID: "e1", Action: models.AuditActionCreate, Entity: "Post", UserID: "u1", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: "e2", Action: models.AuditActionDelete, Entity: "Media", UserID: "u2", CreatedAt: base.Add(-time.Hour)},
		{ID: "e3", Action: models.AuditActionCreate, Entity: "Post", UserID: "u2", CreatedAt: base},
	}

	entries, total, err := m.List(ctx, &models.AuditFilter{
		ListParams: models.ListParams{Page: 1, Limit: 10},
		Entity:     "Post",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 2 || entries[0].ID != "e3" {
		t.Errorf("Expected 2 post entries newest-first, got total=%d first=%s", total, entries[0].ID)
	}

	_, total, err = m.List(ctx, &models.AuditFilter{
		ListParams: models.ListParams{Page: 1, Limit: 10},
		UserID:     "u2",
		Action:     string(models.AuditActionDelete),
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected 1 entry for u2 deletes, got %d", total)
	}
}

func TestMockTeamRepositoryDisplayOrder(t *testing.T) {
	m := mocks.NewMockTeamRepository()
	ctx := context.Background()

	next, err := m.NextDisplayOrder(ctx)
	if err != nil {
		t.Fatalf("NextDisplayOrder failed: %v", err)
	}
	if next != 0 {
		t.Errorf("Empty table should yield 0, got %d", next)
	}

	m.Members["m1"] = &models.TeamMember{ID: "m1", Name: "A", DisplayOrder: 4, IsVisible: true}
	m.Members["m2"] = &models.TeamMember{ID: "m2", Name: "B", DisplayOrder: 1, IsVisible: true}

	next, err = m.NextDisplayOrder(ctx)
	if err != nil {
		t.Fatalf("NextDisplayOrder failed: %v", err)
	}
	if next != 5 {
		t.Errorf("Expected max+1 = 5, got %d", next)
	}

	members, _, err := m.List(ctx, &models.TeamFilter{ListParams: models.ListParams{Page: 1, Limit: 10}})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(members) != 2 || members[0].ID != "m2" {
		t.Errorf("Expected display order ascending, got %v", members)
	}
}
