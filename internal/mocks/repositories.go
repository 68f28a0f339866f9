package mocks

import (
	"context"
	"sort"
	"strings"

	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/repository"
)

// MockRepos bundles the individual repository mocks plus a ready-to-use
// repository.Repositories wired with a pass-through transaction.
type MockRepos struct {
	User     *MockUserRepository
	Post     *MockPostRepository
	Category *MockCategoryRepository
	Tag      *MockTagRepository
	Team     *MockTeamRepository
	Media    *MockMediaRepository
	Audit    *MockAuditRepository

	Repos *repository.Repositories
}

// NewMockRepos creates all repository mocks
func NewMockRepos() *MockRepos {
	m := &MockRepos{
		User:     NewMockUserRepository(),
		Post:     NewMockPostRepository(),
		Category: NewMockCategoryRepository(),
		Tag:      NewMockTagRepository(),
		Team:     NewMockTeamRepository(),
		Media:    NewMockMediaRepository(),
		Audit:    NewMockAuditRepository(),
	}
	repos := &repository.Repositories{
		User:     m.User,
		Post:     m.Post,
		Category: m.Category,
		Tag:      m.Tag,
		Team:     m.Team,
		Media:    m.Media,
		Audit:    m.Audit,
	}
	repos.InTx = func(ctx context.Context, fn func(r *repository.Repositories) error) error {
		return fn(repos)
	}
	m.Repos = repos
	return m
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return nil
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	Posts            map[string]*models.Post
	CategoriesByPost map[string][]string
	TagsByPost       map[string][]string
	Err              error
}

func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{
		Posts:            make(map[string]*models.Post),
		CategoriesByPost: make(map[string][]string),
		TagsByPost:       make(map[string][]string),
	}
}

func (m *MockPostRepository) List(ctx context.Context, filter *models.PostFilter) ([]*models.Post, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}

	var matched []*models.Post
	for _, p := range m.Posts {
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !containsFold(p.Title, filter.Search) && !containsFold(p.Content, filter.Search) {
			continue
		}
		if filter.CategoryID != "" && !contains(m.CategoriesByPost[p.ID], filter.CategoryID) {
			continue
		}
		if filter.TagID != "" && !contains(m.TagsByPost[p.ID], filter.TagID) {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func (m *MockPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	stored, ok := m.Posts[id]
	if !ok {
		return nil, nil
	}
	// Hand out a copy the way a row scan would, so callers mutating the
	// result do not write through to the stored post.
	post := *stored
	m.attachLinks(&post)
	return &post, nil
}

func (m *MockPostRepository) attachLinks(post *models.Post) {
	post.Categories = []models.Category{}
	for _, id := range m.CategoriesByPost[post.ID] {
		post.Categories = append(post.Categories, models.Category{ID: id})
	}
	post.Tags = []models.Tag{}
	for _, id := range m.TagsByPost[post.ID] {
		post.Tags = append(post.Tags, models.Tag{ID: id})
	}
}

func (m *MockPostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, p := range m.Posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post, categoryIDs, tagIDs []string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Posts[post.ID] = post
	m.CategoriesByPost[post.ID] = categoryIDs
	m.TagsByPost[post.ID] = tagIDs
	return nil
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	if m.Err != nil {
		return m.Err
	}
	m.Posts[post.ID] = post
	return nil
}

func (m *MockPostRepository) ReplaceCategories(ctx context.Context, postID string, categoryIDs []string) error {
	m.CategoriesByPost[postID] = categoryIDs
	return nil
}

func (m *MockPostRepository) ReplaceTags(ctx context.Context, postID string, tagIDs []string) error {
	m.TagsByPost[postID] = tagIDs
	return nil
}

func (m *MockPostRepository) Delete(ctx context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Posts, id)
	delete(m.CategoriesByPost, id)
	delete(m.TagsByPost, id)
	return nil
}

func (m *MockPostRepository) Count(ctx context.Context) (int, error) {
	return len(m.Posts), nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	Categories map[string]*models.Category
	Err        error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{Categories: make(map[string]*models.Category)}
}

func (m *MockCategoryRepository) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Category, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	var matched []*models.Category
	for _, c := range m.Categories {
		if filter.Search != "" && !containsFold(c.Name, filter.Search) && !containsFold(c.Description, filter.Search) {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return paginate(matched, filter.Page, filter.Limit), len(matched), nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	return m.Categories[id], m.Err
}

func (m *MockCategoryRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, c := range m.Categories {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.Categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *models.Category) error {
	if m.Err != nil {
		return m.Err
	}
	m.Categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	delete(m.Categories, id)
	return m.Err
}

func (m *MockCategoryRepository) Count(ctx context.Context) (int, error) {
	return len(m.Categories), nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	Tags map[string]*models.Tag
	Err  error
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{Tags: make(map[string]*models.Tag)}
}

func (m *MockTagRepository) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Tag, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	var matched []*models.Tag
	for _, t := range m.Tags {
		if filter.Search != "" && !containsFold(t.Name, filter.Search) && !containsFold(t.Description, filter.Search) {
			continue
		}
		matched = append(matched, t)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })
	return paginate(matched, filter.Page, filter.Limit), len(matched), nil
}

func (m *MockTagRepository) GetByID(ctx context.Context, id string) (*models.Tag, error) {
	return m.Tags[id], m.Err
}

func (m *MockTagRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	for _, t := range m.Tags {
		if t.Slug == slug && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if m.Err != nil {
		return m.Err
	}
	m.Tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *models.Tag) error {
	if m.Err != nil {
		return m.Err
	}
	m.Tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id string) error {
	delete(m.Tags, id)
	return m.Err
}

func (m *MockTagRepository) Count(ctx context.Context) (int, error) {
	return len(m.Tags), nil
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	Members  map[string]*models.TeamMember
	Links    map[string][]models.SocialLink
	Contacts map[string]*models.ContactInfo
	Err      error
}

func NewMockTeamRepository() *MockTeamRepository {
	return &MockTeamRepository{
		Members:  make(map[string]*models.TeamMember),
		Links:    make(map[string][]models.SocialLink),
		Contacts: make(map[string]*models.ContactInfo),
	}
}

func (m *MockTeamRepository) List(ctx context.Context, filter *models.TeamFilter) ([]*models.TeamMember, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	var matched []*models.TeamMember
	for _, member := range m.Members {
		if !filter.IncludeHidden && !member.IsVisible {
			continue
		}
		if filter.Search != "" &&
			!containsFold(member.Name, filter.Search) &&
			!containsFold(member.Title, filter.Search) &&
			!containsFold(member.Bio, filter.Search) &&
			!containsFold(member.Specializations, filter.Search) {
			continue
		}
		matched = append(matched, member)
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].DisplayOrder != matched[j].DisplayOrder {
			return matched[i].DisplayOrder < matched[j].DisplayOrder
		}
		return matched[i].ID < matched[j].ID
	})
	total := len(matched)
	page := paginate(matched, filter.Page, filter.Limit)
	for _, member := range page {
		m.attachLinks(member)
	}
	return page, total, nil
}

func (m *MockTeamRepository) attachLinks(member *models.TeamMember) {
	member.SocialLinks = m.Links[member.ID]
	if member.SocialLinks == nil {
		member.SocialLinks = []models.SocialLink{}
	}
	member.ContactInfo = m.Contacts[member.ID]
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id string) (*models.TeamMember, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	member, ok := m.Members[id]
	if !ok {
		return nil, nil
	}
	m.attachLinks(member)
	return member, nil
}

func (m *MockTeamRepository) NextDisplayOrder(ctx context.Context) (int, error) {
	next := 0
	for _, member := range m.Members {
		if member.DisplayOrder+1 > next {
			next = member.DisplayOrder + 1
		}
	}
	return next, nil
}

func (m *MockTeamRepository) Create(ctx context.Context, member *models.TeamMember) error {
	if m.Err != nil {
		return m.Err
	}
	m.Members[member.ID] = member
	if member.SocialLinks != nil {
		m.Links[member.ID] = member.SocialLinks
	}
	if member.ContactInfo != nil {
		m.Contacts[member.ID] = member.ContactInfo
	}
	return nil
}

func (m *MockTeamRepository) Update(ctx context.Context, member *models.TeamMember) error {
	if m.Err != nil {
		return m.Err
	}
	m.Members[member.ID] = member
	return nil
}

func (m *MockTeamRepository) ReplaceSocialLinks(ctx context.Context, memberID string, links []models.SocialLink) error {
	m.Links[memberID] = links
	return nil
}

func (m *MockTeamRepository) SetContactInfo(ctx context.Context, memberID string, info *models.ContactInfo) error {
	m.Contacts[memberID] = info
	return nil
}

func (m *MockTeamRepository) Delete(ctx context.Context, id string) error {
	delete(m.Members, id)
	delete(m.Links, id)
	delete(m.Contacts, id)
	return m.Err
}

func (m *MockTeamRepository) Count(ctx context.Context) (int, error) {
	return len(m.Members), nil
}

// MockMediaRepository is a mock implementation of MediaRepository
type MockMediaRepository struct {
	Items map[string]*models.Media
	Err   error
}

func NewMockMediaRepository() *MockMediaRepository {
	return &MockMediaRepository{Items: make(map[string]*models.Media)}
}

func (m *MockMediaRepository) List(ctx context.Context, filter *models.MediaFilter) ([]*models.Media, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	var matched []*models.Media
	for _, item := range m.Items {
		if filter.Search != "" && !containsFold(item.Name, filter.Search) {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		matched = append(matched, item)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	return paginate(matched, filter.Page, filter.Limit), len(matched), nil
}

func (m *MockMediaRepository) GetByID(ctx context.Context, id string) (*models.Media, error) {
	return m.Items[id], m.Err
}

func (m *MockMediaRepository) Create(ctx context.Context, media *models.Media) error {
	if m.Err != nil {
		return m.Err
	}
	m.Items[media.ID] = media
	return nil
}

func (m *MockMediaRepository) DeleteOwnedBy(ctx context.Context, ids []string, userID string) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	deleted := 0
	for _, id := range ids {
		if item, ok := m.Items[id]; ok && item.UserID == userID {
			delete(m.Items, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *MockMediaRepository) Count(ctx context.Context) (int, error) {
	return len(m.Items), nil
}

// MockAuditRepository is a mock implementation of AuditRepository
type MockAuditRepository struct {
	Entries   []*models.AuditLogEntry
	CreateErr error
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, entry *models.AuditLogEntry) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

func (m *MockAuditRepository) List(ctx context.Context, filter *models.AuditFilter) ([]*models.AuditLogEntry, int, error) {
	var matched []*models.AuditLogEntry
	for _, e := range m.Entries {
		if filter.Entity != "" && e.Entity != filter.Entity {
			continue
		}
		if filter.Action != "" && string(e.Action) != filter.Action {
			continue
		}
		if filter.UserID != "" && e.UserID != filter.UserID {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	return paginate(matched, filter.Page, filter.Limit), len(matched), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
	Err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.Users[id], m.Err
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}
