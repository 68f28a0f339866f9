package mocks

import (
	"context"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/models"
	"github.com/carewell-health/cms-api/internal/service"
)

// MockPostService is a mock implementation of PostService
type MockPostService struct {
	Items      []*models.Post
	ByID       map[string]*models.Post
	Err        error
	LastFilter *models.PostFilter
	LastActor  *auth.Identity
	LastInput  *models.PostInput
	LastUpdate *models.PostUpdateInput
	DeletedIDs []string
}

func NewMockPostService() *MockPostService {
	return &MockPostService{ByID: make(map[string]*models.Post)}
}

func (m *MockPostService) List(ctx context.Context, filter *models.PostFilter) ([]*models.Post, *models.ListMeta, error) {
	m.LastFilter = filter
	if m.Err != nil {
		return nil, nil, m.Err
	}
	items := m.Items
	if items == nil {
		items = []*models.Post{}
	}
	return items, models.NewListMeta(len(m.Items), filter.Page, filter.Limit), nil
}

func (m *MockPostService) Get(ctx context.Context, id string) (*models.Post, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	post, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return post, nil
}

func (m *MockPostService) Create(ctx context.Context, actor *auth.Identity, in *models.PostInput) (*models.Post, error) {
	m.LastActor = actor
	m.LastInput = in
	if m.Err != nil {
		return nil, m.Err
	}
	post := &models.Post{
		ID:      "post-created",
		Title:   in.Title,
		Slug:    in.Slug,
		Content: in.Content,
		Status:  models.PostStatus(in.Status),
	}
	m.ByID[post.ID] = post
	return post, nil
}

func (m *MockPostService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.PostUpdateInput) (*models.Post, error) {
	m.LastActor = actor
	m.LastUpdate = in
	if m.Err != nil {
		return nil, m.Err
	}
	post, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return post, nil
}

func (m *MockPostService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	m.LastActor = actor
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.ByID[id]; !ok {
		return service.ErrNotFound
	}
	m.DeletedIDs = append(m.DeletedIDs, id)
	delete(m.ByID, id)
	return nil
}

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	Items      []*models.Category
	ByID       map[string]*models.Category
	Err        error
	LastFilter *models.TaxonomyFilter
	LastActor  *auth.Identity
	LastInput  *models.TaxonomyInput
}

func NewMockCategoryService() *MockCategoryService {
	return &MockCategoryService{ByID: make(map[string]*models.Category)}
}

func (m *MockCategoryService) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Category, *models.ListMeta, error) {
	m.LastFilter = filter
	if m.Err != nil {
		return nil, nil, m.Err
	}
	items := m.Items
	if items == nil {
		items = []*models.Category{}
	}
	return items, models.NewListMeta(len(m.Items), filter.Page, filter.Limit), nil
}

func (m *MockCategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	category, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return category, nil
}

func (m *MockCategoryService) Create(ctx context.Context, actor *auth.Identity, in *models.TaxonomyInput) (*models.Category, error) {
	m.LastActor = actor
	m.LastInput = in
	if m.Err != nil {
		return nil, m.Err
	}
	category := &models.Category{ID: "category-created", Name: in.Name, Slug: in.Slug}
	m.ByID[category.ID] = category
	return category, nil
}

func (m *MockCategoryService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.TaxonomyInput) (*models.Category, error) {
	m.LastActor = actor
	m.LastInput = in
	if m.Err != nil {
		return nil, m.Err
	}
	category, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return category, nil
}

func (m *MockCategoryService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	m.LastActor = actor
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.ByID[id]; !ok {
		return service.ErrNotFound
	}
	delete(m.ByID, id)
	return nil
}

// MockTagService is a mock implementation of TagService
type MockTagService struct {
	Items     []*models.Tag
	ByID      map[string]*models.Tag
	Err       error
	LastActor *auth.Identity
}

func NewMockTagService() *MockTagService {
	return &MockTagService{ByID: make(map[string]*models.Tag)}
}

func (m *MockTagService) List(ctx context.Context, filter *models.TaxonomyFilter) ([]*models.Tag, *models.ListMeta, error) {
	if m.Err != nil {
		return nil, nil, m.Err
	}
	items := m.Items
	if items == nil {
		items = []*models.Tag{}
	}
	return items, models.NewListMeta(len(m.Items), filter.Page, filter.Limit), nil
}

func (m *MockTagService) Get(ctx context.Context, id string) (*models.Tag, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	tag, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return tag, nil
}

func (m *MockTagService) Create(ctx context.Context, actor *auth.Identity, in *models.TaxonomyInput) (*models.Tag, error) {
	m.LastActor = actor
	if m.Err != nil {
		return nil, m.Err
	}
	tag := &models.Tag{ID: "tag-created", Name: in.Name, Slug: in.Slug}
	m.ByID[tag.ID] = tag
	return tag, nil
}

func (m *MockTagService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.TaxonomyInput) (*models.Tag, error) {
	m.LastActor = actor
	if m.Err != nil {
		return nil, m.Err
	}
	tag, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return tag, nil
}

func (m *MockTagService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	m.LastActor = actor
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.ByID[id]; !ok {
		return service.ErrNotFound
	}
	delete(m.ByID, id)
	return nil
}

// MockTeamService is a mock implementation of TeamService
type MockTeamService struct {
	Items      []*models.TeamMember
	ByID       map[string]*models.TeamMember
	Err        error
	LastFilter *models.TeamFilter
	LastActor  *auth.Identity
	LastInput  *models.TeamMemberInput
}

func NewMockTeamService() *MockTeamService {
	return &MockTeamService{ByID: make(map[string]*models.TeamMember)}
}

func (m *MockTeamService) List(ctx context.Context, filter *models.TeamFilter) ([]*models.TeamMember, *models.ListMeta, error) {
	m.LastFilter = filter
	if m.Err != nil {
		return nil, nil, m.Err
	}
	items := []*models.TeamMember{}
	for _, member := range m.Items {
		if !filter.IncludeHidden && !member.IsVisible {
			continue
		}
		items = append(items, member)
	}
	return items, models.NewListMeta(len(items), filter.Page, filter.Limit), nil
}

func (m *MockTeamService) Get(ctx context.Context, id string) (*models.TeamMember, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	member, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return member, nil
}

func (m *MockTeamService) Create(ctx context.Context, actor *auth.Identity, in *models.TeamMemberInput) (*models.TeamMember, error) {
	m.LastActor = actor
	m.LastInput = in
	if m.Err != nil {
		return nil, m.Err
	}
	member := &models.TeamMember{ID: "member-created", Name: in.Name, Title: in.Title, Bio: in.Bio}
	m.ByID[member.ID] = member
	return member, nil
}

func (m *MockTeamService) Update(ctx context.Context, actor *auth.Identity, id string, in *models.TeamMemberUpdateInput) (*models.TeamMember, error) {
	m.LastActor = actor
	if m.Err != nil {
		return nil, m.Err
	}
	member, ok := m.ByID[id]
	if !ok {
		return nil, service.ErrNotFound
	}
	return member, nil
}

func (m *MockTeamService) Delete(ctx context.Context, actor *auth.Identity, id string) error {
	m.LastActor = actor
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.ByID[id]; !ok {
		return service.ErrNotFound
	}
	delete(m.ByID, id)
	return nil
}

// MockMediaService is a mock implementation of MediaService
type MockMediaService struct {
	Items       []*models.Media
	Err         error
	LastFilter  *models.MediaFilter
	LastActor   *auth.Identity
	LastInput   *models.MediaInput
	LastIDs     []string
	DeleteCount int
}

func NewMockMediaService() *MockMediaService {
	return &MockMediaService{}
}

func (m *MockMediaService) List(ctx context.Context, actor *auth.Identity, filter *models.MediaFilter) ([]*models.Media, *models.ListMeta, error) {
	m.LastActor = actor
	m.LastFilter = filter
	if actor == nil {
		return nil, nil, service.ErrUnauthenticated
	}
	if m.Err != nil {
		return nil, nil, m.Err
	}
	items := m.Items
	if items == nil {
		items = []*models.Media{}
	}
	return items, models.NewListMeta(len(m.Items), filter.Page, filter.Limit), nil
}

func (m *MockMediaService) Create(ctx context.Context, actor *auth.Identity, in *models.MediaInput) (*models.Media, error) {
	m.LastActor = actor
	m.LastInput = in
	if m.Err != nil {
		return nil, m.Err
	}
	return &models.Media{ID: "media-created", Name: in.Name, URL: in.URL, Type: in.Type, Size: in.Size}, nil
}

func (m *MockMediaService) BulkDelete(ctx context.Context, actor *auth.Identity, ids []string) (int, error) {
	m.LastActor = actor
	m.LastIDs = ids
	if m.Err != nil {
		return 0, m.Err
	}
	return m.DeleteCount, nil
}

// MockAuditService is a mock implementation of AuditService
type MockAuditService struct {
	Entries   []*models.AuditLogEntry
	Err       error
	LastActor *auth.Identity
}

func NewMockAuditService() *MockAuditService {
	return &MockAuditService{}
}

func (m *MockAuditService) List(ctx context.Context, actor *auth.Identity, filter *models.AuditFilter) ([]*models.AuditLogEntry, *models.ListMeta, error) {
	m.LastActor = actor
	if actor == nil {
		return nil, nil, service.ErrUnauthenticated
	}
	if actor.Role != models.RoleAdmin {
		return nil, nil, service.ErrForbidden
	}
	if m.Err != nil {
		return nil, nil, m.Err
	}
	entries := m.Entries
	if entries == nil {
		entries = []*models.AuditLogEntry{}
	}
	return entries, models.NewListMeta(len(m.Entries), filter.Page, filter.Limit), nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	CountsByName map[string]int
	Err          error
}

func NewMockStatsService() *MockStatsService {
	return &MockStatsService{CountsByName: make(map[string]int)}
}

func (m *MockStatsService) Counts(ctx context.Context) (map[string]int, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.CountsByName, nil
}
