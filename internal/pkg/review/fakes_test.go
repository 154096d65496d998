package review

import (
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/JulianBerardinelli/ballershub/app/models"
	"github.com/JulianBerardinelli/ballershub/app/repository"
)

// fakeStore is a single in-memory backing store shared by all fake
// repositories, so cross-repository effects of one operation are visible in
// the assertions.
type fakeStore struct {
	users    map[uint]*models.User
	apps     map[uint]*models.PlayerApplication
	items    map[uint]*models.CareerItemProposal
	teams    map[uint]*models.Team
	profiles map[uint]*models.PlayerProfile
	subs     map[uint]*models.Subscription
	audits   []models.AuditLog
	nextID   uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:    make(map[uint]*models.User),
		apps:     make(map[uint]*models.PlayerApplication),
		items:    make(map[uint]*models.CareerItemProposal),
		teams:    make(map[uint]*models.Team),
		profiles: make(map[uint]*models.PlayerProfile),
		subs:     make(map[uint]*models.Subscription),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) repositories() *repository.Repositories {
	return &repository.Repositories{
		User:          &fakeUserRepo{s},
		Application:   &fakeApplicationRepo{s},
		CareerItem:    &fakeCareerRepo{s},
		Team:          &fakeTeamRepo{s},
		PlayerProfile: &fakeProfileRepo{s},
		Subscription:  &fakeSubscriptionRepo{s},
		AuditLog:      &fakeAuditRepo{s},
	}
}

func (s *fakeStore) seedAdmin() uint {
	id := s.id()
	s.users[id] = &models.User{ID: id, Name: "Reviewer", Email: "admin@example.com", Role: models.ROLE_ADMIN}
	return id
}

func (s *fakeStore) seedUser() uint {
	id := s.id()
	s.users[id] = &models.User{ID: id, Name: "Someone", Email: "user@example.com", Role: models.ROLE_USER}
	return id
}

func (s *fakeStore) seedApplication(userID uint, mutate ...func(*models.PlayerApplication)) uint {
	id := s.id()
	app := &models.PlayerApplication{
		ID:            id,
		UUID:          "uuid-test",
		UserID:        userID,
		PlanRequested: models.PlanFree,
		Status:        models.ApplicationStatusPending,
	}
	for _, fn := range mutate {
		fn(app)
	}
	s.apps[id] = app
	return id
}

func (s *fakeStore) seedCareerItem(applicationID, userID uint, mutate ...func(*models.CareerItemProposal)) uint {
	id := s.id()
	item := &models.CareerItemProposal{
		ID:              id,
		ApplicationID:   applicationID,
		Status:          models.CareerItemStatusPending,
		CreatedByUserID: userID,
	}
	for _, fn := range mutate {
		fn(item)
	}
	s.items[id] = item
	return id
}

func (s *fakeStore) seedTeam(name, slug, status string) uint {
	id := s.id()
	s.teams[id] = &models.Team{
		ID:         id,
		Slug:       slug,
		Name:       name,
		Kind:       models.TeamKindClub,
		Visibility: models.VisibilityPublic,
		Status:     status,
		CrestKey:   models.TeamDefaultCrest,
	}
	return id
}

// newTestService wires a Service directly onto the fakes. The transaction
// hook is a passthrough; none of these tests depend on rollback.
func newTestService(store *fakeStore) *Service {
	repos := store.repositories()
	return &Service{
		repos: repos,
		txn: func(fn func(repos *repository.Repositories) error) error {
			return fn(repos)
		},
		now: func() time.Time {
			return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

type fakeUserRepo struct{ s *fakeStore }

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.s.id()
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.s.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(offset, limit int) ([]models.User, error) { return nil, nil }

func (r *fakeUserRepo) Count() (int64, error) { return int64(len(r.s.users)), nil }

type fakeApplicationRepo struct{ s *fakeStore }

func (r *fakeApplicationRepo) Create(app *models.PlayerApplication) error {
	app.ID = r.s.id()
	r.s.apps[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) GetByID(id uint) (*models.PlayerApplication, error) {
	a, ok := r.s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeApplicationRepo) GetByUUID(uuid string) (*models.PlayerApplication, error) {
	for _, a := range r.s.apps {
		if a.UUID == uuid {
			copied := *a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeApplicationRepo) FindPendingByUser(userID uint) (*models.PlayerApplication, error) {
	for _, a := range r.s.apps {
		if a.UserID == userID && a.Status == models.ApplicationStatusPending {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeApplicationRepo) Update(app *models.PlayerApplication) error {
	copied := *app
	r.s.apps[app.ID] = &copied
	return nil
}

func (r *fakeApplicationRepo) MarkReviewed(id uint, status string, reviewerID uint, at time.Time) (bool, error) {
	a, ok := r.s.apps[id]
	if !ok || a.Status != models.ApplicationStatusPending {
		return false, nil
	}
	a.Status = status
	a.ReviewedByUserID = &reviewerID
	a.ReviewedAt = &at
	return true, nil
}

func (r *fakeApplicationRepo) ListByStatus(status string, offset, limit int) ([]models.PlayerApplication, error) {
	var out []models.PlayerApplication
	for _, a := range r.s.apps {
		if a.Status == status {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeApplicationRepo) CountByStatus(status string) (int64, error) {
	list, _ := r.ListByStatus(status, 0, 0)
	return int64(len(list)), nil
}

type fakeCareerRepo struct{ s *fakeStore }

func (r *fakeCareerRepo) GetByID(id uint) (*models.CareerItemProposal, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeCareerRepo) ListByApplication(applicationID uint) ([]models.CareerItemProposal, error) {
	var out []models.CareerItemProposal
	for _, item := range r.s.items {
		if item.ApplicationID == applicationID {
			out = append(out, *item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCareerRepo) ListPendingByApplication(applicationID uint) ([]models.CareerItemProposal, error) {
	all, _ := r.ListByApplication(applicationID)
	out := all[:0]
	for _, item := range all {
		if item.Status == models.CareerItemStatusPending {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeCareerRepo) ReplaceForApplication(applicationID uint, items []models.CareerItemProposal) error {
	for id, item := range r.s.items {
		if item.ApplicationID == applicationID {
			delete(r.s.items, id)
		}
	}
	for i := range items {
		item := items[i]
		item.ID = r.s.id()
		r.s.items[item.ID] = &item
	}
	return nil
}

func (r *fakeCareerRepo) Update(item *models.CareerItemProposal) error {
	if _, ok := r.s.items[item.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *item
	r.s.items[item.ID] = &copied
	return nil
}

func (r *fakeCareerRepo) MarkStatus(id uint, status string, reviewerID uint, at time.Time) error {
	item, ok := r.s.items[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	item.Status = status
	item.ReviewedByUserID = &reviewerID
	item.ReviewedAt = &at
	return nil
}

type fakeTeamRepo struct{ s *fakeStore }

func (r *fakeTeamRepo) Create(team *models.Team) error {
	team.ID = r.s.id()
	copied := *team
	r.s.teams[team.ID] = &copied
	return nil
}

func (r *fakeTeamRepo) GetByID(id uint) (*models.Team, error) {
	t, ok := r.s.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTeamRepo) GetBySlug(slug string) (*models.Team, error) {
	for _, t := range r.s.teams {
		if t.Slug == slug {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeamRepo) FindByNameFold(name string) ([]models.Team, error) {
	var out []models.Team
	for _, t := range r.s.teams {
		if strings.EqualFold(t.Name, name) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTeamRepo) ListSlugsWithPrefix(prefix string) ([]string, error) {
	var out []string
	for _, t := range r.s.teams {
		if strings.HasPrefix(t.Slug, prefix) {
			out = append(out, t.Slug)
		}
	}
	return out, nil
}

func (r *fakeTeamRepo) Update(team *models.Team) error {
	if _, ok := r.s.teams[team.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *team
	r.s.teams[team.ID] = &copied
	return nil
}

func (r *fakeTeamRepo) MarkStatus(id uint, status string, reviewerID uint, at time.Time) error {
	t, ok := r.s.teams[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	t.Status = status
	t.ReviewedByUserID = &reviewerID
	t.ReviewedAt = &at
	return nil
}

func (r *fakeTeamRepo) SearchApproved(query string, limit int) ([]models.Team, error) {
	var out []models.Team
	for _, t := range r.s.teams {
		if t.Status == models.TeamStatusApproved && t.Visibility == models.VisibilityPublic &&
			strings.Contains(strings.ToLower(t.Name), strings.ToLower(query)) {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeProfileRepo struct{ s *fakeStore }

func (r *fakeProfileRepo) Create(profile *models.PlayerProfile) error {
	profile.ID = r.s.id()
	copied := *profile
	r.s.profiles[profile.ID] = &copied
	return nil
}

func (r *fakeProfileRepo) GetByID(id uint) (*models.PlayerProfile, error) {
	p, ok := r.s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) GetBySlug(slug string) (*models.PlayerProfile, error) {
	for _, p := range r.s.profiles {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) ExistsForApplication(applicationID uint) (bool, error) {
	for _, p := range r.s.profiles {
		if p.ApplicationID == applicationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfileRepo) ListSlugsWithPrefix(prefix string) ([]string, error) {
	var out []string
	for _, p := range r.s.profiles {
		if strings.HasPrefix(p.Slug, prefix) {
			out = append(out, p.Slug)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) Update(profile *models.PlayerProfile) error {
	copied := *profile
	r.s.profiles[profile.ID] = &copied
	return nil
}

type fakeSubscriptionRepo struct{ s *fakeStore }

func (r *fakeSubscriptionRepo) Upsert(sub *models.Subscription) error {
	if existing, ok := r.s.subs[sub.UserID]; ok {
		existing.Plan = sub.Plan
		existing.Status = sub.Status
		existing.Limits = sub.Limits
		return nil
	}
	sub.ID = r.s.id()
	copied := *sub
	r.s.subs[sub.UserID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) GetByUserID(userID uint) (*models.Subscription, error) {
	sub, ok := r.s.subs[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *sub
	return &copied, nil
}

type fakeAuditRepo struct{ s *fakeStore }

func (r *fakeAuditRepo) Append(entry *models.AuditLog) error {
	entry.ID = r.s.id()
	r.s.audits = append(r.s.audits, *entry)
	return nil
}

func (r *fakeAuditRepo) ListBySubject(subjectTable string, subjectID uint, limit int) ([]models.AuditLog, error) {
	var out []models.AuditLog
	for _, e := range r.s.audits {
		if e.SubjectTable == subjectTable && e.SubjectID == subjectID {
			out = append(out, e)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
