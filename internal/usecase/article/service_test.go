package article_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"nashra/internal/domain/entity"
	"nashra/internal/repository"
	artUC "nashra/internal/usecase/article"
)

// Minimal in-memory ArticleRepository. err forces every method to fail.
type stubRepo struct {
	data   map[string]*entity.Article
	nextID int
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[string]*entity.Article{}}
}

func (s *stubRepo) List(_ context.Context, filter repository.ArticleFilter) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Article
	for _, v := range s.data {
		out = append(out, v)
	}
	return out, nil
}

func (s *stubRepo) Count(_ context.Context, _ repository.ArticleFilter) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.data)), nil
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	return s.data[id], s.err
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	a.ID = testID(s.nextID)
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	s.data[a.ID] = a
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *stubRepo) IncrementViews(_ context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	a, ok := s.data[id]
	if !ok {
		return entity.ErrNotFound
	}
	a.Views++
	return nil
}

// testID produces a deterministic valid UUID per counter value.
func testID(n int) string {
	return "00000000-0000-4000-8000-00000000000" + string(rune('0'+n))
}

func validInput() entity.NewArticleInput {
	return entity.NewArticleInput{
		Title:    "Election results announced",
		Summary:  "The final tally is in.",
		Category: entity.CategoryPolitics,
		Language: entity.LanguageEnglish,
		Author:   "Lina Haddad",
	}
}

func TestService_Create_Defaults(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	before := time.Now().UTC()
	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if art.ID == "" {
		t.Error("article was not assigned an id")
	}
	if art.ReadMinutes != artUC.DefaultReadMinutes {
		t.Errorf("ReadMinutes = %d, want default %d", art.ReadMinutes, artUC.DefaultReadMinutes)
	}
	if art.Views != 0 {
		t.Errorf("Views = %d, want 0", art.Views)
	}
	if art.PublishedAt.Before(before) {
		t.Errorf("PublishedAt = %v, want current time", art.PublishedAt)
	}
	if art.UpdatedAt.Before(before) {
		t.Errorf("UpdatedAt = %v, want current time", art.UpdatedAt)
	}
}

func TestService_Create_ExplicitValues(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	pub := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	in := validInput()
	in.ReadMinutes = 12
	in.PublishedAt = &pub
	in.IsBreaking = true

	art, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if art.ReadMinutes != 12 {
		t.Errorf("ReadMinutes = %d, want 12", art.ReadMinutes)
	}
	if !art.PublishedAt.Equal(pub) {
		t.Errorf("PublishedAt = %v, want %v", art.PublishedAt, pub)
	}
	if !art.IsBreaking {
		t.Error("IsBreaking = false, want true")
	}
}

func TestService_Create_Invalid(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	in := validInput()
	in.Title = ""
	in.Category = "weather"

	_, err := svc.Create(context.Background(), in)
	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Create err=%v, want ValidationErrors", err)
	}
	if len(verrs) != 2 {
		t.Errorf("got %d validation errors, want 2: %v", len(verrs), verrs)
	}
}

func TestService_Get(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	got, err := svc.Get(context.Background(), art.ID)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.ID != art.ID {
		t.Errorf("Get returned id %q, want %q", got.ID, art.ID)
	}
}

func TestService_Get_InvalidID(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	_, err := svc.Get(context.Background(), "not-a-uuid")
	if !errors.Is(err, artUC.ErrInvalidArticleID) {
		t.Errorf("Get err=%v, want ErrInvalidArticleID", err)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	_, err := svc.Get(context.Background(), "7d8f9e0a-1b2c-43d4-95e6-f70819203a4b")
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Errorf("Get err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_Update_MergesPresentFields(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	origSummary := art.Summary
	origUpdated := art.UpdatedAt

	time.Sleep(5 * time.Millisecond)

	newTitle := "Updated headline"
	breaking := true
	got, err := svc.Update(context.Background(), art.ID, entity.UpdateArticleInput{
		Title:      &newTitle,
		IsBreaking: &breaking,
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}

	if got.Title != newTitle {
		t.Errorf("Title = %q, want %q", got.Title, newTitle)
	}
	if got.Summary != origSummary {
		t.Errorf("Summary changed to %q, want untouched", got.Summary)
	}
	if !got.IsBreaking {
		t.Error("IsBreaking = false, want true")
	}
	if !got.UpdatedAt.After(origUpdated) {
		t.Errorf("UpdatedAt = %v, want later than %v", got.UpdatedAt, origUpdated)
	}
}

func TestService_Update_EmptyInputStillStamps(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	origUpdated := art.UpdatedAt

	time.Sleep(5 * time.Millisecond)

	got, err := svc.Update(context.Background(), art.ID, entity.UpdateArticleInput{})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if !got.UpdatedAt.After(origUpdated) {
		t.Error("empty update did not reset UpdatedAt")
	}
}

func TestService_Update_NotFound(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	title := "x"
	_, err := svc.Update(context.Background(), "7d8f9e0a-1b2c-43d4-95e6-f70819203a4b",
		entity.UpdateArticleInput{Title: &title})
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Errorf("Update err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_Update_Invalid(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	empty := ""
	_, err = svc.Update(context.Background(), art.ID, entity.UpdateArticleInput{Title: &empty})
	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("Update err=%v, want ValidationErrors", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if err := svc.Delete(context.Background(), art.ID); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := svc.Delete(context.Background(), art.ID); !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Errorf("second Delete err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_IncrementViews(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	art, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	if err := svc.IncrementViews(context.Background(), art.ID); err != nil {
		t.Fatalf("IncrementViews err=%v", err)
	}
	if repo.data[art.ID].Views != 1 {
		t.Errorf("Views = %d, want 1", repo.data[art.ID].Views)
	}
}

func TestService_IncrementViews_NotFound(t *testing.T) {
	svc := &artUC.Service{Repo: newStub()}

	err := svc.IncrementViews(context.Background(), "7d8f9e0a-1b2c-43d4-95e6-f70819203a4b")
	if !errors.Is(err, artUC.ErrArticleNotFound) {
		t.Errorf("IncrementViews err=%v, want ErrArticleNotFound", err)
	}
}

func TestService_List(t *testing.T) {
	repo := newStub()
	svc := &artUC.Service{Repo: repo}

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), validInput()); err != nil {
			t.Fatalf("Create err=%v", err)
		}
	}

	res, err := svc.List(context.Background(), artUC.ListQuery{Limit: 20})
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if len(res.Data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(res.Data))
	}
	if res.Pagination.Total != 3 {
		t.Errorf("Total = %d, want 3", res.Pagination.Total)
	}
	if res.Pagination.Limit != 20 {
		t.Errorf("Limit = %d, want 20", res.Pagination.Limit)
	}
}

func TestService_List_RepoError(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("boom")
	svc := &artUC.Service{Repo: repo}

	if _, err := svc.List(context.Background(), artUC.ListQuery{}); err == nil {
		t.Fatal("List err=nil, want error")
	}
}
