package service

import (
	"context"
	"testing"
	"time"

	"pitchside_backend/internal/articles/repository"
	"pitchside_backend/internal/articles/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/logger"

	"github.com/google/uuid"
)

type fakeRepo struct {
	articles []repository.Article
	creators map[uuid.UUID]string
}

func (f *fakeRepo) Create(_ context.Context, title, text, photo string, createdBy uuid.UUID) (repository.Article, error) {
	a := repository.Article{
		ID: uuid.New(), Title: title, Text: text, Photo: photo,
		CreatedBy: createdBy, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	f.articles = append(f.articles, a)
	return a, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (repository.Article, error) {
	for _, a := range f.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return repository.Article{}, repository.ErrNotFound
}

func (f *fakeRepo) GetWithCreator(ctx context.Context, id uuid.UUID) (repository.Article, string, error) {
	a, err := f.GetByID(ctx, id)
	if err != nil {
		return repository.Article{}, "", err
	}
	return a, f.creators[a.CreatedBy], nil
}

func (f *fakeRepo) List(_ context.Context, limit, offset int) ([]repository.Article, error) {
	if offset >= len(f.articles) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.articles) {
		end = len(f.articles)
	}
	return f.articles[offset:end], nil
}

func (f *fakeRepo) Count(_ context.Context) (int, error) {
	return len(f.articles), nil
}

func (f *fakeRepo) Update(_ context.Context, id uuid.UUID, title, text, photo string) (repository.Article, error) {
	for i, a := range f.articles {
		if a.ID != id {
			continue
		}
		f.articles[i].Title = title
		f.articles[i].Text = text
		if photo != "" {
			f.articles[i].Photo = photo
		}
		return f.articles[i], nil
	}
	return repository.Article{}, repository.ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, a := range f.articles {
		if a.ID == id {
			f.articles = append(f.articles[:i], f.articles[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func newTestService(repo *fakeRepo) *Service {
	return New(repo, nil, "article-photos", logger.New("development"))
}

var validReq = transport.ArticleRequest{
	Title: "Transfer window roundup",
	Text:  "Everything that happened on deadline day.",
}

func TestCreateRecordsCaller(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	creator := uuid.New()

	article, err := svc.Create(context.Background(), creator, validReq, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if article.CreatedBy != creator.String() {
		t.Errorf("createdBy = %s, want caller id", article.CreatedBy)
	}
}

func TestUpdateOnlyCreatorMayEdit(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()
	creator := uuid.New()

	created, err := svc.Create(ctx, creator, validReq, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	id := uuid.MustParse(created.ID)

	_, err = svc.Update(ctx, uuid.New(), id, validReq)
	if apperr.GetKind(err) != apperr.KindForbidden {
		t.Fatalf("non-creator update kind = %v, want forbidden", apperr.GetKind(err))
	}

	updated, err := svc.Update(ctx, creator, id, transport.ArticleRequest{
		Title: "Transfer window roundup, revised",
		Text:  "Now with the late loan deals included.",
	})
	if err != nil {
		t.Fatalf("creator update: %v", err)
	}
	if updated.Title != "Transfer window roundup, revised" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestUpdateKeepsPhotoWhenOmitted(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo)
	ctx := context.Background()
	creator := uuid.New()

	withPhoto := validReq
	withPhoto.Photo = "articles/cover.png"
	created, err := svc.Create(ctx, creator, withPhoto, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, creator, uuid.MustParse(created.ID), validReq)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Photo != "articles/cover.png" {
		t.Errorf("photo = %q, want previous value kept", updated.Photo)
	}
}

func TestGetExpandsCreatorUsername(t *testing.T) {
	creator := uuid.New()
	repo := &fakeRepo{creators: map[uuid.UUID]string{creator: "editor"}}
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, creator, validReq, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	detail, err := svc.Get(ctx, uuid.MustParse(created.ID))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if detail.CreatedBy.Username != "editor" || detail.CreatedBy.ID != creator.String() {
		t.Errorf("createdBy = %+v", detail.CreatedBy)
	}
}

func TestDeleteUnknownArticleIsNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{})
	if err := svc.Delete(context.Background(), uuid.New()); apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("kind = %v, want not found", apperr.GetKind(err))
	}
}
