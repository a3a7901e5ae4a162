package service

import (
	"context"
	"errors"
	"mime/multipart"

	"pitchside_backend/internal/adapters/storage"
	"pitchside_backend/internal/articles/repository"
	"pitchside_backend/internal/articles/transport"
	"pitchside_backend/platform/apperr"
	"pitchside_backend/platform/logger"

	"github.com/google/uuid"
)

const (
	msgArticleNotFound = "Article not found"
	msgNotCreator      = "Access denied. Only the creator can update this article."

	photoFolder = "articles"
)

// Repository is the persistence surface the article service needs.
type Repository interface {
	Create(ctx context.Context, title, text, photo string, createdBy uuid.UUID) (repository.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (repository.Article, error)
	GetWithCreator(ctx context.Context, id uuid.UUID) (repository.Article, string, error)
	List(ctx context.Context, limit, offset int) ([]repository.Article, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id uuid.UUID, title, text, photo string) (repository.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo    Repository
	storage storage.StorageService
	bucket  string
	log     *logger.Logger
}

func New(repo Repository, store storage.StorageService, bucket string, log *logger.Logger) *Service {
	return &Service{repo: repo, storage: store, bucket: bucket, log: log}
}

// Create stores the article with the caller as immutable creator. An
// uploaded photo file wins over the photo form field; the stored object key
// becomes the article's photo reference.
func (s *Service) Create(ctx context.Context, creatorID uuid.UUID, req transport.ArticleRequest, file *multipart.FileHeader) (transport.ArticleResponse, error) {
	photo := req.Photo
	if file != nil {
		key, err := s.uploadPhoto(ctx, file)
		if err != nil {
			return transport.ArticleResponse{}, err
		}
		photo = key
	}

	article, err := s.repo.Create(ctx, req.Title, req.Text, photo, creatorID)
	if err != nil {
		s.log.DatabaseError("articles.Create", err)
		return transport.ArticleResponse{}, apperr.Wrap(apperr.KindInternal, "Error creating article", err)
	}
	return toResponse(article), nil
}

func (s *Service) List(ctx context.Context, page, limit int) (transport.ArticleListResponse, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.DatabaseError("articles.List", err)
		return transport.ArticleListResponse{}, apperr.Wrap(apperr.KindInternal, "Error fetching articles", err)
	}

	articles, err := s.repo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		s.log.DatabaseError("articles.List", err)
		return transport.ArticleListResponse{}, apperr.Wrap(apperr.KindInternal, "Error fetching articles", err)
	}

	responses := make([]transport.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		responses = append(responses, toResponse(a))
	}

	return transport.ArticleListResponse{
		Success:     true,
		Articles:    responses,
		TotalPages:  (total + limit - 1) / limit,
		CurrentPage: page,
	}, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (transport.ArticleDetailResponse, error) {
	article, username, err := s.repo.GetWithCreator(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.ArticleDetailResponse{}, apperr.NotFound(msgArticleNotFound)
		}
		return transport.ArticleDetailResponse{}, apperr.Wrap(apperr.KindInternal, "Error fetching the article", err)
	}

	return transport.ArticleDetailResponse{
		ID:    article.ID.String(),
		Title: article.Title,
		Text:  article.Text,
		Photo: article.Photo,
		CreatedBy: transport.Creator{
			ID:       article.CreatedBy.String(),
			Username: username,
		},
		CreatedAt: article.CreatedAt,
		UpdatedAt: article.UpdatedAt,
	}, nil
}

// Update re-validates the whole payload and requires the caller to be the
// creator; admins get no special pass here.
func (s *Service) Update(ctx context.Context, callerID, id uuid.UUID, req transport.ArticleRequest) (transport.ArticleResponse, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.ArticleResponse{}, apperr.NotFound(msgArticleNotFound)
		}
		return transport.ArticleResponse{}, apperr.Wrap(apperr.KindInternal, "Error updating article", err)
	}

	if article.CreatedBy != callerID {
		return transport.ArticleResponse{}, apperr.Forbidden(msgNotCreator)
	}

	updated, err := s.repo.Update(ctx, id, req.Title, req.Text, req.Photo)
	if err != nil {
		s.log.DatabaseError("articles.Update", err)
		return transport.ArticleResponse{}, apperr.Wrap(apperr.KindInternal, "Error updating article", err)
	}
	return toResponse(updated), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(msgArticleNotFound)
		}
		s.log.DatabaseError("articles.Delete", err)
		return apperr.Wrap(apperr.KindInternal, "Error deleting article", err)
	}
	return nil
}

func (s *Service) uploadPhoto(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if s.storage == nil {
		return "", apperr.Internal("photo storage is not configured")
	}

	src, err := file.Open()
	if err != nil {
		return "", apperr.Wrap(apperr.KindBadRequest, "could not read uploaded photo", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	key, err := s.storage.UploadFile(ctx, s.bucket, photoFolder, file.Filename, contentType, src, file.Size)
	if err != nil {
		return "", apperr.Wrap(apperr.KindBadRequest, err.Error(), err)
	}
	return key, nil
}

func toResponse(a repository.Article) transport.ArticleResponse {
	return transport.ArticleResponse{
		ID:        a.ID.String(),
		Title:     a.Title,
		Text:      a.Text,
		Photo:     a.Photo,
		CreatedBy: a.CreatedBy.String(),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
