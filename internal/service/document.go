package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/docsim/backend/internal/cache"
	"github.com/docsim/backend/internal/db"
	"github.com/docsim/backend/internal/model"
	"github.com/docsim/backend/internal/nlp"
)

type DocumentRepo interface {
	CreateDocument(ctx context.Context, title, content, description string, userID *int64) (*model.Document, error)
	GetDocumentByID(ctx context.Context, id int64) (*model.Document, error)
	GetDocumentByTitle(ctx context.Context, title string) (*model.Document, error)
	GetAllDocuments(ctx context.Context) ([]model.Document, error)
	GetDocumentsPaginated(ctx context.Context, p model.Pagination) ([]model.Document, int64, error)
	UpdateDocument(ctx context.Context, id int64, update model.DocumentUpdateRequest) (*model.Document, error)
	DeleteDocument(ctx context.Context, id int64) (*model.Document, error)
}

// ListingCache is the read-through cache in front of the full listing query.
type ListingCache interface {
	Put(ctx context.Context, key, value string) error
	Exists(ctx context.Context, key string) (bool, error)
	Get(ctx context.Context, key string) (string, error)
}

type DocumentService struct {
	repo       DocumentRepo
	cache      ListingCache
	similarity *nlp.SimilarityCalculator
	log        zerolog.Logger
}

func NewDocumentService(repo DocumentRepo, listingCache ListingCache, similarity *nlp.SimilarityCalculator, log zerolog.Logger) *DocumentService {
	return &DocumentService{
		repo:       repo,
		cache:      listingCache,
		similarity: similarity,
		log:        log,
	}
}

// GetAll serves the full listing cache-aside: a hit returns the cached JSON
// verbatim, a miss queries the store, serializes, and populates the cache.
// Writes never purge the entry; staleness is bounded by the cache TTL.
func (s *DocumentService) GetAll(ctx context.Context) (string, error) {
	hit, err := s.cache.Exists(ctx, cache.AllDocsKey)
	if err != nil {
		return "", err
	}

	if hit {
		cached, err := s.cache.Get(ctx, cache.AllDocsKey)
		if err == nil {
			s.log.Debug().Str("key", cache.AllDocsKey).Msg("listing served from cache")
			return cached, nil
		}
		if err != cache.ErrCacheMiss {
			return "", err
		}
		// Expired between Exists and Get; fall through to the store.
	}

	docs, err := s.repo.GetAllDocuments(ctx)
	if err != nil {
		return "", err
	}

	items := make([]model.DocumentListItem, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].ToListItem())
	}

	serialized, err := json.Marshal(items)
	if err != nil {
		return "", err
	}

	if err := s.cache.Put(ctx, cache.AllDocsKey, string(serialized)); err != nil {
		return "", err
	}

	s.log.Debug().Str("key", cache.AllDocsKey).Int("count", len(items)).Msg("listing cache populated")
	return string(serialized), nil
}

func (s *DocumentService) GetAllPaginated(ctx context.Context, p model.Pagination) (*model.DocumentPageResponse, error) {
	docs, total, err := s.repo.GetDocumentsPaginated(ctx, p)
	if err != nil {
		return nil, err
	}

	items := make([]model.DocumentListItem, 0, len(docs))
	for i := range docs {
		items = append(items, docs[i].ToListItem())
	}

	return &model.DocumentPageResponse{
		Documents: items,
		Total:     total,
		Page:      p.Page,
		PerPage:   p.PerPage,
	}, nil
}

func (s *DocumentService) GetByID(ctx context.Context, id int64) (*model.Document, error) {
	doc, err := s.repo.GetDocumentByID(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) GetByTitle(ctx context.Context, title string) (*model.Document, error) {
	doc, err := s.repo.GetDocumentByTitle(ctx, title)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) Create(ctx context.Context, req model.DocumentCreateRequest, userID *int64) (*model.Document, error) {
	return s.repo.CreateDocument(ctx, req.Title, req.Content, req.Description, userID)
}

func (s *DocumentService) Update(ctx context.Context, id int64, req model.DocumentUpdateRequest) (*model.Document, error) {
	doc, err := s.repo.UpdateDocument(ctx, id, req)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Delete removes a document and returns a confirmation message naming it.
func (s *DocumentService) Delete(ctx context.Context, id int64) (string, error) {
	doc, err := s.repo.DeleteDocument(ctx, id)
	if err != nil {
		if db.IsNoRows(err) {
			return "", ErrDocumentNotFound
		}
		return "", err
	}
	return fmt.Sprintf("Document [id: %d, title: %s] deleted successfully", doc.ID, doc.Title), nil
}

// Compare scores the lexical similarity of two documents' content.
func (s *DocumentService) Compare(ctx context.Context, firstID, secondID int64) (*model.SimilarityResponse, error) {
	first, err := s.GetByID(ctx, firstID)
	if err != nil {
		return nil, err
	}

	second, err := s.GetByID(ctx, secondID)
	if err != nil {
		return nil, err
	}

	return &model.SimilarityResponse{
		FirstID:    first.ID,
		SecondID:   second.ID,
		Similarity: s.similarity.Similarity(first.Content, second.Content),
	}, nil
}
