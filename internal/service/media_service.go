package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/microblogd/microblog/internal/apperror"
	"github.com/microblogd/microblog/internal/db"
	"github.com/microblogd/microblog/internal/media"
	"github.com/microblogd/microblog/internal/models"
	"github.com/microblogd/microblog/pkg/logging"
	"github.com/microblogd/microblog/pkg/telemetry"
)

// MediaService receives uploaded bytes and records attachment rows.
// Upload and tweet creation are decoupled: upload first, then pass the
// returned media id to TweetService.Create.
type MediaService struct {
	repo   *db.Repository
	store  *media.Store
	logger *zap.Logger
}

// NewMediaService creates a new media service
func NewMediaService(repo *db.Repository, store *media.Store) *MediaService {
	return &MediaService{
		repo:   repo,
		store:  store,
		logger: logging.WithComponent("media-service"),
	}
}

// Upload persists the file and inserts an unattached attachment row,
// returning its id for later linking.
func (s *MediaService) Upload(ctx context.Context, filename string, data []byte) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "media.upload")
	defer span.End()

	if filename == "" {
		return 0, apperror.InvalidInput("file must have a name")
	}

	link, err := s.store.Save(filename, data)
	if err != nil {
		return 0, err
	}

	att := &models.Attachment{Link: link}
	if err := db.NewAttachmentRepository(s.repo).Create(ctx, att); err != nil {
		return 0, err
	}

	s.logger.Info("Media uploaded", zap.Int64("media_id", att.ID), zap.String("link", link))
	return att.ID, nil
}

// Get retrieves an attachment by id
func (s *MediaService) Get(ctx context.Context, id int64) (*models.Attachment, error) {
	att, err := db.NewAttachmentRepository(s.repo).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if att == nil {
		return nil, apperror.NotFound("media", id)
	}
	return att, nil
}
