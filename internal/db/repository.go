package db

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/microblogd/microblog/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn inside a single database transaction. The
// Repository passed to fn is bound to that transaction, so a service's
// read-check-then-write sequence is isolated from concurrent calls.
func (r *Repository) Transaction(ctx context.Context, fn func(*Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// UserRepository provides user-related database operations
type UserRepository struct {
	*Repository
}

// NewUserRepository creates a new user repository
func NewUserRepository(repo *Repository) *UserRepository {
	return &UserRepository{Repository: repo}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByIDs retrieves multiple users by id, ordered by id
func (r *UserRepository) GetByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	var users []*models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Delete removes a user and every dependent row: follow edges in either
// direction, likes placed by the user, and the user's publications
// (each cascading their own likes and attachments). The cascade is part
// of the repository contract rather than a database-engine feature.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.Transaction(ctx, func(tx *Repository) error {
		var pubIDs []int64
		if err := tx.db.WithContext(ctx).Model(&models.Publication{}).Where("author_id = ?", id).Pluck("id", &pubIDs).Error; err != nil {
			return err
		}
		pubRepo := NewPublicationRepository(tx)
		for _, pubID := range pubIDs {
			if err := pubRepo.deleteCascade(ctx, pubID); err != nil {
				return err
			}
		}
		if err := tx.db.WithContext(ctx).Where("author_id = ? OR follower_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.db.WithContext(ctx).Where("author_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.db.WithContext(ctx).Delete(&models.User{}, id).Error
	})
}

// PublicationRepository provides tweet-related database operations
type PublicationRepository struct {
	*Repository
}

// NewPublicationRepository creates a new publication repository
func NewPublicationRepository(repo *Repository) *PublicationRepository {
	return &PublicationRepository{Repository: repo}
}

// Create creates a new publication
func (r *PublicationRepository) Create(ctx context.Context, pub *models.Publication) error {
	return r.db.WithContext(ctx).Create(pub).Error
}

// GetByID retrieves a publication by ID
func (r *PublicationRepository) GetByID(ctx context.Context, id int64) (*models.Publication, error) {
	var pub models.Publication
	if err := r.db.WithContext(ctx).First(&pub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pub, nil
}

// GetByIDAndAuthor retrieves a publication only when both id and author
// match, which is how ownership is enforced on delete.
func (r *PublicationRepository) GetByIDAndAuthor(ctx context.Context, id, authorID int64) (*models.Publication, error) {
	var pub models.Publication
	if err := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&pub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pub, nil
}

// ListByAuthors retrieves all publications by the given authors, ordered by id
func (r *PublicationRepository) ListByAuthors(ctx context.Context, authorIDs []int64) ([]*models.Publication, error) {
	var pubs []*models.Publication
	if len(authorIDs) == 0 {
		return pubs, nil
	}
	if err := r.db.WithContext(ctx).
		Where("author_id IN ?", authorIDs).
		Order("id ASC").
		Find(&pubs).Error; err != nil {
		return nil, err
	}
	return pubs, nil
}

// Delete removes a publication together with its likes and attachments.
// The cascade is an explicit repository contract.
func (r *PublicationRepository) Delete(ctx context.Context, id int64) error {
	return r.Transaction(ctx, func(tx *Repository) error {
		return NewPublicationRepository(tx).deleteCascade(ctx, id)
	})
}

// deleteCascade must run inside a transaction owned by the caller.
func (r *PublicationRepository) deleteCascade(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Where("publication_id = ?", id).Delete(&models.Like{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("publication_id = ?", id).Delete(&models.Attachment{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.Publication{}, id).Error
}

// FollowRepository provides follow-edge database operations
type FollowRepository struct {
	*Repository
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(repo *Repository) *FollowRepository {
	return &FollowRepository{Repository: repo}
}

// Create creates a new follow edge
func (r *FollowRepository) Create(ctx context.Context, follow *models.Follow) error {
	return r.db.WithContext(ctx).Create(follow).Error
}

// Get retrieves the edge "follower follows author", or nil
func (r *FollowRepository) Get(ctx context.Context, authorID, followerID int64) (*models.Follow, error) {
	var follow models.Follow
	if err := r.db.WithContext(ctx).
		Where("author_id = ? AND follower_id = ?", authorID, followerID).
		First(&follow).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

// Delete removes the edge "follower follows author"
func (r *FollowRepository) Delete(ctx context.Context, authorID, followerID int64) error {
	return r.db.WithContext(ctx).
		Where("author_id = ? AND follower_id = ?", authorID, followerID).
		Delete(&models.Follow{}).Error
}

// FindFollowersOf retrieves the edges pointing at the author, ordered
// by follower id
func (r *FollowRepository) FindFollowersOf(ctx context.Context, authorID int64) ([]*models.Follow, error) {
	var follows []*models.Follow
	if err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("follower_id ASC").
		Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

// FindFollowingOf retrieves the edges originating from the follower,
// ordered by author id
func (r *FollowRepository) FindFollowingOf(ctx context.Context, followerID int64) ([]*models.Follow, error) {
	var follows []*models.Follow
	if err := r.db.WithContext(ctx).
		Where("follower_id = ?", followerID).
		Order("author_id ASC").
		Find(&follows).Error; err != nil {
		return nil, err
	}
	return follows, nil
}

// LikeRepository provides like-related database operations
type LikeRepository struct {
	*Repository
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(repo *Repository) *LikeRepository {
	return &LikeRepository{Repository: repo}
}

// Create creates a new like
func (r *LikeRepository) Create(ctx context.Context, like *models.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

// Get retrieves the like placed by author on publication, or nil
func (r *LikeRepository) Get(ctx context.Context, publicationID, authorID int64) (*models.Like, error) {
	var like models.Like
	if err := r.db.WithContext(ctx).
		Where("publication_id = ? AND author_id = ?", publicationID, authorID).
		First(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

// Delete removes the like placed by author on publication
func (r *LikeRepository) Delete(ctx context.Context, publicationID, authorID int64) error {
	return r.db.WithContext(ctx).
		Where("publication_id = ? AND author_id = ?", publicationID, authorID).
		Delete(&models.Like{}).Error
}

// ListByPublications retrieves all likes for the given publications,
// ordered by liker id within each publication
func (r *LikeRepository) ListByPublications(ctx context.Context, publicationIDs []int64) ([]*models.Like, error) {
	var likes []*models.Like
	if len(publicationIDs) == 0 {
		return likes, nil
	}
	if err := r.db.WithContext(ctx).
		Where("publication_id IN ?", publicationIDs).
		Order("publication_id ASC, author_id ASC").
		Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// AttachmentRepository provides attachment-related database operations
type AttachmentRepository struct {
	*Repository
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(repo *Repository) *AttachmentRepository {
	return &AttachmentRepository{Repository: repo}
}

// Create creates a new attachment
func (r *AttachmentRepository) Create(ctx context.Context, att *models.Attachment) error {
	return r.db.WithContext(ctx).Create(att).Error
}

// GetByID retrieves an attachment by ID
func (r *AttachmentRepository) GetByID(ctx context.Context, id int64) (*models.Attachment, error) {
	var att models.Attachment
	if err := r.db.WithContext(ctx).First(&att, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &att, nil
}

// Attach links an attachment to a publication
func (r *AttachmentRepository) Attach(ctx context.Context, attachmentID, publicationID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Attachment{}).
		Where("id = ?", attachmentID).
		Update("publication_id", publicationID).Error
}

// ListByPublications retrieves all attachments for the given
// publications, ordered by attachment id
func (r *AttachmentRepository) ListByPublications(ctx context.Context, publicationIDs []int64) ([]*models.Attachment, error) {
	var atts []*models.Attachment
	if len(publicationIDs) == 0 {
		return atts, nil
	}
	if err := r.db.WithContext(ctx).
		Where("publication_id IN ?", publicationIDs).
		Order("id ASC").
		Find(&atts).Error; err != nil {
		return nil, err
	}
	return atts, nil
}
