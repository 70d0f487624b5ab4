package services

import (
	"bytes"
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/resumatch/backend/internal/cvparse"
	"github.com/resumatch/backend/internal/models"
	"github.com/resumatch/backend/internal/pdftext"
	mongorepo "github.com/resumatch/backend/internal/repositories/mongo"
	"github.com/resumatch/backend/internal/storage"
	"github.com/resumatch/backend/internal/utils"
)

// CVService runs the ingestion pipeline: PDF bytes -> text -> structured
// extraction -> profile upsert, plus profile read/delete.
type CVService interface {
	Upload(ctx context.Context, userID string, data []byte) (*models.Profile, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

type cvService struct {
	profiles mongorepo.ProfileRepository
	parser   *cvparse.Parser
	sink     storage.BlobSink
	log      *logrus.Logger
}

func NewCVService(profiles mongorepo.ProfileRepository, parser *cvparse.Parser, sink storage.BlobSink, log *logrus.Logger) CVService {
	return &cvService{profiles: profiles, parser: parser, sink: sink, log: log}
}

func (s *cvService) Upload(ctx context.Context, userID string, data []byte) (*models.Profile, error) {
	const op = "CVService.Upload"

	uid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	text, err := pdftext.Extract(data)
	if err != nil {
		return nil, utils.E(utils.CodeFileUpload, op, "Could not read PDF", err)
	}

	// Extraction failures never surface; the fallback always produces a
	// well-formed result.
	parsed := s.parser.Parse(ctx, text)

	// Remember the previous stored file so it can be released after the
	// new upload fully succeeds.
	oldRef := ""
	if existing, err := s.profiles.GetByUserID(ctx, uid); err == nil {
		oldRef = existing.CVURL
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeDatabase, op, "Failed to save profile to database", err)
	}

	objectName := "cv/" + userID + "/" + uuid.NewString() + ".pdf"
	ref, err := s.sink.Save(ctx, objectName, "application/pdf", bytes.NewReader(data))
	if err != nil {
		return nil, utils.E(utils.CodeDatabase, op, "Failed to store CV file", err)
	}

	profile, err := s.profiles.ReplaceExtraction(ctx, uid, ref, parsed.Summary, parsed.Skills, parsed.Experience, parsed.Education)
	if err != nil {
		// the just-stored blob is now orphaned; drop it best-effort
		if ref != "" {
			if derr := s.sink.Delete(ctx, ref); derr != nil {
				s.log.WithError(derr).Warn("failed to clean up orphaned cv file")
			}
		}
		return nil, utils.E(utils.CodeDatabase, op, "Failed to save profile to database", err)
	}

	if oldRef != "" && oldRef != ref {
		if derr := s.sink.Delete(ctx, oldRef); derr != nil {
			s.log.WithError(derr).Warn("failed to delete previous cv file")
		}
	}

	return profile, nil
}

func (s *cvService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	const op = "CVService.GetProfile"

	uid, err := parseUserID(op, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "No CV uploaded", err)
		}
		return nil, utils.E(utils.CodeDatabase, op, "Failed to fetch profile", err)
	}
	return p, nil
}

func (s *cvService) DeleteProfile(ctx context.Context, userID string) error {
	const op = "CVService.DeleteProfile"

	uid, err := parseUserID(op, userID)
	if err != nil {
		return err
	}

	p, err := s.profiles.Delete(ctx, uid)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil // deleting an absent profile succeeds
		}
		return utils.E(utils.CodeDatabase, op, "Failed to delete profile", err)
	}

	if p.CVURL != "" {
		if derr := s.sink.Delete(ctx, p.CVURL); derr != nil {
			s.log.WithError(derr).Warn("failed to delete cv file")
		}
	}
	return nil
}

func parseUserID(op, userID string) (primitive.ObjectID, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, utils.E(utils.CodeAuthentication, op, "Authorization token is invalid", err)
	}
	return uid, nil
}
