package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"job-platform/internal/domain/account"
	"job-platform/internal/domain/job"
	"job-platform/internal/domain/matching"
	"job-platform/internal/domain/resume"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrNotApplicant         = errors.New("user is not an applicant")
	ErrEmptyFile            = errors.New("empty file")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrNoResume             = errors.New("no resume on file")
)

const pdfContentType = "application/pdf"

type ResumeUploadInput struct {
	Username           string
	Content            []byte
	ContentType        string
	ExtractedSkillsCSV string
	Summary            string
}

type ResumeUploadResult struct {
	BlobID  string
	Cleanup resume.CleanupResult
}

type ResumeUsecase interface {
	Upload(ctx context.Context, in ResumeUploadInput) (ResumeUploadResult, error)
	GetMetadata(ctx context.Context, username string) (resume.Metadata, error)
	GetFile(ctx context.Context, username string) ([]byte, string, error)
	Recommend(ctx context.Context, applicantUsername string) ([]matching.Recommendation, error)
}

type Resumes struct {
	accounts account.Repository
	jobs     job.Repository
	blobs    resume.BlobStore
	log      logrus.FieldLogger
}

func NewResumeUsecase(accounts account.Repository, jobs job.Repository, blobs resume.BlobStore, log logrus.FieldLogger) *Resumes {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Resumes{accounts: accounts, jobs: jobs, blobs: blobs, log: log}
}

// Upload stores a new resume blob and repoints the account at it. An
// existing blob is deleted best-effort first; a failed deletion is recorded
// in the returned CleanupResult and logged, never propagated.
func (u *Resumes) Upload(ctx context.Context, in ResumeUploadInput) (ResumeUploadResult, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return ResumeUploadResult{}, ErrInvalidInput
	}

	acct, err := u.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return ResumeUploadResult{}, ErrUserNotFound
		}
		return ResumeUploadResult{}, ErrInternal
	}
	if acct.Section != account.SectionApplicant {
		return ResumeUploadResult{}, ErrNotApplicant
	}

	if len(in.Content) == 0 {
		return ResumeUploadResult{}, ErrEmptyFile
	}
	if !strings.EqualFold(strings.TrimSpace(in.ContentType), pdfContentType) {
		return ResumeUploadResult{}, ErrUnsupportedMediaType
	}

	var cleanup resume.CleanupResult
	if acct.ResumeBlobKey != "" {
		cleanup = resume.CleanupResult{
			Attempted: true,
			BlobID:    acct.ResumeBlobKey,
			Err:       u.blobs.Delete(ctx, acct.ResumeBlobKey),
		}
		if cleanup.Failed() {
			u.log.WithError(cleanup.Err).
				WithFields(logrus.Fields{"username": username, "blob": cleanup.BlobID}).
				Warn("old resume deletion failed")
		}
	}

	meta := resume.Metadata{
		Username: username,
		Skills:   matching.NormalizeCSV(in.ExtractedSkillsCSV),
		Summary:  in.Summary,
	}

	blobID, err := u.blobs.Put(ctx, in.Content, pdfContentType, meta)
	if err != nil {
		return ResumeUploadResult{}, ErrInternal
	}

	if err := u.accounts.SetResumeBlobKey(ctx, acct.ID, blobID); err != nil {
		// The blob is stored but unreferenced; the orphan is accepted.
		u.log.WithError(err).
			WithFields(logrus.Fields{"username": username, "blob": blobID}).
			Error("account resume reference update failed, blob orphaned")
		return ResumeUploadResult{}, ErrInternal
	}

	return ResumeUploadResult{BlobID: blobID, Cleanup: cleanup}, nil
}

func (u *Resumes) GetMetadata(ctx context.Context, username string) (resume.Metadata, error) {
	acct, err := u.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return resume.Metadata{}, ErrUserNotFound
		}
		return resume.Metadata{}, ErrInternal
	}
	if acct.ResumeBlobKey == "" {
		return resume.Metadata{}, ErrNoResume
	}

	meta, err := u.blobs.GetMetadata(ctx, acct.ResumeBlobKey)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return resume.Metadata{}, ErrNoResume
		}
		return resume.Metadata{}, ErrInternal
	}
	return meta, nil
}

func (u *Resumes) GetFile(ctx context.Context, username string) ([]byte, string, error) {
	acct, err := u.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", ErrInternal
	}
	if acct.ResumeBlobKey == "" {
		return nil, "", ErrNoResume
	}

	content, contentType, err := u.blobs.Get(ctx, acct.ResumeBlobKey)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return nil, "", ErrNoResume
		}
		return nil, "", ErrInternal
	}
	return content, contentType, nil
}

// Recommend ranks all postings against the applicant's extracted skills.
// Unknown users and non-applicants surface as errors for the HTTP layer;
// everything else fails closed to an empty list. Scores are recomputed on
// every call.
func (u *Resumes) Recommend(ctx context.Context, applicantUsername string) ([]matching.Recommendation, error) {
	acct, err := u.accounts.GetByUsername(ctx, strings.TrimSpace(applicantUsername))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}
	if acct.Section != account.SectionApplicant {
		return nil, ErrNotApplicant
	}

	if acct.ResumeBlobKey == "" {
		return []matching.Recommendation{}, nil
	}

	meta, err := u.blobs.GetMetadata(ctx, acct.ResumeBlobKey)
	if err != nil {
		u.log.WithError(err).
			WithField("username", acct.Username).
			Warn("resume metadata unavailable, returning no recommendations")
		return []matching.Recommendation{}, nil
	}
	if len(meta.Skills) == 0 {
		return []matching.Recommendation{}, nil
	}

	postings, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	recs := matching.Recommend(meta.Skills, postings)
	if recs == nil {
		recs = []matching.Recommendation{}
	}
	return recs, nil
}
