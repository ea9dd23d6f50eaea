package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/medicard/backend/internal/auth"
	"github.com/medicard/backend/internal/repo/s3"
)

type AppRepo interface {
	authRepo
	userRepo
	deviceRepo
	visitRepo
	allergyRepo
	medicineRepo
	institutionRepo
	prescriptionRepo
}

type AppCtrl interface {
	authCtrl
	userCtrl
	deviceCtrl
	visitCtrl
	allergyCtrl
	medicineCtrl
	institutionCtrl
	prescriptionCtrl
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type EmailService interface {
	SendRegistrationNotice(toEmail, firstName string) error
}

type S3Service interface {
	UploadFile(ctx context.Context, req *s3.UploadFileRequest) (string, error)
}

type Controller struct {
	au    auth.Port
	repo  AppRepo
	cache CacheService
	s3    S3Service
	email EmailService
}

func New(
	au auth.Port,
	repo AppRepo,
	cache CacheService,
	s3 S3Service,
	email EmailService,
) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
		s3:    s3,
		email: email,
	}
}
