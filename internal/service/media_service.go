package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/minio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

type MediaService interface {
	UploadImage(ctx context.Context, reader io.Reader, size int64, contentType string) (*dto.MediaUploadDTO, error)
}

type MediaServiceImpl struct{}

func NewMediaService() MediaService {
	return &MediaServiceImpl{}
}

// UploadImage 上传帖子配图或头像，仅接受图片类型
func (s *MediaServiceImpl) UploadImage(ctx context.Context, reader io.Reader, size int64, contentType string) (*dto.MediaUploadDTO, error) {
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, ErrFileNotSupported
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.NewString()
	fileKey, err := minio.UploadFile(ctx, objectName, reader, size, contentType)
	if err != nil {
		return nil, err
	}

	return &dto.MediaUploadDTO{
		FileKey: fileKey,
		URL:     minio.GetPublicURL(fileKey),
	}, nil
}
