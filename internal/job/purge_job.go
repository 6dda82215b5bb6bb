package job

import (
	"Inkstone/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// 软删除内容的保留期，过期后物理清除
const purgeRetention = 30 * 24 * time.Hour

type PurgeJob struct {
	postRepo repository.PostRepo
}

func NewPurgeJob(postRepo repository.PostRepo) *PurgeJob {
	return &PurgeJob{postRepo: postRepo}
}

func (s *PurgeJob) Run() {
	ctx := context.Background()
	log.Info("start purge job")

	before := time.Now().Add(-purgeRetention)
	count, err := s.postRepo.PurgeDeleted(ctx, before)
	if err != nil {
		log.Error("failed to purge soft-deleted posts", "err", err)
		return
	}

	if count > 0 {
		log.Info("purge job finished", "purged_count", count)
	}
}
