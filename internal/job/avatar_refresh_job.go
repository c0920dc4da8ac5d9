package job

import (
	"Marafon/internal/pkg/consts"
	"Marafon/internal/pkg/logger"
	"Marafon/internal/pkg/minio"
	"Marafon/internal/pkg/redis"
	"Marafon/internal/pkg/telegram"
	"Marafon/internal/repository"
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	log "log/slog"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// AvatarRefreshJob 定期从 Telegram 拉取参赛者头像并回写到对象存储
type AvatarRefreshJob struct {
	userRepo repository.UserRepo
	tgClient *telegram.Client
}

func NewAvatarRefreshJob(userRepo repository.UserRepo, tgClient *telegram.Client) *AvatarRefreshJob {
	return &AvatarRefreshJob{
		userRepo: userRepo,
		tgClient: tgClient,
	}
}

func (s *AvatarRefreshJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	locked, err := redis.TryLock(ctx, consts.AvatarRefreshLock, traceID, 10*time.Minute, 1)
	if err != nil || !locked {
		return
	}
	defer redis.UnLock(ctx, consts.AvatarRefreshLock, traceID)

	users, err := s.userRepo.ListApproved(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list approved users error", "err", err)
		return
	}

	refreshed := 0
	for _, user := range users {
		if err = s.RefreshOne(ctx, user.ID); err != nil {
			log.WarnContext(ctx, "refresh avatar failed", "user_id", user.ID, "err", err)
			continue
		}
		refreshed++
	}

	log.InfoContext(ctx, "avatar refresh job finished", "total", len(users), "refreshed", refreshed)
}

// RefreshOne 拉取单个用户的最新头像并回写
func (s *AvatarRefreshJob) RefreshOne(ctx context.Context, userID uint64) error {
	fileID, err := s.tgClient.GetProfilePhotoFileID(ctx, userID)
	if err != nil {
		return err
	}
	if fileID == "" {
		// 用户没有头像，保留当前值
		return nil
	}

	raw, err := s.tgClient.DownloadFile(ctx, fileID)
	if err != nil {
		return err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	thumb := imaging.Fill(img, consts.AvatarThumbnailSize, consts.AvatarThumbnailSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err = jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 85}); err != nil {
		return err
	}

	objectName := fmt.Sprintf("avatars/%d.jpg", userID)
	if _, err = minio.UploadFile(ctx, objectName, &buf, int64(buf.Len()), "image/jpeg"); err != nil {
		return err
	}

	return s.userRepo.UpdateAvatar(ctx, userID, minio.GetPublicURL(objectName))
}
