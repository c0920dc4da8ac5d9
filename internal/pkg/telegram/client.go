package telegram

import (
	"Marafon/internal/api/config"
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client Telegram Bot API 客户端，目前只用于拉取用户头像
type Client struct {
	http     *resty.Client
	botToken string
}

type apiResponse[T any] struct {
	Ok          bool   `json:"ok"`
	Description string `json:"description"`
	Result      T      `json:"result"`
}

type profilePhotos struct {
	TotalCount int           `json:"total_count"`
	Photos     [][]photoSize `json:"photos"`
}

type photoSize struct {
	FileID   string `json:"file_id"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	FileSize int    `json:"file_size"`
}

type fileInfo struct {
	FileID   string `json:"file_id"`
	FilePath string `json:"file_path"`
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.Telegram.APIBase).
			SetTimeout(10 * time.Second).
			SetRetryCount(2),
		botToken: cfg.Telegram.BotToken,
	}
}

// GetProfilePhotoFileID 返回用户最新头像中最大尺寸的 file_id，无头像返回空串
func (c *Client) GetProfilePhotoFileID(ctx context.Context, userID uint64) (string, error) {
	var resp apiResponse[profilePhotos]
	_, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"user_id": fmt.Sprintf("%d", userID),
			"limit":   "1",
		}).
		SetResult(&resp).
		Get(fmt.Sprintf("/bot%s/getUserProfilePhotos", c.botToken))
	if err != nil {
		return "", errors.Wrap(err, "getUserProfilePhotos request")
	}
	if !resp.Ok {
		return "", errors.Errorf("getUserProfilePhotos: %s", resp.Description)
	}
	if len(resp.Result.Photos) == 0 || len(resp.Result.Photos[0]) == 0 {
		return "", nil
	}

	sizes := resp.Result.Photos[0]
	// 同一张头像按尺寸升序，取最后一个
	return sizes[len(sizes)-1].FileID, nil
}

// DownloadFile 按 file_id 下载文件内容
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	var resp apiResponse[fileInfo]
	_, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("file_id", fileID).
		SetResult(&resp).
		Get(fmt.Sprintf("/bot%s/getFile", c.botToken))
	if err != nil {
		return nil, errors.Wrap(err, "getFile request")
	}
	if !resp.Ok || resp.Result.FilePath == "" {
		return nil, errors.Errorf("getFile: %s", resp.Description)
	}

	download, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/file/bot%s/%s", c.botToken, resp.Result.FilePath))
	if err != nil {
		return nil, errors.Wrap(err, "download file")
	}
	if download.IsError() {
		return nil, errors.Errorf("download file: status %d", download.StatusCode())
	}

	return download.Body(), nil
}
