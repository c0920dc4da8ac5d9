package kafka

import (
	"Marafon/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Producer 成就事件生产者；未配置 broker 时为 nil，所有方法对 nil 安全
type Producer struct {
	sp    sarama.SyncProducer
	topic string
}

// AchievementEarnedEvent 成就解锁事件载荷
type AchievementEarnedEvent struct {
	UserID        uint64 `json:"user_id"`
	AchievementID string `json:"achievement_id"`
	EarnedAt      int64  `json:"earned_at"`
}

// newSaramaConfig 统一初始化 sarama.Config，避免代码重复
func newSaramaConfig(kafkaCfg config.KafkaConfig) *sarama.Config {
	c := sarama.NewConfig()

	if kafkaCfg.Sasl.Enable {
		c.Net.SASL.Enable = true
		c.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		c.Net.SASL.User = kafkaCfg.Sasl.Username
		c.Net.SASL.Password = kafkaCfg.Sasl.Password
	}

	c.Producer.Return.Successes = true
	c.Producer.RequiredAcks = sarama.WaitForLocal
	c.Producer.Timeout = 5 * time.Second

	return c
}

// NewProducer 创建事件生产者；brokers 为空时返回 nil，调用方无需感知
func NewProducer(cfg *config.Config) (*Producer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info("Kafka brokers not configured, achievement events disabled")
		return nil, nil
	}

	sp, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, newSaramaConfig(cfg.Kafka))
	if err != nil {
		return nil, errors.Wrap(err, "create kafka sync producer")
	}

	return &Producer{
		sp:    sp,
		topic: cfg.Kafka.AchievementTopic,
	}, nil
}

// PublishAchievementEarned 发送成就解锁事件
func (p *Producer) PublishAchievementEarned(ctx context.Context, userID uint64, achievementID string) error {
	if p == nil || p.sp == nil {
		return nil
	}

	payload, err := json.Marshal(&AchievementEarnedEvent{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now().Unix(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal achievement event")
	}

	_, _, err = p.sp.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(achievementID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return errors.Wrap(err, "send achievement event")
	}

	log.InfoContext(ctx, "achievement event published", "user_id", userID, "achievement_id", achievementID)
	return nil
}

// Close 关闭底层生产者
func (p *Producer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}
	return p.sp.Close()
}
