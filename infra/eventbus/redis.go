package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

// RedisEventBus publishes events to one Redis stream per event type and consumes
// them through consumer groups.
type RedisEventBus struct {
	client *redis.Client
	prefix string
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithRedis connects to Redis and returns a stream-backed event bus.
func NewWithRedis(cfg *config.Redis, logger *slog.Logger) (*RedisEventBus, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("redis event bus: url is required")
	}
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis event bus: invalid URL: %w", err)
	}
	opt.PoolSize = cfg.PoolSize
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opt)
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis event bus: connection failed: %w", err)
	}
	return newRedisBus(client, cfg.KeyPrefix, logger), nil
}

func newRedisBus(client *redis.Client, prefix string, logger *slog.Logger) *RedisEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisEventBus{
		client: client,
		prefix: prefix,
		logger: logger.With("bus", "redis"),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Emit appends event to its type's stream.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	envBytes, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("redis event bus: %w", err)
	}
	stream := streamNameFor(b.prefix, events.EventType(event.Type()))
	if err := b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"event": string(envBytes)},
	}).Err(); err != nil {
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	b.logger.Debug("event emitted", "type", event.Type(), "stream", stream)
	return nil
}

// Register starts a consumer-group reader calling handler for every event of
// eventType.
func (b *RedisEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	stream := streamNameFor(b.prefix, eventType)
	group := groupNameFor(b.prefix, eventType)
	consumer := fmt.Sprintf("consumer-%d", time.Now().UnixNano())

	err := b.client.XGroupCreateMkStream(b.ctx, stream, group, "0").Err()
	if err != nil && !isBusyGroup(err) {
		b.logger.Error("failed to create consumer group", "error", err, "stream", stream)
		return
	}

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			res, err := b.client.XReadGroup(b.ctx, &redis.XReadGroupArgs{
				Group:    group,
				Consumer: consumer,
				Streams:  []string{stream, ">"},
				Count:    10,
				Block:    5 * time.Second,
			}).Result()
			if err != nil {
				if b.ctx.Err() != nil {
					return
				}
				if !errors.Is(err, redis.Nil) {
					b.logger.Error("error reading from stream", "error", err, "stream", stream)
					time.Sleep(time.Second)
				}
				continue
			}
			for _, s := range res {
				for _, msg := range s.Messages {
					b.handle(eventType, handler, msg)
					if err := b.client.XAck(b.ctx, stream, group, msg.ID).Err(); err != nil {
						b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
					}
				}
			}
		}
	}()
}

func (b *RedisEventBus) handle(eventType events.EventType, handler eventbus.HandlerFunc, msg redis.XMessage) {
	raw, ok := msg.Values["event"].(string)
	if !ok {
		b.logger.Error("message without event field", "msg_id", msg.ID)
		return
	}
	evt, err := decodeEnvelope([]byte(raw))
	if err != nil {
		b.logger.Error("dropping undecodable message", "error", err, "msg_id", msg.ID)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("handler panic recovered", "panic", r, "event_type", eventType)
		}
	}()
	if err := handler(b.ctx, evt); err != nil {
		b.logger.Error("handler error", "error", err, "event_type", eventType)
	}
}

// Close stops the consumers and closes the client.
func (b *RedisEventBus) Close() error {
	b.cancel()
	b.wg.Wait()
	return b.client.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && strings.HasPrefix(err.Error(), "BUSYGROUP")
}

var _ eventbus.Bus = (*RedisEventBus)(nil)
