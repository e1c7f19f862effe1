package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the bus uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventBus publishes every event type to its own topic. Register starts a
// consumer group reader for the type's topic.
type KafkaEventBus struct {
	brokers      []string
	topicPrefix  string
	groupID      string
	writeTimeout time.Duration
	writer       messageWriter

	handlers    map[events.EventType][]eventbus.HandlerFunc
	handlersMtx sync.RWMutex
	readers     map[events.EventType]*kafka.Reader
	readersMtx  sync.Mutex

	logger *slog.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithKafka creates a Kafka-backed event bus and checks that the first broker
// answers.
func NewWithKafka(cfg *config.Kafka, logger *slog.Logger) (*KafkaEventBus, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka event bus: brokers are required")
	}

	dialer := &kafka.Dialer{Timeout: 5 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("kafka event bus: connection failed: %w", err)
	}
	_ = conn.Close()

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
	}
	bus := newKafkaBus(cfg, writer, logger)
	bus.logger.Info("Kafka event bus initialized", "brokers", cfg.Brokers, "topic_prefix", bus.topicPrefix)
	return bus, nil
}

func newKafkaBus(cfg *config.Kafka, writer messageWriter, logger *slog.Logger) *KafkaEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	groupID := cfg.GroupID
	if groupID == "" {
		groupID = "ledger"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &KafkaEventBus{
		brokers:      cfg.Brokers,
		topicPrefix:  cfg.TopicPrefix,
		groupID:      groupID,
		writeTimeout: writeTimeout,
		writer:       writer,
		handlers:     make(map[events.EventType][]eventbus.HandlerFunc),
		readers:      make(map[events.EventType]*kafka.Reader),
		logger:       logger.With("bus", "kafka"),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Emit publishes event to its topic, keyed by event type.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	envBytes, err := encodeEnvelope(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, b.writeTimeout)
	defer cancel()
	msg := kafka.Message{
		Topic: topicNameFor(b.topicPrefix, events.EventType(event.Type())),
		Key:   []byte(event.Type()),
		Value: envBytes,
		Time:  time.Now(),
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka event bus: publish failed: %w", err)
	}
	return nil
}

// Register adds handler for eventType and starts the type's consumer on first use.
func (b *KafkaEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.handlersMtx.Lock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
	b.handlersMtx.Unlock()

	b.readersMtx.Lock()
	defer b.readersMtx.Unlock()
	if _, ok := b.readers[eventType]; ok || len(b.brokers) == 0 {
		return
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     b.groupID,
		Topic:       topicNameFor(b.topicPrefix, eventType),
		StartOffset: kafka.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
	})
	b.readers[eventType] = reader

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consumeLoop(eventType, reader)
	}()
}

func (b *KafkaEventBus) consumeLoop(eventType events.EventType, reader *kafka.Reader) {
	for {
		msg, err := reader.FetchMessage(b.ctx)
		if err != nil {
			if b.ctx.Err() != nil {
				return
			}
			b.logger.Error("kafka consume error", "error", err, "event_type", eventType)
			time.Sleep(500 * time.Millisecond)
			continue
		}
		b.dispatch(b.ctx, eventType, msg.Value)
		if err := reader.CommitMessages(b.ctx, msg); err != nil {
			b.logger.Error("kafka commit error", "error", err, "offset", msg.Offset)
		}
	}
}

// dispatch decodes raw and runs the handlers registered for eventType. Undecodable
// messages are logged and skipped.
func (b *KafkaEventBus) dispatch(ctx context.Context, eventType events.EventType, raw []byte) {
	evt, err := decodeEnvelope(raw)
	if err != nil {
		b.logger.Error("dropping undecodable message", "error", err, "event_type", eventType)
		return
	}
	b.handlersMtx.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.handlersMtx.RUnlock()
	for _, h := range handlers {
		if err := h(ctx, evt); err != nil {
			b.logger.Error("handler error", "error", err, "event_type", eventType)
		}
	}
}

// Close stops the consumers and flushes the writer.
func (b *KafkaEventBus) Close() error {
	b.cancel()
	b.readersMtx.Lock()
	for _, r := range b.readers {
		_ = r.Close()
	}
	b.readersMtx.Unlock()
	b.wg.Wait()
	return b.writer.Close()
}

var _ eventbus.Bus = (*KafkaEventBus)(nil)
