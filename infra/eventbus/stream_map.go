package eventbus

import (
	"fmt"
	"strings"

	"github.com/amirasaad/ledger/pkg/domain/events"
)

// streamNameFor returns the Redis stream for eventType, e.g. "ledger:events:withdrawal:posted".
func streamNameFor(prefix string, eventType events.EventType) string {
	return prefix + nameFor("events", eventType)
}

// groupNameFor returns the Redis consumer group for eventType.
func groupNameFor(prefix string, eventType events.EventType) string {
	return prefix + nameFor("group", eventType)
}

// topicNameFor returns the Kafka topic for eventType, e.g. "ledger.events.withdrawal.posted".
func topicNameFor(prefix string, eventType events.EventType) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "ledger.events"
	}
	return fmt.Sprintf("%s.%s", prefix, strings.ToLower(eventType.String()))
}

func nameFor(kind string, eventType events.EventType) string {
	parts := strings.Split(eventType.String(), ".")
	if len(parts) == 2 {
		return fmt.Sprintf("%s:%s:%s", kind, strings.ToLower(parts[0]), strings.ToLower(parts[1]))
	}
	return fmt.Sprintf("%s:%s", kind, strings.ToLower(eventType.String()))
}
