package broker

import (
	"context"
	"fmt"
	"log/slog"
)

// kafkaLogger adapts slog to kafka.Logger. Writer chatter goes to debug.
type kafkaLogger struct {
	l     *slog.Logger
	level slog.Level
}

func (k kafkaLogger) Printf(format string, v ...any) {
	k.l.Log(context.Background(), k.level, fmt.Sprintf(format, v...))
}
