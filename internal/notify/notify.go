// Package notify delivers merge progress to the user.
package notify

import (
	"github.com/goodnatureofminers/coinmerger-backend/internal/model"
	"go.uber.org/zap"
)

// Notifier receives merge progress.
type Notifier interface {
	Submit(id model.TxID)
	Success(id model.TxID)
	Error(message string)
}

// Kind is the type of a notification.
type Kind string

var (
	KindSubmit  Kind = "submit"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const (
	submitMessage  = "Transaction submitted"
	successMessage = "Transaction successful"
)

// Multi fans every call out to each notifier in order.
type Multi []Notifier

func (m Multi) Submit(id model.TxID) {
	for _, n := range m {
		n.Submit(id)
	}
}

func (m Multi) Success(id model.TxID) {
	for _, n := range m {
		n.Success(id)
	}
}

func (m Multi) Error(message string) {
	for _, n := range m {
		n.Error(message)
	}
}

// Log writes notifications to a zap logger.
type Log struct {
	logger *zap.Logger
	link   func(model.TxID) string
}

// NewLog builds a Log. link renders a transaction reference and may be nil.
func NewLog(logger *zap.Logger, link func(model.TxID) string) *Log {
	return &Log{logger: logger.Named("notify"), link: link}
}

func (l *Log) Submit(id model.TxID) {
	l.logger.Info(submitMessage, l.txFields(id)...)
}

func (l *Log) Success(id model.TxID) {
	l.logger.Info(successMessage, l.txFields(id)...)
}

func (l *Log) Error(message string) {
	l.logger.Error(message)
}

func (l *Log) txFields(id model.TxID) []zap.Field {
	fields := []zap.Field{zap.String("tx_id", string(id))}
	if l.link != nil {
		fields = append(fields, zap.String("link", l.link(id)))
	}
	return fields
}
