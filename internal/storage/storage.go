package storage

import (
	"context"

	"swapVerify/internal/model"
)

// Sink records verification outcomes for auditing.
type Sink interface {
	PutVerification(ctx context.Context, record model.VerificationRecord) error
}
