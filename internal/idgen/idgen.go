package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator выдаёт уникальные в рамках процесса идентификаторы записей
type Generator interface {
	NewID() string
}

// UUIDGenerator генерирует случайные UUID v4
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Sequence выдаёт идентификаторы вида <prefix>1, <prefix>2, ...
type Sequence struct {
	prefix string
	next   atomic.Int64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	return s.prefix + strconv.FormatInt(s.next.Add(1), 10)
}
