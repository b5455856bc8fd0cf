package notify

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Freeeeeet/drivingschool_bot/internal/metrics"
	"go.uber.org/zap"
)

const sendTimeout = 10 * time.Second

type notification struct {
	title string
	body  string
}

// Dispatcher доставляет уведомления в фоне.
// Dispatch никогда не блокирует вызывающего: при переполнении очереди уведомление отбрасывается.
type Dispatcher struct {
	sender   Sender
	queue    chan notification
	logger   *zap.Logger
	stopChan chan struct{}
	done     chan struct{}
	started  atomic.Bool
	stopOnce sync.Once
}

// NewDispatcher создаёт диспетчер с очередью заданного размера
func NewDispatcher(sender Sender, queueSize int, logger *zap.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		sender:   sender,
		queue:    make(chan notification, queueSize),
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Dispatch ставит уведомление в очередь
func (d *Dispatcher) Dispatch(title, body string) {
	select {
	case d.queue <- notification{title: title, body: body}:
		metrics.SetNotificationQueueLength(len(d.queue))
	default:
		metrics.RecordNotification("dropped")
		d.logger.Warn("Notification queue is full, dropping notification",
			zap.String("title", title))
	}
}

// Start запускает фоновую отправку
func (d *Dispatcher) Start(ctx context.Context) {
	if !d.started.CompareAndSwap(false, true) {
		return
	}
	d.logger.Info("Starting notification dispatcher")

	go d.run(ctx)
}

// Stop останавливает отправку, успев доставить то, что уже в очереди.
// Отмена ctx из Start тоже досылает очередь.
func (d *Dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.logger.Info("Stopping notification dispatcher")
		close(d.stopChan)
	})
	if d.started.Load() {
		<-d.done
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)

	for {
		select {
		case n := <-d.queue:
			d.send(ctx, n)
		case <-d.stopChan:
			d.drain(ctx)
			d.logger.Info("Notification dispatcher stopped")
			return
		case <-ctx.Done():
			d.drain(ctx)
			d.logger.Info("Notification dispatcher cancelled")
			return
		}
	}
}

func (d *Dispatcher) drain(ctx context.Context) {
	for {
		select {
		case n := <-d.queue:
			d.send(ctx, n)
		default:
			return
		}
	}
}

// send отправляет одно уведомление. Ошибки только логируются.
func (d *Dispatcher) send(ctx context.Context, n notification) {
	metrics.SetNotificationQueueLength(len(d.queue))

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	if err := d.sender.Send(sendCtx, n.title, n.body); err != nil {
		metrics.RecordNotification("failed")
		d.logger.Error("Failed to send notification",
			zap.String("title", n.title),
			zap.Error(err),
		)
		return
	}

	metrics.RecordNotification("sent")
}
