package mailer

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"gdgoc.backend/pkg/logger"
)

const sendTimeout = 30 * time.Second

var (
	mailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gdgoc_mails_sent_total",
		Help: "Emails handed to the transport successfully.",
	}, []string{"transport", "template"})
	mailsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gdgoc_mails_failed_total",
		Help: "Emails that failed to render or send.",
	}, []string{"transport", "template"})
	mailsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gdgoc_mails_dropped_total",
		Help: "Emails dropped because the queue was full or closed.",
	})
)

// Dispatcher queues messages and delivers them from a fixed pool of workers.
// Delivery failures are logged and never reported to the caller.
type Dispatcher struct {
	transport Transport
	renderer  *Renderer
	workers   int

	mu      sync.RWMutex
	queue   chan *Message
	closed  bool
	started bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher. Start must be called before messages are delivered.
func NewDispatcher(transport Transport, renderer *Renderer, workers, queueSize int) *Dispatcher {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}
	return &Dispatcher{
		transport: transport,
		renderer:  renderer,
		workers:   workers,
		queue:     make(chan *Message, queueSize),
	}
}

// Start launches the workers. It is a no-op when called twice.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started || d.closed {
		return
	}
	d.started = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.run(context.WithoutCancel(ctx))
	}
	logger.Info(ctx, "Mail dispatcher started",
		zap.String("transport", d.transport.Name()),
		zap.Int("workers", d.workers),
		zap.Int("queue_size", cap(d.queue)),
	)
}

// Enqueue schedules msg for delivery. It never blocks and reports false when
// the message was dropped.
func (d *Dispatcher) Enqueue(msg *Message) bool {
	if msg == nil || !msg.HasRecipients() {
		return false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		mailsDropped.Inc()
		logger.Warn(context.Background(), "Mail dispatcher closed, dropping message", zap.String("subject", msg.Subject))
		return false
	}

	select {
	case d.queue <- msg:
		return true
	default:
		mailsDropped.Inc()
		logger.Warn(context.Background(), "Mail queue full, dropping message",
			zap.String("subject", msg.Subject),
			zap.Strings("to", msg.Recipients()),
		)
		return false
	}
}

// Stop closes the queue and waits for queued messages to be delivered or ctx to expire.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		// deliver whatever was queued before Start
		d.wg.Add(1)
		go d.run(context.WithoutCancel(ctx))
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(ctx, msg)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg *Message) {
	name := d.transport.Name()
	if d.renderer != nil {
		if err := d.renderer.Render(msg); err != nil {
			mailsFailed.WithLabelValues(name, msg.Template).Inc()
			logger.Error(ctx, "Failed to render email", zap.String("template", msg.Template), zap.Error(err))
			return
		}
	} else if msg.Body != "" {
		msg.TextContent = msg.Body
	}
	if !msg.HasContent() {
		mailsFailed.WithLabelValues(name, msg.Template).Inc()
		logger.Warn(ctx, "Skipping email without content", zap.String("subject", msg.Subject))
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if err := d.transport.Send(sendCtx, msg); err != nil {
		mailsFailed.WithLabelValues(name, msg.Template).Inc()
		logger.Error(ctx, "Failed to send email",
			zap.String("transport", name),
			zap.String("subject", msg.Subject),
			zap.Strings("to", msg.Recipients()),
			zap.Error(err),
		)
		return
	}
	mailsSent.WithLabelValues(name, msg.Template).Inc()
}
