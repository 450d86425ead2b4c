package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/nats"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/provider/llm"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/provider/stub"
	"github.com/ranajunaid001/second-braind-junaid/internal/config"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/internal/metrics"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/assistant"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/capture"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/classifier"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/correction"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/digest"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/filing"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/people"
	"github.com/ranajunaid001/second-braind-junaid/internal/transport/telegram"
	"github.com/ranajunaid001/second-braind-junaid/pkg/keylock"
)

// oracle is what the classifier and the digest need from a model.
type oracle interface {
	Classify(ctx context.Context, text string) (domain.OracleVerdict, error)
	Extract(ctx context.Context, c domain.Category, text string) (domain.Fields, error)
	Summarize(ctx context.Context, digest string) ([]string, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type recorder interface {
	ObserveCapture(outcome, category, source string, took time.Duration)
	ObserveConfirmation(category string, accepted bool)
	ObserveCorrection(from, to string)
	ObserveDigest(trigger string, err error)
}

// Notifier delivers a rendered digest.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Engine is the wired capture engine shared by the server and the CLIs.
type Engine struct {
	Config    *config.Config
	Assistant *assistant.Service
	Capture   *capture.Service
	Digest    *digest.Service
	Inbox     InboxLog
	Records   RecordStore
	// Metrics is nil when metrics are disabled.
	Metrics *metrics.Metrics

	stores  *stores
	botAPI  *tgbotapi.BotAPI
	log     *slog.Logger
	closers []func()
}

// Option customizes NewEngine.
type Option func(*engineOptions)

type engineOptions struct {
	notifier Notifier
	noBot    bool
}

// WithNotifier replaces the digest destination, e.g. stdout for the CLI.
func WithNotifier(n Notifier) Option {
	return func(o *engineOptions) { o.notifier = n }
}

// WithoutTelegram skips connecting to the Bot API even when it is enabled.
func WithoutTelegram() Option {
	return func(o *engineOptions) { o.noBot = true }
}

// NewEngine opens the store and builds every service. Close releases what
// it opened.
func NewEngine(ctx context.Context, cfg *config.Config, log *slog.Logger, opts ...Option) (_ *Engine, err error) {
	var o engineOptions
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{Config: cfg, log: log}
	defer func() {
		if err != nil {
			e.Close()
		}
	}()

	st, closeStores, err := openStores(ctx, log, cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.stores = st
	e.closers = append(e.closers, closeStores)
	e.Inbox = st.inbox
	e.Records = st.records

	model, err := newOracle(log, cfg.LLM)
	if err != nil {
		return nil, err
	}

	var events eventPublisher = nats.Noop{}
	if cfg.NATS.Enabled() {
		pub, closePub, err := nats.Connect(log, cfg.NATS)
		if err != nil {
			return nil, err
		}
		e.closers = append(e.closers, closePub)
		events = pub
	}

	var rec recorder = metrics.Nop{}
	if cfg.Metrics.Enabled {
		e.Metrics = metrics.New()
		rec = e.Metrics
	}

	if cfg.Telegram.Enabled && !o.noBot {
		e.botAPI, err = telegram.NewAPI(cfg.Telegram)
		if err != nil {
			return nil, err
		}
	}
	notifier := o.notifier
	switch {
	case notifier != nil:
	case e.botAPI != nil:
		notifier = telegram.NewNotifier(e.botAPI, cfg.Telegram.ChatID)
	default:
		notifier = logNotifier{log: log.With("adapter", "notifier")}
	}

	loc, err := cfg.Digest.Location()
	if err != nil {
		return nil, fmt.Errorf("digest timezone: %w", err)
	}

	rules, err := classifier.NewForceRules(cfg.Capture.ForceRules)
	if err != nil {
		return nil, fmt.Errorf("force rules: %w", err)
	}

	timeout := cfg.Store.Timeout
	cls := classifier.NewService(log, model, rules, cfg.LLM.Timeout)
	peopleSvc := people.NewService(log, st.people, st.tx, timeout, loc)
	filer := filing.NewService(log, st.records, peopleSvc, timeout)
	locks := keylock.New()

	e.Capture = capture.NewService(log, cls, filer, st.inbox, st.pending, events, rec, capture.Config{
		PendingTTL:   cfg.Capture.PendingTTL,
		StoreTimeout: timeout,
		Locks:        locks,
	})
	correctionSvc := correction.NewService(log, correction.Deps{
		Inbox:     st.inbox,
		Records:   st.records,
		Pending:   st.pending,
		People:    peopleSvc,
		Extractor: cls,
		Filer:     filer,
		Tx:        st.tx,
		Events:    events,
		Metrics:   rec,
		Locks:     locks,
	}, timeout)

	var summarizer interface {
		Summarize(ctx context.Context, digest string) ([]string, error)
	}
	if cfg.Digest.Summary {
		summarizer = model
	}
	e.Digest = digest.NewService(log, st.records, summarizer, notifier, events, rec, digest.Config{
		TopN:         cfg.Digest.TopN,
		StoreTimeout: timeout,
	})

	e.Assistant = assistant.NewService(log, e.Capture, correctionSvc, st.inbox, e.Digest, peopleSvc)
	return e, nil
}

// Close releases the store, the event connection and the bot, newest first.
func (e *Engine) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i]()
	}
	e.closers = nil
}

// Ping checks the store. The in-memory store is always reachable.
func (e *Engine) Ping(ctx context.Context) error {
	if e.stores == nil || e.stores.pool == nil {
		return nil
	}
	return e.stores.pool.Ping(ctx)
}

func newOracle(log *slog.Logger, cfg config.LLMConfig) (oracle, error) {
	if cfg.Provider == config.ProviderStub {
		log.Warn("using keyword stub oracle")
		return stub.New(), nil
	}
	o, err := llm.New(log, cfg)
	if err != nil {
		return nil, fmt.Errorf("model oracle: %w", err)
	}
	return o, nil
}

// logNotifier writes digests to the log when no chat is configured.
type logNotifier struct {
	log *slog.Logger
}

func (n logNotifier) Notify(ctx context.Context, text string) error {
	n.log.InfoContext(ctx, "digest", slog.String("text", text))
	return nil
}

// WriterNotifier prints digests to w.
type WriterNotifier struct {
	W io.Writer
}

func (n WriterNotifier) Notify(_ context.Context, text string) error {
	_, err := fmt.Fprintln(n.W, text)
	return err
}
