package assets

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/phanxgames/pebble"
)

// Config configures a Loader. The zero value is usable.
type Config struct {
	// Fetcher retrieves source bytes. Nil reads from the working directory.
	Fetcher Fetcher

	// Fonts receives every loaded font. Nil uses pebble.DefaultFonts, which
	// is what the drawing backends consult by default.
	Fonts *pebble.FontBook

	// Registry receives loaded resources. Nil creates a new one.
	Registry *Registry

	// Logger receives warnings and verbose progress. Nil uses log.Default().
	Logger *log.Logger

	// StrictFailures counts unrecognized and failed sources as completed, so
	// the batch still resolves and Wait reports the joined errors. When
	// false such a batch never resolves on its own.
	StrictFailures bool

	// MaxConcurrent bounds the number of fetches in flight. Zero or less
	// means unbounded.
	MaxConcurrent int
}

// Loader loads batches of assets into a Registry. Only one batch may be in
// flight at a time.
type Loader struct {
	fetcher  Fetcher
	fonts    *pebble.FontBook
	registry *Registry
	logger   *log.Logger
	strict   bool
	sem      *semaphore.Weighted

	mu      sync.Mutex
	toLoad  int
	loaded  int
	verbose bool
	batch   *Batch
}

// NewLoader creates a loader from cfg.
func NewLoader(cfg Config) *Loader {
	l := &Loader{
		fetcher:  cfg.Fetcher,
		fonts:    cfg.Fonts,
		registry: cfg.Registry,
		logger:   cfg.Logger,
		strict:   cfg.StrictFailures,
	}
	if l.fetcher == nil {
		l.fetcher = FSFetcher{FS: os.DirFS(".")}
	}
	if l.fonts == nil {
		l.fonts = pebble.DefaultFonts
	}
	if l.registry == nil {
		l.registry = NewRegistry()
	}
	if l.logger == nil {
		l.logger = log.Default()
	}
	if cfg.MaxConcurrent > 0 {
		l.sem = semaphore.NewWeighted(int64(cfg.MaxConcurrent))
	}
	return l
}

// Registry returns the registry loaded resources are stored in.
func (l *Loader) Registry() *Registry { return l.registry }

// Progress returns the completed and expected unit counts of the current
// batch. Both are zero between batches.
func (l *Loader) Progress() (loaded, total int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded, l.toLoad
}

// Load starts loading sources and returns the batch's completion handle.
// Every source counts toward the expected total, including ones whose type
// is not recognized. Cancelling ctx cancels the batch.
//
// Load returns ErrBatchInFlight if an earlier batch has neither resolved nor
// been cancelled.
func (l *Loader) Load(ctx context.Context, sources []string, verbose bool) (*Batch, error) {
	runCtx, cancel := context.WithCancel(ctx)
	b := &Batch{loader: l, done: make(chan struct{}), cancel: cancel}

	l.mu.Lock()
	if l.batch != nil {
		l.mu.Unlock()
		cancel()
		return nil, ErrBatchInFlight
	}
	l.batch = b
	l.verbose = verbose
	l.toLoad = len(sources)
	l.loaded = 0
	if verbose {
		l.logger.Print("Loading assets...")
	}
	l.mu.Unlock()

	if len(sources) == 0 {
		l.finish(b)
		return b, nil
	}

	stop := context.AfterFunc(ctx, b.Cancel)
	go func() {
		<-b.done
		stop()
	}()

	for _, source := range sources {
		kind := Classify(source)
		if kind == KindUnknown {
			l.fail(b, &UnrecognizedTypeError{Source: source})
			continue
		}
		go l.run(runCtx, b, source, kind)
	}
	return b, nil
}

// run loads one unit and reports it to the batch.
func (l *Loader) run(ctx context.Context, b *Batch, source string, kind Kind) {
	data, err := l.fetch(ctx, source)
	if err != nil {
		l.fail(b, &FetchError{Source: source, Err: err})
		return
	}

	var v any
	switch kind {
	case KindImage:
		v, err = decodeImage(data)
	case KindFont:
		v, err = l.registerFont(source, data)
	case KindJSON:
		v, err = l.loadJSON(ctx, source, data)
	case KindAudio:
		v, err = decodeSound(source, data)
	}
	if err != nil {
		var (
			fe *FetchError
			de *DecodeError
		)
		if !errors.As(err, &fe) && !errors.As(err, &de) {
			err = &DecodeError{Source: source, Kind: kind, Err: err}
		}
		l.fail(b, err)
		return
	}
	l.registry.Set(source, v)
	l.complete(b)
}

func (l *Loader) fetch(ctx context.Context, source string) ([]byte, error) {
	if l.sem != nil {
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer l.sem.Release(1)
	}
	return l.fetcher.Fetch(ctx, source)
}

// loadJSON parses a JSON document. A sprite sheet, or a document whose
// "textures" field parses as sheet pages, also loads its page images,
// resolved against the document's directory, and registers each page image
// and frame before the document itself.
func (l *Loader) loadJSON(ctx context.Context, source string, data []byte) (*Document, error) {
	doc, err := parseDocument(source, data)
	if err != nil {
		return nil, err
	}
	var atlas *pebble.Atlas
	switch {
	case doc.IsAtlas():
		if atlas, err = pebble.ParseAtlas(data); err != nil {
			return nil, err
		}
	case doc.pages():
		// A "textures" field that is not a page list is ordinary data.
		if atlas, err = pebble.ParseAtlas(data); err != nil || !hasPageImages(atlas) {
			return doc, nil
		}
	default:
		return doc, nil
	}
	for _, page := range atlas.Pages {
		path := baseDir(source) + page.Image
		raw, err := l.fetch(ctx, path)
		if err != nil {
			return nil, &FetchError{Source: path, Err: err}
		}
		img, err := decodeImage(raw)
		if err != nil {
			return nil, &DecodeError{Source: path, Kind: KindImage, Err: err}
		}
		l.registry.Set(path, img)
		for _, f := range page.Frames {
			f.Source = img
			l.registry.Set(f.Name, f)
		}
	}
	return doc, nil
}

func hasPageImages(atlas *pebble.Atlas) bool {
	for _, page := range atlas.Pages {
		if page.Image == "" {
			return false
		}
	}
	return len(atlas.Pages) > 0
}

// fail records err on the batch. In strict mode the unit still completes.
func (l *Loader) fail(b *Batch, err error) {
	l.logger.Print(err)
	b.addError(err)
	if l.strict {
		l.complete(b)
	}
}

// complete counts one finished unit of b and resolves b once every unit has
// finished. Units of a batch that was cancelled are ignored.
func (l *Loader) complete(b *Batch) {
	l.mu.Lock()
	if l.batch != b {
		l.mu.Unlock()
		return
	}
	l.loaded++
	if l.verbose {
		l.logger.Printf("%d/%d assets loaded", l.loaded, l.toLoad)
	}
	if l.loaded < l.toLoad {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	l.finish(b)
}

// finish resets the counters and resolves b.
func (l *Loader) finish(b *Batch) {
	l.mu.Lock()
	if l.batch != b {
		l.mu.Unlock()
		return
	}
	l.toLoad, l.loaded = 0, 0
	l.batch = nil
	if l.verbose {
		l.logger.Print("Assets finished loading")
	}
	l.mu.Unlock()
	b.resolve(nil)
}

// cancel detaches b from the loader so a new batch can start.
func (l *Loader) cancel(b *Batch) {
	l.mu.Lock()
	if l.batch == b {
		l.toLoad, l.loaded = 0, 0
		l.batch = nil
	}
	l.mu.Unlock()
}

// Batch is the completion handle of one Load call.
type Batch struct {
	loader *Loader
	done   chan struct{}
	cancel context.CancelFunc
	once   sync.Once

	mu   sync.Mutex
	errs []error
	err  error
}

// Done is closed once the batch resolves.
func (b *Batch) Done() <-chan struct{} { return b.done }

// Wait blocks until the batch resolves or ctx is done. It returns the
// batch's result: nil, ErrBatchCancelled, or in strict mode the joined
// errors of failed units.
func (b *Batch) Wait(ctx context.Context) error {
	select {
	case <-b.done:
		return b.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the batch's result, or nil while it is still loading.
func (b *Batch) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Errors returns the errors recorded so far, in the order they occurred.
func (b *Batch) Errors() []error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]error(nil), b.errs...)
}

// Cancel stops the batch. Units still loading are abandoned and the batch
// resolves with ErrBatchCancelled. Cancel after resolution does nothing.
func (b *Batch) Cancel() {
	b.loader.cancel(b)
	b.resolve(ErrBatchCancelled)
}

func (b *Batch) addError(err error) {
	b.mu.Lock()
	b.errs = append(b.errs, err)
	b.mu.Unlock()
}

func (b *Batch) resolve(err error) {
	b.once.Do(func() {
		b.mu.Lock()
		if err == nil && len(b.errs) > 0 {
			err = errors.Join(b.errs...)
		}
		b.err = err
		b.mu.Unlock()
		b.cancel()
		close(b.done)
	})
}
