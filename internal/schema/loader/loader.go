// Package loader reads schema documents from the local filesystem, an
// embedded fs.FS, or an HTTP endpoint.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-schemaform/pkg/schema"
)

var (
	ErrNilSource      = errors.New("schema loader: source is nil")
	ErrHTTPDisabled   = errors.New("schema loader: http support disabled")
	ErrUnsupportedSource = errors.New("schema loader: unsupported source kind")
)

// DefaultMaxBytes caps how much of a remote document is read.
const DefaultMaxBytes int64 = 4 << 20

// Option customises a Loader.
type Option func(*Loader)

// WithFileSystem serves SourceKindFS documents from files.
func WithFileSystem(files fs.FS) Option {
	return func(l *Loader) {
		l.fs = files
	}
}

// WithHTTPClient enables URL sources through the given client. The client is
// copied so the request timeout can be applied without touching the caller's.
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		if client == nil {
			return
		}
		clone := *client
		l.http = &clone
	}
}

// WithHTTP enables URL sources through a default client.
func WithHTTP() Option {
	return func(l *Loader) {
		if l.http == nil {
			l.http = &http.Client{}
		}
	}
}

// WithTimeout bounds each remote request.
func WithTimeout(timeout time.Duration) Option {
	return func(l *Loader) {
		l.timeout = timeout
	}
}

// WithMaxBytes overrides DefaultMaxBytes. Values <= 0 keep the default.
func WithMaxBytes(limit int64) Option {
	return func(l *Loader) {
		if limit > 0 {
			l.maxBytes = limit
		}
	}
}

// Loader resolves a schema.Source into a schema.Document.
type Loader struct {
	fs       fs.FS
	http     *http.Client
	timeout  time.Duration
	maxBytes int64
}

// New constructs a Loader. URL sources stay disabled unless WithHTTP or
// WithHTTPClient is supplied.
func New(options ...Option) *Loader {
	l := &Loader{maxBytes: DefaultMaxBytes}
	for _, opt := range options {
		if opt != nil {
			opt(l)
		}
	}
	if l.http != nil && l.timeout > 0 && l.http.Timeout == 0 {
		l.http.Timeout = l.timeout
	}
	return l
}

// Load fetches the raw payload for src.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, ErrNilSource
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	case schema.SourceKindURL:
		if l.http == nil {
			return schema.Document{}, ErrHTTPDisabled
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout, l.maxBytes)
	default:
		err = fmt.Errorf("%w %q", ErrUnsupportedSource, src.Kind())
	}
	if err != nil {
		return schema.Document{}, err
	}
	return schema.NewDocument(src, data)
}

// LoadNode loads src and parses it into a node tree.
func (l *Loader) LoadNode(ctx context.Context, src schema.Source) (*schema.Node, error) {
	doc, err := l.Load(ctx, src)
	if err != nil {
		return nil, err
	}
	return doc.Node()
}
