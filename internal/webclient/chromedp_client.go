package webclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"

	"github.com/raysh454/fetchurl/internal/interfaces"
	"github.com/raysh454/fetchurl/internal/model"
)

var (
	// ErrMethodNotSupported is returned for anything but GET; a browser
	// navigation cannot carry another method.
	ErrMethodNotSupported = errors.New("method not supported by chromedp backend")

	// ErrNoDocument means navigation finished without a main document response.
	ErrNoDocument = errors.New("no document response received")
)

// ChromedpClient loads pages in a headless browser. HTML documents are returned
// as rendered DOM; any other document type is returned as the raw body.
type ChromedpClient struct {
	cfg         Config
	logger      interfaces.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpClient prepares a browser allocator. The browser itself is only
// started by the first Do.
func NewChromedpClient(cfg Config, logger interfaces.Logger) (*ChromedpClient, error) {
	if cfg.IdleAfter <= 0 {
		cfg.IdleAfter = DefaultConfig().IdleAfter
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = DefaultConfig().MaxWait
	}

	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if cfg.SkipVerify {
		opts = append(opts, chromedp.Flag("ignore-certificate-errors", true))
	}
	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	componentLogger := logger.With(interfaces.Field{Key: "backend", Value: string(ClientChromedp)})
	componentLogger.Debug("created chromedp webclient",
		interfaces.Field{Key: "idle_after", Value: cfg.IdleAfter.String()},
		interfaces.Field{Key: "skip_verify", Value: cfg.SkipVerify})

	return &ChromedpClient{
		cfg:         cfg,
		logger:      componentLogger,
		allocCtx:    allocCtx,
		allocCancel: cancel,
	}, nil
}

// waitNetworkIdle returns a channel that receives once no request has been in
// flight for idleAfter.
func waitNetworkIdle(ctx context.Context, idleAfter time.Duration) <-chan struct{} {
	idleChan := make(chan struct{}, 1)
	var activeReqs int32
	var timer *time.Timer
	var timerMutex sync.Mutex
	var once sync.Once

	startTimer := func() {
		timerMutex.Lock()
		defer timerMutex.Unlock()

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(idleAfter, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() {
					idleChan <- struct{}{}
				})
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			atomic.AddInt32(&activeReqs, 1)
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			if atomic.AddInt32(&activeReqs, -1) <= 0 {
				startTimer()
			}
		}
	})

	return idleChan
}

func (cdc *ChromedpClient) Do(ctx context.Context, req *model.Request) (*model.Response, error) {
	if req == nil {
		return nil, errors.WithStack(ErrNilRequest)
	}
	if m := strings.ToUpper(req.Method); m != "" && m != http.MethodGet {
		return nil, errors.Wrapf(ErrMethodNotSupported, "%s", m)
	}

	tabCtx, cancel := chromedp.NewContext(cdc.allocCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var (
		mu      sync.Mutex
		docResp *network.Response
		docID   network.RequestID
	)
	chromedp.ListenTarget(tabCtx, func(ev any) {
		e, ok := ev.(*network.EventResponseReceived)
		if !ok || e.Type != network.ResourceTypeDocument {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if docResp == nil {
			docResp = e.Response
			docID = e.RequestID
		}
	})
	idle := waitNetworkIdle(tabCtx, cdc.cfg.IdleAfter)

	cdc.logger.Debug("navigating", interfaces.Field{Key: "url", Value: req.URL})
	if err := chromedp.Run(tabCtx, network.Enable(), chromedp.Navigate(req.URL)); err != nil {
		return nil, errors.Wrap(err, "navigate")
	}

	select {
	case <-idle:
	case <-time.After(cdc.cfg.MaxWait):
		cdc.logger.Debug("network did not go idle, reading page anyway",
			interfaces.Field{Key: "max_wait", Value: cdc.cfg.MaxWait.String()})
	case <-tabCtx.Done():
		return nil, errors.Wrap(tabCtx.Err(), "wait for network idle")
	}

	mu.Lock()
	resp, reqID := docResp, docID
	mu.Unlock()
	if resp == nil {
		return nil, errors.WithStack(ErrNoDocument)
	}

	headers := http.Header{}
	for k, v := range resp.Headers {
		// CDP joins repeated headers with newlines.
		for _, part := range strings.Split(fmt.Sprint(v), "\n") {
			headers.Add(k, part)
		}
	}

	var body []byte
	if strings.HasPrefix(resp.MimeType, "text/html") {
		var html string
		if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html)); err != nil {
			return nil, errors.Wrap(err, "read rendered html")
		}
		body = []byte(html)
	} else {
		err := chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			body, err = network.GetResponseBody(reqID).Do(ctx)
			return err
		}))
		if err != nil {
			return nil, errors.Wrap(err, "read response body")
		}
	}

	return &model.Response{
		Request:    req,
		Headers:    headers,
		Body:       body,
		StatusCode: int(resp.Status),
		FetchedAt:  time.Now(),
	}, nil
}

func (cdc *ChromedpClient) Get(ctx context.Context, url string) (*model.Response, error) {
	return cdc.Do(ctx, &model.Request{Method: http.MethodGet, URL: url})
}

func (cdc *ChromedpClient) Close() error {
	cdc.allocCancel()
	return nil
}
