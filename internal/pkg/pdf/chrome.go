package pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Engine converts a rendered HTML document into PDF bytes. baseURL is used
// to resolve relative references (stylesheets, images) inside the HTML.
type Engine interface {
	Render(ctx context.Context, html string, baseURL string) ([]byte, error)
}

// ChromeEngine prints HTML through a headless Chrome tab.
type ChromeEngine struct {
	execPath string
	timeout  time.Duration
}

func NewChromeEngine(execPath string, timeout time.Duration) *ChromeEngine {
	return &ChromeEngine{
		execPath: execPath,
		timeout:  timeout,
	}
}

func (e *ChromeEngine) Render(ctx context.Context, html string, baseURL string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true), // Required for systemd/Docker
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-software-rasterizer", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, e.timeout)
	defer cancelTimeout()

	var buf []byte
	err := chromedp.Run(tabCtx,
		// Navigate to the base URL first so relative references in the
		// injected document resolve against it.
		chromedp.Navigate(baseURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("chromedp render: %w", err)
	}
	return buf, nil
}
