package cli

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/spf13/cobra"

	"github.com/nakhla/datesqr/core/storage"
	"github.com/nakhla/datesqr/internal/catalog"
	"github.com/nakhla/datesqr/pkg/async"
	"github.com/nakhla/datesqr/pkg/productqr"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

var ErrNoProductSelected = errors.New("use --product, --all, or --id with product fields")

type generateFlags struct {
	product      string
	all          bool
	lang         string
	data         productqr.ProductQRData
	level        string
	width        int
	margin       int
	foreground   string
	background   string
	out          string
	dir          string
	printPayload bool
	dataURI      bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render product QR codes to storage",
		Long: `Render a QR code for a catalog product (--product, --all) or for data
given on the command line (--id, --variety, --producer, ...).

Codes are saved through the configured storage as qr-<variety>-<id>.png
unless --out names a file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), a, f, cmd.OutOrStdout())
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.product, "product", "p", "", "Catalog product id")
	fl.BoolVar(&f.all, "all", false, "Render every catalog product")
	fl.StringVar(&f.lang, "lang", "en", "Language of product texts (en, ar)")
	fl.StringVar(&f.data.ProductID, "id", "", "Product id")
	fl.StringVar(&f.data.Variety, "variety", "", "Date variety")
	fl.StringVar(&f.data.Producer, "producer", "", "Producer name")
	fl.StringVar(&f.data.Location, "location", "", "Producer location")
	fl.StringVar(&f.data.Grade, "grade", "", "Quality grade")
	fl.StringVar(&f.data.HarvestDate, "harvest-date", "", "Harvest date (ISO 8601)")
	fl.StringVar(&f.data.URL, "url", "", "Product page URL; defaults to BASE_URL/product/<id>")
	fl.StringVar(&f.level, "level", "", "Error correction level (L, M, Q, H); overrides QR_ERROR_CORRECTION")
	fl.IntVar(&f.width, "width", 0, "Image width in pixels; overrides QR_WIDTH")
	fl.IntVar(&f.margin, "margin", -1, "Quiet zone in modules; overrides QR_MARGIN")
	fl.StringVar(&f.foreground, "fg", "", "Foreground color (#RRGGBB)")
	fl.StringVar(&f.background, "bg", "", "Background color (#RRGGBB)")
	fl.StringVarP(&f.out, "out", "o", "", "Write the PNG to this file instead of storage")
	fl.StringVar(&f.dir, "dir", "", "Local storage directory; overrides STORAGE_DRIVER and STORAGE_LOCAL_DIR")
	fl.BoolVar(&f.printPayload, "print-payload", false, "Print the encoded payload")
	fl.BoolVar(&f.dataURI, "data-uri", false, "Print the PNG as a data URI")

	cmd.MarkFlagsMutuallyExclusive("product", "all", "id")
	cmd.MarkFlagsMutuallyExclusive("all", "out")
	return cmd
}

func (f *generateFlags) renderOptions() ([]qrcode.Option, error) {
	var opts []qrcode.Option
	if f.level != "" {
		level, err := qrcode.ParseLevel(f.level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, qrcode.WithLevel(level))
	}
	if f.width > 0 {
		opts = append(opts, qrcode.WithWidth(f.width))
	}
	if f.margin >= 0 {
		opts = append(opts, qrcode.WithMargin(f.margin))
	}
	for _, c := range []struct {
		value string
		apply func(color.Color) qrcode.Option
	}{
		{f.foreground, qrcode.WithForeground},
		{f.background, qrcode.WithBackground},
	} {
		if c.value == "" {
			continue
		}
		col, err := qrcode.ParseColor(c.value)
		if err != nil {
			return nil, err
		}
		opts = append(opts, c.apply(col))
	}
	return opts, nil
}

// targets resolves the product data to render.
func (f *generateFlags) targets(baseURL string) ([]productqr.ProductQRData, error) {
	switch {
	case f.all:
		all := catalog.All()
		out := make([]productqr.ProductQRData, 0, len(all))
		for _, p := range all {
			out = append(out, catalog.QRData(p, f.lang, baseURL))
		}
		return out, nil
	case f.product != "":
		p, err := catalog.Find(f.product)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, f.product)
		}
		return []productqr.ProductQRData{catalog.QRData(p, f.lang, baseURL)}, nil
	case f.data.ProductID != "":
		data := f.data
		if data.URL == "" {
			data.URL = baseURL + "/product/" + data.ProductID
		}
		return []productqr.ProductQRData{data}, nil
	}
	return nil, ErrNoProductSelected
}

func runGenerate(ctx context.Context, a *app, f *generateFlags, out io.Writer) error {
	targets, err := f.targets(a.cfg.BaseURL)
	if err != nil {
		return err
	}
	extra, err := f.renderOptions()
	if err != nil {
		return err
	}

	var store storage.Storage
	if f.out == "" {
		if f.dir != "" {
			store, err = storage.NewLocal(f.dir)
		} else {
			store, err = a.storage(ctx)
		}
		if err != nil {
			return err
		}
	}

	gen, err := a.generator(store, extra...)
	if err != nil {
		return err
	}

	futures := make([]*async.Future[*productqr.Result], 0, len(targets))
	for _, data := range targets {
		futures = append(futures, async.Async(ctx, data, func(ctx context.Context, data productqr.ProductQRData) (*productqr.Result, error) {
			return gen.Generate(ctx, data)
		}))
	}
	results, err := async.WaitAll(futures...)
	if err != nil {
		return err
	}

	for _, res := range results {
		location := f.out
		if f.out != "" {
			if err := qrcode.SaveFile(res.Image, f.out); err != nil {
				return err
			}
		} else {
			file, err := gen.Save(ctx, res)
			if err != nil {
				return err
			}
			location = gen.URL(file.RelativePath)
		}

		fmt.Fprintf(out, "%s\t%s\t%dx%d\t%s\n", res.Data.ProductID, res.Image.Level(), res.Image.Width(), res.Image.Width(), location)
		if f.printPayload {
			fmt.Fprintln(out, res.Payload)
		}
		if f.dataURI {
			fmt.Fprintln(out, res.DataURI())
		}
	}
	return nil
}
