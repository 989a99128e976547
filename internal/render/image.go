package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

type ImageFormat string

const (
	ImageSVG ImageFormat = "svg"
	ImagePNG ImageFormat = "png"
)

func ParseImageFormat(s string) (ImageFormat, error) {
	switch ImageFormat(strings.ToLower(s)) {
	case ImageSVG:
		return ImageSVG, nil
	case ImagePNG:
		return ImagePNG, nil
	default:
		return "", fmt.Errorf("invalid image format %q: must be \"svg\" or \"png\"", s)
	}
}

// Image lays out and rasterizes DOT source with the embedded Graphviz engine.
func Image(ctx context.Context, dot string, format ImageFormat) ([]byte, error) {
	var gvFormat graphviz.Format
	switch format {
	case ImageSVG:
		gvFormat = graphviz.SVG
	case ImagePNG:
		gvFormat = graphviz.PNG
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, gvFormat, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}
