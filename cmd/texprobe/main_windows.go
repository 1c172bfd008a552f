// Command texprobe exercises the shared texture pipeline end to end:
// it creates a renderer, opens the exported handle on a second device
// the way a host compositor would, paints a test color through that
// device, and reads the pixels back.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
	"unsafe"

	"golang.org/x/image/bmp"
	"golang.org/x/sys/windows"

	"github.com/gogpu/sharedtex"
	"github.com/gogpu/sharedtex/internal/d3d11"
)

func main() {
	var (
		width   = flag.Int("width", 1920, "texture width")
		height  = flag.Int("height", 1080, "texture height")
		resize  = flag.String("resize", "", "resize to WxH after creation (e.g. 1280x720)")
		dump    = flag.String("dump", "", "write the composited frame to this BMP file")
		timeout = flag.Duration("timeout", 5*time.Second, "frame lock wait budget")
		verbose = flag.Bool("v", false, "log renderer internals")
	)
	flag.Parse()

	if *verbose {
		sharedtex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	r, err := sharedtex.New(*width, *height, sharedtex.WithFlushTimeout(*timeout))
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	defer r.Close()

	major, minor := r.FeatureLevel()
	log.Printf("renderer %d up: feature level %d_%d, handle %#x (%dx%d)",
		r.ID(), major, minor, r.Handle().Value(), *width, *height)

	if *resize != "" {
		w, h, err := parseSize(*resize)
		if err != nil {
			log.Fatalf("bad -resize: %v", err)
		}
		if err := r.Resize(w, h); err != nil {
			log.Fatalf("resize: %v", err)
		}
		log.Printf("resized to %dx%d, handle %#x", w, h, r.Handle().Value())
	}

	frame, err := compositeFrame(r)
	if err != nil {
		log.Fatalf("composite frame: %v", err)
	}
	log.Printf("frame read back: %dx%d, corner pixel %v",
		frame.Rect.Dx(), frame.Rect.Dy(), frame.NRGBAAt(0, 0))

	if *dump != "" {
		if err := writeBMP(*dump, frame); err != nil {
			log.Fatalf("dump frame: %v", err)
		}
		log.Printf("frame written to %s", *dump)
	}
}

func parseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	if width, err = strconv.Atoi(ws); err != nil {
		return 0, 0, err
	}
	if height, err = strconv.Atoi(hs); err != nil {
		return 0, 0, err
	}
	return width, height, nil
}

// compositeFrame plays the host compositor: it opens the renderer's
// handle on its own device, paints the shared texture, lets the
// producer flush, and reads the result back into CPU memory.
func compositeFrame(r *sharedtex.Renderer) (*image.NRGBA, error) {
	h := r.Handle()
	if !h.Valid() {
		return nil, fmt.Errorf("renderer has no texture")
	}

	dev, ctx, _, err := d3d11.NewDevice(-1)
	if err != nil {
		return nil, err
	}
	defer dev.Release()
	defer ctx.Release()

	tex, err := dev.OpenSharedTexture2D(windows.Handle(h.Value()))
	if err != nil {
		return nil, err
	}
	defer tex.Release()

	rtv, err := dev.CreateRenderTargetView(tex)
	if err != nil {
		return nil, err
	}
	defer rtv.Release()

	// Paint an unmistakable orange.
	ctx.ClearRenderTargetView(rtv, [4]float32{1, 0.5, 0, 1})
	ctx.Flush()

	// Producer-side flush, the call a real pipeline makes per frame.
	if err := r.Flush(); err != nil {
		return nil, err
	}

	return readback(dev, ctx, tex)
}

// readback copies tex through a staging texture and converts the BGRA
// rows to an NRGBA image.
func readback(dev *d3d11.Device, ctx *d3d11.DeviceContext, tex *d3d11.Texture2D) (*image.NRGBA, error) {
	desc := tex.Desc()
	stagingDesc := d3d11.D3D11_TEXTURE2D_DESC{
		Width:          desc.Width,
		Height:         desc.Height,
		MipLevels:      1,
		ArraySize:      1,
		Format:         desc.Format,
		SampleDesc:     d3d11.DXGI_SAMPLE_DESC{Count: 1},
		Usage:          d3d11.D3D11_USAGE_STAGING,
		CPUAccessFlags: d3d11.D3D11_CPU_ACCESS_READ,
	}
	staging, err := dev.CreateTexture2D(&stagingDesc)
	if err != nil {
		return nil, err
	}
	defer staging.Release()

	ctx.CopyResource(staging, tex)
	mapped, err := ctx.Map(staging, 0, d3d11.D3D11_MAP_READ, 0)
	if err != nil {
		return nil, err
	}
	defer ctx.Unmap(staging, 0)

	w, h := int(desc.Width), int(desc.Height)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		base := mapped.PData + uintptr(y)*uintptr(mapped.RowPitch)
		row := unsafe.Slice((*byte)(unsafe.Pointer(base)), w*4)
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: row[x*4+2],
				G: row[x*4+1],
				B: row[x*4+0],
				A: row[x*4+3],
			})
		}
	}
	return img, nil
}

func writeBMP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
