package c64conv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var imageExtensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

func isImage(name string) bool {
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// outputName mirrors the source path below dst, with the extension
// rewritten to .png.
func outputName(file, base, dst string) (string, error) {
	rel, err := filepath.Rel(base, file)
	if err != nil {
		return "", err
	}
	return filepath.Join(dst, strings.TrimSuffix(rel, filepath.Ext(rel))+".png"), nil
}

func (c *Converter) findImages(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)

		// Walk with an explicit stack; recursion depth should not be
		// bounded by how deep someone nests their picture folders.
		stack := []string{base}
		for len(stack) > 0 {
			dir := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			entries, err := os.ReadDir(dir)
			if err != nil {
				errc <- err
				return
			}

			for _, entry := range entries {
				// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
				if entry.Name()[0] == '.' {
					continue
				}

				path := filepath.Join(dir, entry.Name())

				if entry.IsDir() {
					stack = append(stack, path)
					continue
				}

				if !entry.Type().IsRegular() || !isImage(entry.Name()) {
					continue
				}

				select {
				case out <- path:
				case <-ctx.Done():
					errc <- errors.New("walk cancelled")
					return
				}
			}
		}
	}()
	return out, errc, nil
}

func (c *Converter) convertWorker(ctx context.Context, in <-chan string, base, dst string) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			name, err := outputName(file, base, dst)
			if err != nil {
				errc <- err
				return
			}

			// A broken source only costs us that one image, the rest
			// of the batch keeps going.
			if err := c.ConvertFile(file, name); err != nil {
				c.logger.Printf("skipping \"%s\": %v\n", file, err)
				continue
			}

			c.logger.Printf("converted \"%s\" to \"%s\"\n", file, name)
		}
	}()
	return errc, nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// ConvertTree converts every image found under src into a mirrored
// tree below dst. Per-image failures are logged and skipped; only a
// failure of the walk itself aborts the batch.
func (c *Converter) ConvertTree(src, dst string) error {
	base, err := filepath.Abs(src)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := c.findImages(ctx, base)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < c.config.Workers; i++ {
		errc, err := c.convertWorker(ctx, files, base, dst)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}

// Convert routes src to ConvertFile or ConvertTree depending on
// whether it is a file or a directory. For a single file, dst may name
// either the output file or an existing directory to place it in.
func (c *Converter) Convert(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return c.ConvertTree(src, dst)
	}

	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		name := filepath.Base(src)
		dst = filepath.Join(dst, strings.TrimSuffix(name, filepath.Ext(name))+".png")
	}

	return c.ConvertFile(src, dst)
}
