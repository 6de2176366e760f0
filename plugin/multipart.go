package plugin

import (
	"bytes"
	"context"
	"mime"
	"regexp"
	"strings"

	"github.com/advdv/queen"
	"github.com/advdv/queen/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// partHeaderRx is the grammar of a part's header block. Parts whose headers don't match are
// dropped.
var partHeaderRx = regexp.MustCompile(
	`Content-Disposition: form-data; name="([a-zA-Z0-9_-]+)"` +
		`(?:; filename="([a-zA-Z0-9. _-]+)")?` +
		`(?:\r?\nContent-Type: ([a-zA-Z0-9!#$&^_.+-]+/[a-zA-Z0-9!#$&^_.+-]+))?`)

var (
	crlf       = []byte("\r\n")
	headerTerm = []byte("\r\n\r\n")
	dashes     = []byte("--")

	filenameAttr = []byte(`; filename=`)
)

// part is one section of a multipart body.
type part struct {
	name        string
	filename    string
	contentType string
	body        []byte
}

type multipartConfig struct {
	logs *zap.Logger
}

// MultipartOption configures the multipart plugin.
type MultipartOption func(*multipartConfig)

// WithMultipartLogger logs dropped parts at debug level.
func WithMultipartLogger(logs *zap.Logger) MultipartOption {
	return func(c *multipartConfig) { c.logs = logs }
}

// Multipart creates the destination directory and returns a plugin that stores multipart file
// parts in it. See [MultipartTo].
func Multipart(destination string, opts ...MultipartOption) (queen.Handler, error) {
	dir, err := storage.NewDir(destination)
	if err != nil {
		return nil, err
	}

	return MultipartTo(dir, opts...), nil
}

// MultipartTo returns a plugin that parses multipart/form-data bodies. Parts without a filename
// are set as strings on a map[string]any [queen.Request.Body]. Parts with a filename are written
// to the store and listed in [queen.Request.Files]. Files with distinct names are written
// concurrently; a later part with the same filename overwrites an earlier one. The plugin continues
// only after every file was written; a failed write fails the request.
func MultipartTo(store storage.Store, opts ...MultipartOption) queen.Handler {
	cfg := multipartConfig{logs: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return queen.HandlerFunc(func(ctx context.Context, _ *queen.Response, r *queen.Request) (queen.Outcome, error) {
		boundary, ok := multipartBoundary(r.Header().Get("Content-Type"))
		if !ok || len(r.Buffer) == 0 {
			return queen.Continue, nil
		}

		fields := map[string]any{}
		var uploads []part
		for _, p := range splitParts(r.Buffer, boundary) {
			switch {
			case p.name == "":
				cfg.logs.Debug("dropping multipart part with malformed header")
			case p.filename == "":
				fields[p.name] = strings.ToValidUTF8(string(p.body), "\uFFFD")
			case storage.CheckName(p.filename) != nil:
				cfg.logs.Debug("dropping multipart file with unsafe name", zap.String("filename", p.filename))
			default:
				uploads = append(uploads, p)
			}
		}

		// parts sharing a filename are written one after another, so the last part wins
		var order []string
		byName := map[string][]int{}
		for i, p := range uploads {
			if _, ok := byName[p.filename]; !ok {
				order = append(order, p.filename)
			}
			byName[p.filename] = append(byName[p.filename], i)
		}

		files := make([]queen.File, len(uploads))
		eg, ctx := errgroup.WithContext(ctx)
		for _, name := range order {
			eg.Go(func() error {
				for _, i := range byName[name] {
					p := uploads[i]
					path, err := store.Put(ctx, p.filename, p.body)
					if err != nil {
						return err
					}

					files[i] = queen.File{Name: p.name, Filename: p.filename, ContentType: p.contentType, Path: path}
				}
				return nil
			})
		}

		if err := eg.Wait(); err != nil {
			return queen.Stop, err
		}

		r.Body, r.Files = fields, files
		return queen.Continue, nil
	})
}

// multipartBoundary returns the boundary of a multipart/form-data content type.
func multipartBoundary(contentType string) (string, bool) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "multipart/form-data" || params["boundary"] == "" {
		return "", false
	}

	return params["boundary"], true
}

// splitParts scans buf for parts delimited by the boundary. The scan works on bytes, so file
// contents are only cut at a line break followed by the delimiter.
func splitParts(buf []byte, boundary string) []part {
	delim := append(append([]byte(nil), dashes...), boundary...)
	start := bytes.Index(buf, delim)
	if start < 0 {
		return nil
	}

	next := append(append([]byte(nil), crlf...), delim...)
	rest := buf[start+len(delim):]

	var parts []part
	for len(rest) > 0 && !bytes.HasPrefix(rest, dashes) {
		rest = bytes.TrimPrefix(rest, crlf)

		var raw []byte
		if end := bytes.Index(rest, next); end >= 0 {
			raw, rest = rest[:end], rest[end+len(next):]
		} else {
			raw, rest = bytes.TrimSuffix(rest, crlf), nil
		}

		parts = append(parts, parsePart(raw))
	}

	return parts
}

// parsePart splits a raw part into its header block and body. A part without a recognizable header
// is returned without a name.
func parsePart(raw []byte) part {
	headerEnd := bytes.Index(raw, headerTerm)
	if headerEnd < 0 {
		return part{}
	}

	header := raw[:headerEnd]
	m := partHeaderRx.FindSubmatch(header)
	if m == nil || (len(m[2]) == 0 && bytes.Contains(header, filenameAttr)) {
		return part{}
	}

	p := part{name: string(m[1]), body: raw[headerEnd+len(headerTerm):]}
	if len(m[2]) > 0 {
		p.filename, p.contentType = string(m[2]), string(m[3])
	}

	return p
}
