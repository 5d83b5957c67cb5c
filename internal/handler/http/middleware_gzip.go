// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/onboarding-intake/internal/app"
	"github.com/MKhiriev/onboarding-intake/internal/utils"
)

// compressedTypes are the response types compressed for gzip-capable clients.
var compressedTypes = []string{"application/json"}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGUnzip transparently decompresses request bodies sent with
// Content-Encoding: gzip. Response compression is left to chi's Compress.
func withGUnzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaderPool.Put(zr)
			utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided)
			return
		}

		body := &pooledGzipBody{Reader: zr, source: r.Body}
		defer body.release()

		r.Body = body
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// pooledGzipBody returns its reader to the pool once the request is done.
type pooledGzipBody struct {
	*gzip.Reader
	source   io.ReadCloser
	released bool
}

func (b *pooledGzipBody) Close() error {
	return b.source.Close()
}

func (b *pooledGzipBody) release() {
	if b.released {
		return
	}
	b.released = true
	_ = b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
}
