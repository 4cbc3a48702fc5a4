package hivemarkup

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func BenchmarkRenderSamples(b *testing.B) {
	for _, s := range readSamples(b) {
		b.Run(s.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(s.post)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := Render(s.post, UTF8); err != nil {
					b.Fatalf("render: %v", err)
				}
			}
		})
	}
}

func BenchmarkRenderLargePost(b *testing.B) {
	var post bytes.Buffer
	for _, s := range readSamples(b) {
		post.Write(s.post)
		post.WriteByte('\n')
	}
	data := bytes.Repeat(post.Bytes(), 64)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Render(data, UTF8); err != nil {
			b.Fatalf("render: %v", err)
		}
	}
}

func BenchmarkRenderParallel(b *testing.B) {
	samples := readSamples(b)
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			s := samples[i%len(samples)]
			if _, err := Render(s.post, UTF8); err != nil {
				b.Errorf("render: %v", err)
				return
			}
			i++
		}
	})
}

func BenchmarkRenderURL(b *testing.B) {
	data := readSamples(b)[0].post
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}))
	defer server.Close()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := RenderURL(context.Background(), URLRenderRequest{URL: server.URL}); err != nil {
			b.Fatalf("render url: %v", err)
		}
	}
}
