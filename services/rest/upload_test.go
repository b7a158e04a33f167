package restsvc

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/content"
	testutil "github.com/shareulbi/webcore/tests"
)

func newContentService(t *testing.T) (*content.Service, *testutil.FakeAPI) {
	t.Helper()
	fake := testutil.NewFakeAPI()
	t.Cleanup(fake.Close)

	client, err := NewClient(&core.Config{APIBaseURL: fake.URL()})
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return content.NewService(client), fake
}

func Test_ContentService_uploadWithProgress(t *testing.T) {
	svc, fake := newContentService(t)

	payload := strings.Repeat("v", 4096)
	var (
		progressMu sync.Mutex
		lastSent   int64
		total      int64
	)

	up := content.Upload{
		Title:       "Belajar Go",
		Description: "Materi dasar pemrograman Go",
		CategoryID:  "1",
		Filename:    "belajar-go.mp4",
		File:        strings.NewReader(payload),
		Size:        int64(len(payload)),
	}
	err := svc.UploadELearning(context.Background(), up, core.WithUploadProgress(func(sent, size int64) {
		progressMu.Lock()
		lastSent, total = sent, size
		progressMu.Unlock()
	}))
	if err != nil {
		t.Fatalf("UploadELearning() failed: %v", err)
	}

	uploads := fake.Uploads()
	if assert.Len(t, uploads, 1) {
		assert.Equal(t, "/e-learning", uploads[0].Path)
		assert.Equal(t, "Belajar Go", uploads[0].Title)
		assert.Equal(t, "belajar-go.mp4", uploads[0].Filename)
		assert.Equal(t, int64(len(payload)), uploads[0].Size)
	}

	progressMu.Lock()
	defer progressMu.Unlock()
	assert.Equal(t, total, lastSent)
	assert.True(t, total > int64(len(payload))) // multipart framing on top of the file
}

func Test_ContentService_uploadWork(t *testing.T) {
	svc, fake := newContentService(t)

	up := content.Upload{
		Title:       "Analisis Sistem Akademik",
		Description: "Laporan tugas akhir",
		CategoryID:  "1",
		Filename:    "laporan.pdf",
		File:        strings.NewReader("%PDF-1.4 fake"),
		Size:        13,
	}
	if err := svc.UploadWork(context.Background(), up); err != nil {
		t.Fatalf("UploadWork() failed: %v", err)
	}

	uploads := fake.Uploads()
	if assert.Len(t, uploads, 1) {
		assert.Equal(t, "/works", uploads[0].Path)
	}
}

func Test_ContentService_uploadRejectsOversizedFile(t *testing.T) {
	svc, fake := newContentService(t)

	up := content.Upload{
		Title:       "Belajar Go",
		Description: "Materi dasar",
		CategoryID:  "1",
		Filename:    "raw.mov",
		File:        strings.NewReader("never read"),
		Size:        content.MaxUploadSize + 1,
	}
	err := svc.UploadELearning(context.Background(), up)

	vErr, ok := errors.Cause(err).(*core.ValidationError)
	if !ok {
		t.Fatalf("expected *core.ValidationError, got %#v", err)
	}
	if assert.Len(t, vErr.Fields, 1) {
		assert.Equal(t, "file", vErr.Fields[0].Field)
	}
	assert.Empty(t, fake.Uploads()) // nothing left the client
}
