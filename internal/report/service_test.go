package report

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"briefgen/internal/domain"
	"briefgen/internal/history"
	"briefgen/internal/prompt"
	"briefgen/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGateway scripts gateway responses per call.
type fakeGateway struct {
	textCalls  []string
	mediaCalls []mediaCall

	reply    string
	failWhen func(call int) error // media call index, 1-based
}

type mediaCall struct {
	prompt   string
	data     []byte
	mimeType string
}

func (f *fakeGateway) GenerateText(_ context.Context, p string) (string, error) {
	f.textCalls = append(f.textCalls, p)
	return f.reply, nil
}

func (f *fakeGateway) GenerateFromMedia(_ context.Context, p string, data []byte, mimeType string) (string, error) {
	f.mediaCalls = append(f.mediaCalls, mediaCall{prompt: p, data: data, mimeType: mimeType})
	if f.failWhen != nil {
		if err := f.failWhen(len(f.mediaCalls)); err != nil {
			return "", err
		}
	}
	return f.reply, nil
}

func newTestService(t *testing.T, gw *fakeGateway, withStore bool) (*Service, *history.Store) {
	t.Helper()
	var store *history.Store
	if withStore {
		store = testutil.NewTestStore(t)
	}
	return NewService(gw, store, "gemini-2.5-flash", rand.New(rand.NewSource(1))), store
}

func dailyParams() domain.GenerationParams {
	return domain.GenerationParams{
		Mode: domain.ModeDaily,
		ProjectSelections: []domain.ClientSelection{
			{Name: "Suining Middle School", Groups: []domain.GroupSelection{
				{Name: "Contract & Finance", Tasks: []domain.TaskEntry{
					{Label: "Contract signed", Status: domain.StatusDone},
				}},
			}},
		},
	}
}

func TestGenerate_Daily(t *testing.T) {
	gw := &fakeGateway{reply: "Report body."}
	svc, store := newTestService(t, gw, true)

	got, err := svc.Generate(context.Background(), dailyParams())
	require.NoError(t, err)
	assert.Equal(t, "Report body.", got)

	require.Len(t, gw.textCalls, 1)
	assert.Contains(t, gw.textCalls[0], "Suining Middle School")
	assert.Contains(t, gw.textCalls[0], "Contract signed")

	saved, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, domain.ModeDaily, saved[0].Mode)
	assert.Equal(t, "Report body.", saved[0].Content)
	assert.Equal(t, "gemini-2.5-flash", saved[0].Model)
	assert.NotEmpty(t, saved[0].ReportDate)
}

func TestGenerate_EmptyInputNotRecorded(t *testing.T) {
	gw := &fakeGateway{reply: "never"}
	svc, store := newTestService(t, gw, true)

	_, err := svc.Generate(context.Background(), domain.GenerationParams{Mode: domain.ModeDaily})
	assert.ErrorIs(t, err, prompt.ErrEmptyInput)
	assert.Empty(t, gw.textCalls)

	saved, err := store.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestGenerate_Meeting_UsesMediaCall(t *testing.T) {
	gw := &fakeGateway{reply: "Minutes."}
	svc, _ := newTestService(t, gw, false)

	p := domain.GenerationParams{
		Mode:             domain.ModeMeeting,
		MeetingAudio:     []byte{0x01, 0x02, 0x03},
		MeetingAudioMIME: "audio/mpeg",
		MeetingContext:   "marketing weekly",
	}
	got, err := svc.Generate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "Minutes.", got)

	require.Len(t, gw.mediaCalls, 1)
	assert.Equal(t, "audio/mpeg", gw.mediaCalls[0].mimeType)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, gw.mediaCalls[0].data)
	assert.Contains(t, gw.mediaCalls[0].prompt, "marketing weekly")
}

func TestGenerate_UnknownMode(t *testing.T) {
	svc, _ := newTestService(t, &fakeGateway{}, false)
	_, err := svc.Generate(context.Background(), domain.GenerationParams{Mode: "hourly"})
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestBatchOCR_FailedFileContinues(t *testing.T) {
	gw := &fakeGateway{
		reply: "extracted text",
		failWhen: func(call int) error {
			if call == 2 {
				return errors.New("boom")
			}
			return nil
		},
	}
	svc, _ := newTestService(t, gw, false)

	files := []OCRFile{
		{Name: "a.png", Data: []byte{1}},
		{Name: "b.png", Data: []byte{2}},
		{Name: "c.png", Data: []byte{3}},
	}

	var progress []string
	got, err := svc.BatchOCR(context.Background(), files, func(i, total int) {
		progress = append(progress, fmt.Sprintf("%d/%d", i, total))
	})
	require.NoError(t, err)

	segments := strings.Split(got, "\n\n")
	require.Len(t, segments, 3)
	assert.Equal(t, "extracted text", segments[0])
	assert.Contains(t, segments[1], "image 2")
	assert.Equal(t, "extracted text", segments[2])

	assert.Equal(t, []string{"1/3", "2/3", "3/3"}, progress)
	assert.Len(t, gw.mediaCalls, 3)
}

func TestBatchOCR_ContextCancelled(t *testing.T) {
	svc, _ := newTestService(t, &fakeGateway{reply: "x"}, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.BatchOCR(ctx, []OCRFile{{Name: "a.png", Data: []byte{1}}}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
