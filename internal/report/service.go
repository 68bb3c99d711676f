// Package report orchestrates generation requests: style draw, prompt
// assembly, the gateway call, and history recording.
package report

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"briefgen/internal/catalog"
	"briefgen/internal/domain"
	"briefgen/internal/gemini"
	"briefgen/internal/history"
	"briefgen/internal/prompt"
)

// ErrUnknownMode indicates a request with a mode outside the known set.
var ErrUnknownMode = errors.New("unknown report mode")

// ocrFailureMarker annotates a file that could not be processed; the
// batch continues past it.
const ocrFailureMarker = "--- image %d could not be processed ---"

// Service runs generation requests end to end. Calls are independent:
// each operates on its own immutable params and the service holds no
// per-request state.
type Service struct {
	gateway gemini.Gateway
	store   *history.Store // nil disables history recording
	model   string

	mu  sync.Mutex
	rng *rand.Rand

	now func() time.Time
}

// NewService creates a Service. store may be nil when history recording
// is not wanted. rng seeds the per-request style draw; pass a fixed
// source in tests.
func NewService(gateway gemini.Gateway, store *history.Store, model string, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		gateway: gateway,
		store:   store,
		model:   model,
		rng:     rng,
		now:     time.Now,
	}
}

// Generate assembles the prompt for the request's mode, invokes the
// gateway, and returns the generated text. Successful results are
// recorded in the history store on a best-effort basis.
func (s *Service) Generate(ctx context.Context, p domain.GenerationParams) (string, error) {
	if p.Date == "" {
		p.Date = s.now().Format("2006-01-02")
	}

	style := s.pickStyle()

	var (
		text string
		err  error
	)
	switch p.Mode {
	case domain.ModeDaily:
		var instruction string
		if instruction, err = prompt.BuildDaily(p, style); err == nil {
			text, err = s.gateway.GenerateText(ctx, instruction)
		}
	case domain.ModeWeekly:
		var instruction string
		if instruction, err = prompt.BuildWeekly(p, style); err == nil {
			text, err = s.gateway.GenerateText(ctx, instruction)
		}
	case domain.ModeMeeting:
		var instruction string
		if instruction, err = prompt.BuildMeeting(p); err == nil {
			mime := p.MeetingAudioMIME
			if mime == "" {
				mime = "audio/wav"
			}
			text, err = s.gateway.GenerateFromMedia(ctx, instruction, p.MeetingAudio, mime)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, p.Mode)
	}
	if err != nil {
		return "", err
	}

	if s.store != nil {
		// Recording is best effort; a storage failure never loses the
		// generated text.
		_, _ = s.store.Save(ctx, p.Mode, p.Date, text, s.model)
	}
	return text, nil
}

// OCRFile is one image in a batch extraction request.
type OCRFile struct {
	Name     string
	Data     []byte
	MIMEType string
}

// ProgressFunc reports batch progress as (index, total), index 1-based.
type ProgressFunc func(index, total int)

// BatchOCR extracts text from each image in order. A file that fails is
// embedded as an annotated marker and processing continues with the
// rest. The aggregated result keeps one segment per input file.
func (s *Service) BatchOCR(ctx context.Context, files []OCRFile, progress ProgressFunc) (string, error) {
	segments := make([]string, 0, len(files))
	for i, f := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if progress != nil {
			progress(i+1, len(files))
		}

		mime := f.MIMEType
		if mime == "" {
			mime = "image/png"
		}
		text, err := s.gateway.GenerateFromMedia(ctx, prompt.OCRPrompt, f.Data, mime)
		if err != nil {
			segments = append(segments, fmt.Sprintf(ocrFailureMarker, i+1))
			continue
		}
		segments = append(segments, strings.TrimSpace(text))
	}
	return strings.Join(segments, "\n\n"), nil
}

func (s *Service) pickStyle() catalog.Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.PickStyle(s.rng)
}
