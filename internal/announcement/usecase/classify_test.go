package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"img2cal/internal/announcement"
	"img2cal/internal/announcement/repository"
	"img2cal/internal/announcement/usecase"
	"img2cal/internal/model"
	"img2cal/pkg/openai"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	records map[string]*model.Announcement
}

func newMockRepo(records ...*model.Announcement) *mockRepo {
	m := &mockRepo{records: make(map[string]*model.Announcement)}
	for _, a := range records {
		m.records[a.ID] = a
	}
	return m
}

func (m *mockRepo) Create(ctx context.Context, a model.Announcement) error {
	m.records[a.ID] = &a
	return nil
}

func (m *mockRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := m.records[id]
	return ok, nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (model.Announcement, error) {
	a, ok := m.records[id]
	if !ok {
		return model.Announcement{}, announcement.ErrNotFound
	}
	copied := *a
	copied.Images = append([]model.Image(nil), a.Images...)
	return copied, nil
}

func (m *mockRepo) List(ctx context.Context) ([]model.Announcement, error) {
	var out []model.Announcement
	for _, a := range m.records {
		out = append(out, *a)
	}
	return out, nil
}

func (m *mockRepo) SetImageOCRText(ctx context.Context, id string, index int, ocrText string) error {
	a, ok := m.records[id]
	if !ok {
		return announcement.ErrNotFound
	}
	if a.Images[index].OCRText == "" {
		a.Images[index].OCRText = ocrText
	}
	return nil
}

func (m *mockRepo) SetVerification(ctx context.Context, id string, opt repository.VerificationUpdate) error {
	a, ok := m.records[id]
	if !ok {
		return announcement.ErrNotFound
	}
	approved := opt.Approved
	a.Approved = &approved
	a.CalendarData = opt.CalendarData
	a.Reason = opt.Reason
	a.RevalidationRequested = opt.RevalidationRequested
	return nil
}

type mockOCR struct {
	texts    map[string]string // url -> extracted text
	failURLs map[string]bool
	calls    []string
}

func (m *mockOCR) ExtractText(ctx context.Context, imageURL string) (string, error) {
	m.calls = append(m.calls, imageURL)
	if m.failURLs[imageURL] {
		return "", errors.New("vision unavailable")
	}
	return m.texts[imageURL], nil
}

// llmScript serves scripted classifier responses and records the user
// payload of every request.
type llmScript struct {
	responses []string
	payloads  []string
	calls     int
}

func (s *llmScript) server(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode chat request: %v", err)
		}
		s.payloads = append(s.payloads, req.Messages[len(req.Messages)-1].Content)

		if s.calls >= len(s.responses) {
			t.Fatalf("classifier called %d times, only %d responses scripted", s.calls+1, len(s.responses))
		}
		raw := s.responses[s.calls]
		s.calls++

		body := openai.ChatResponse{
			Choices: []openai.Choice{
				{Message: openai.Message{Role: "assistant", Content: raw}},
			},
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(body)
	}))
}

func testAnnouncement(id string, imageCount int) *model.Announcement {
	a := &model.Announcement{
		ID:    id,
		Title: "AI 특강 안내",
		URL:   "https://www.jbnu.ac.kr/web/news/notice/" + id,
		Body:  "공과대학 특강 안내입니다.",
	}
	for i := 0; i < imageCount; i++ {
		a.Images = append(a.Images, model.Image{URL: fmt.Sprintf("https://img.example/%s/%d", id, i)})
	}
	return a
}

const approvedResponse = `{
	"status": "approved",
	"reason": "activity period identified",
	"calendar": {
		"discipline": "Engineering",
		"applicationPeriod": {"startTime": null, "endTime": null},
		"activityPeriod": {"startTime": "2024-12-23T13:30:00", "endTime": null},
		"eventType": "SeminarLecture",
		"location": "공대 7호관",
		"description": "AI 특강"
	}
}`

func TestClassifyRound(t *testing.T) {
	ctx := context.Background()

	newUC := func(script *llmScript, repo *mockRepo, ocr *mockOCR) announcement.UseCase {
		t.Helper()
		ts := script.server(t)
		t.Cleanup(ts.Close)

		llm := openai.NewClient("test-key")
		llm.SetAPIURL(ts.URL)

		return usecase.New(&mockLogger{}, llm, ocr, repo)
	}

	t.Run("Approved persists decision and calendar data", func(t *testing.T) {
		repo := newMockRepo(testAnnouncement("100", 1))
		ocr := &mockOCR{texts: map[string]string{"https://img.example/100/0": "포스터 텍스트"}}
		uc := newUC(&llmScript{responses: []string{approvedResponse}}, repo, ocr)

		out, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != model.StatusApproved {
			t.Errorf("status = %s", out.Status)
		}
		if out.NextImageCount != 0 {
			t.Errorf("next count should be absent, got %d", out.NextImageCount)
		}

		stored := repo.records["100"]
		if stored.Approved == nil || !*stored.Approved {
			t.Errorf("approval not persisted")
		}
		if stored.CalendarData == nil || stored.CalendarData.EventType != model.EventSeminarLecture {
			t.Errorf("calendar data not persisted: %+v", stored.CalendarData)
		}
	})

	t.Run("Invalid image count is clamped to 1", func(t *testing.T) {
		repo := newMockRepo(testAnnouncement("100", 3))
		ocr := &mockOCR{texts: map[string]string{}}
		script := &llmScript{responses: []string{approvedResponse}}
		uc := newUC(script, repo, ocr)

		if _, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: -2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(script.payloads[0], `"currentImageCount": 1`) {
			t.Errorf("payload did not use clamped count:\n%s", script.payloads[0])
		}
		if len(ocr.calls) != 1 {
			t.Errorf("ocr calls = %d, want 1", len(ocr.calls))
		}
	})

	t.Run("Count above total is capped", func(t *testing.T) {
		repo := newMockRepo(testAnnouncement("100", 2))
		ocr := &mockOCR{texts: map[string]string{}}
		script := &llmScript{responses: []string{approvedResponse}}
		uc := newUC(script, repo, ocr)

		if _, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(script.payloads[0], `"currentImageCount": 2`) {
			t.Errorf("payload did not cap count:\n%s", script.payloads[0])
		}
	})

	t.Run("Needs more images advances by two, capped at total", func(t *testing.T) {
		needsMore := `{"status": "needs_more_images", "reason": "poster unreadable"}`

		cases := []struct {
			name     string
			total    int
			current  int
			wantNext int
		}{
			{name: "1 of 5 advances to 3", total: 5, current: 1, wantNext: 3},
			{name: "4 of 5 caps at 5", total: 5, current: 4, wantNext: 5},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repo := newMockRepo(testAnnouncement("100", tc.total))
				ocr := &mockOCR{texts: map[string]string{}}
				uc := newUC(&llmScript{responses: []string{needsMore}}, repo, ocr)

				out, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: tc.current})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Status != model.StatusNeedsMoreImages {
					t.Fatalf("status = %s", out.Status)
				}
				if out.NextImageCount != tc.wantNext {
					t.Errorf("next count = %d, want %d", out.NextImageCount, tc.wantNext)
				}
				if !repo.records["100"].RevalidationRequested {
					t.Errorf("revalidation flag not persisted")
				}
			})
		}
	})

	t.Run("Needs more images with all evidence used becomes rejected", func(t *testing.T) {
		repo := newMockRepo(testAnnouncement("100", 2))
		ocr := &mockOCR{texts: map[string]string{}}
		uc := newUC(&llmScript{responses: []string{`{"status": "needs_more_images"}`}}, repo, ocr)

		out, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != model.StatusRejected {
			t.Errorf("status = %s, want rejected", out.Status)
		}
		if out.NextImageCount != 0 {
			t.Errorf("no continuation expected, got next count %d", out.NextImageCount)
		}
		if repo.records["100"].RevalidationRequested {
			t.Errorf("terminal rejection must not request revalidation")
		}
	})

	t.Run("OCR failure skips the image but not the round", func(t *testing.T) {
		repo := newMockRepo(testAnnouncement("100", 2))
		ocr := &mockOCR{
			texts:    map[string]string{"https://img.example/100/1": "두번째 이미지"},
			failURLs: map[string]bool{"https://img.example/100/0": true},
		}
		script := &llmScript{responses: []string{approvedResponse}}
		uc := newUC(script, repo, ocr)

		out, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != model.StatusApproved {
			t.Errorf("status = %s", out.Status)
		}
		if !strings.Contains(script.payloads[0], "두번째 이미지") {
			t.Errorf("surviving image text missing from payload")
		}
		if repo.records["100"].Images[0].OCRText != "" {
			t.Errorf("failed image must stay unpopulated")
		}
	})

	t.Run("Second round reuses cached OCR and concatenates in order", func(t *testing.T) {
		repo := newMockRepo(testAnnouncement("100", 3))
		ocr := &mockOCR{texts: map[string]string{
			"https://img.example/100/0": "이미지0",
			"https://img.example/100/1": "이미지1",
			"https://img.example/100/2": "이미지2",
		}}
		script := &llmScript{responses: []string{
			`{"status": "needs_more_images", "reason": "need the poster"}`,
			approvedResponse,
		}}
		uc := newUC(script, repo, ocr)

		out, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 1})
		if err != nil {
			t.Fatalf("round one: %v", err)
		}
		if out.NextImageCount != 3 {
			t.Fatalf("round one next count = %d, want 3", out.NextImageCount)
		}

		out, err = uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: out.NextImageCount})
		if err != nil {
			t.Fatalf("round two: %v", err)
		}
		if out.Status != model.StatusApproved {
			t.Errorf("round two status = %s", out.Status)
		}

		// Image 0 was extracted in round one; round two must only fetch 1 and 2.
		if len(ocr.calls) != 3 {
			t.Errorf("ocr calls = %d, want 3 (one per image total)", len(ocr.calls))
		}
		if !strings.Contains(script.payloads[1], `이미지0\n이미지1\n이미지2\n`) {
			t.Errorf("round two payload not concatenated in image order:\n%s", script.payloads[1])
		}
	})

	t.Run("Finalized announcement is not reclassified", func(t *testing.T) {
		a := testAnnouncement("100", 1)
		approved := true
		a.Approved = &approved
		a.Reason = "already approved"
		repo := newMockRepo(a)
		script := &llmScript{responses: []string{}}
		uc := newUC(script, repo, &mockOCR{})

		out, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != model.StatusApproved || out.Reason != "already approved" {
			t.Errorf("got %+v", out)
		}
		if script.calls != 0 {
			t.Errorf("classifier invoked %d times for finalized record", script.calls)
		}
	})

	t.Run("Pending revalidation is classified again", func(t *testing.T) {
		a := testAnnouncement("100", 3)
		rejected := false
		a.Approved = &rejected
		a.RevalidationRequested = true
		repo := newMockRepo(a)
		ocr := &mockOCR{texts: map[string]string{}}
		script := &llmScript{responses: []string{approvedResponse}}
		uc := newUC(script, repo, ocr)

		out, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != model.StatusApproved {
			t.Errorf("status = %s", out.Status)
		}
	})

	t.Run("Unknown announcement", func(t *testing.T) {
		uc := newUC(&llmScript{}, newMockRepo(), &mockOCR{})

		_, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "missing", NextImageCount: 1})
		if !errors.Is(err, announcement.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Malformed classifier response is fatal", func(t *testing.T) {
		repo := newMockRepo(testAnnouncement("100", 1))
		ocr := &mockOCR{texts: map[string]string{}}
		uc := newUC(&llmScript{responses: []string{"I think this is a seminar"}}, repo, ocr)

		_, err := uc.ClassifyRound(ctx, announcement.ClassifyInput{ID: "100", NextImageCount: 1})
		if !errors.Is(err, announcement.ErrResponseNotJSON) {
			t.Fatalf("expected ErrResponseNotJSON, got %v", err)
		}
		// No partial decision may be committed on a fatal round.
		if repo.records["100"].Approved != nil {
			t.Errorf("fatal round must not persist a decision")
		}
	})
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	repo := newMockRepo()
	uc := usecase.New(&mockLogger{}, openai.NewClient("k"), &mockOCR{}, repo)

	out, err := uc.Ingest(ctx, announcement.IngestInput{
		ID:        "200",
		Title:     "공지",
		URL:       "https://www.jbnu.ac.kr/web/news/notice/200",
		ImageURLs: []string{"https://img.example/200/0"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Skipped {
		t.Errorf("first ingest should not be skipped")
	}
	if len(repo.records["200"].Images) != 1 {
		t.Errorf("images not stored")
	}

	out, err = uc.Ingest(ctx, announcement.IngestInput{ID: "200"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Skipped {
		t.Errorf("re-ingest should be skipped")
	}

	if _, err := uc.Ingest(ctx, announcement.IngestInput{}); !errors.Is(err, announcement.ErrMissingID) {
		t.Errorf("expected ErrMissingID, got %v", err)
	}
}
