package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"mood-report/internal/domain"
	"mood-report/internal/report"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const pushPlusURL = "http://www.pushplus.plus/send"

type pushPlusPayload struct {
	Token    string `json:"token"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Template string `json:"template"`
}

type pushPlusReply struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// PushPlusNotifier delivers the HTML rendering of a report through the
// pushplus.plus push service.
type PushPlusNotifier struct {
	client  *http.Client
	baseURL string
	token   string
	tracer  trace.Tracer
}

// NewPushPlusNotifier returns nil when no token is configured so the
// channel is silently skipped.
func NewPushPlusNotifier(token string, tracer trace.Tracer) *PushPlusNotifier {
	if token == "" {
		log.Println("PUSHPLUS_TOKEN not set, skipping PushPlus notifier")
		return nil
	}
	return &PushPlusNotifier{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: pushPlusURL,
		token:   token,
		tracer:  tracer,
	}
}

func (p *PushPlusNotifier) Name() string { return "pushplus" }

func (p *PushPlusNotifier) Send(ctx context.Context, r *domain.Report) error {
	ctx, span := p.tracer.Start(ctx, "PushPlusNotifier.Send")
	defer span.End()

	content, err := report.RenderHTML(r)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	body, err := json.Marshal(pushPlusPayload{
		Token:    p.token,
		Title:    r.Title,
		Content:  content,
		Template: "html",
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: pushplus returned %d", domain.ErrBadStatus, resp.StatusCode)
	}

	var reply pushPlusReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if reply.Code != 200 {
		return fmt.Errorf("pushplus rejected the message: code %d msg %q", reply.Code, reply.Msg)
	}

	span.SetAttributes(attribute.Int("pushplus.code", reply.Code))
	return nil
}
