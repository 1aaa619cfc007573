package backend

import (
	"context"
	"net/http"
)

// Generator is a request body that knows the endpoint that renders it.
type Generator interface {
	Endpoint() string
}

func (c *Client) Query(ctx context.Context, query string) (*ChatAnswer, error) {
	var answer ChatAnswer
	body := map[string]string{"query": query}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/chatbot/query", body, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// GenerateDocument renders a legal document and returns its download links.
func (c *Client) GenerateDocument(ctx context.Context, doc Generator) (*DownloadLinks, error) {
	return c.generate(ctx, doc)
}

// GenerateNotice renders a legal notice and returns its download links.
func (c *Client) GenerateNotice(ctx context.Context, notice Generator) (*DownloadLinks, error) {
	return c.generate(ctx, notice)
}

func (c *Client) generate(ctx context.Context, g Generator) (*DownloadLinks, error) {
	var links DownloadLinks
	if err := c.sendJSON(ctx, http.MethodPost, g.Endpoint(), g, &links); err != nil {
		return nil, err
	}
	return &links, nil
}

func (c *Client) GenerateFAQs(ctx context.Context, topic string) ([]FAQ, error) {
	var resp struct {
		FAQs []FAQ `json:"faqs"`
	}
	body := map[string]string{"topic": topic}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/faq/generate-from-topic", body, &resp); err != nil {
		return nil, err
	}
	return resp.FAQs, nil
}

func (c *Client) DownloadFAQPDF(ctx context.Context, topic string, faqs []FAQ) (*FAQDownload, error) {
	var resp FAQDownload
	body := struct {
		Topic string `json:"topic"`
		FAQs  []FAQ  `json:"faqs"`
	}{Topic: topic, FAQs: faqs}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/faq/download-pdf", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SimplifyBareAct(ctx context.Context, section string) (*Simplification, error) {
	var resp Simplification
	body := map[string]string{"section": section}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/learning/simplify-bare-act", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EvaluateAnswer(ctx context.Context, question, answer string) (*Evaluation, error) {
	var resp Evaluation
	body := map[string]string{"question": question, "answer": answer}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/learning/evaluate-answer", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ResearchTopic(ctx context.Context, topic string) (*Research, error) {
	var resp Research
	body := map[string]string{"topic": topic}
	if err := c.sendJSON(ctx, http.MethodPost, "/api/v1/learning/research-topic", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
