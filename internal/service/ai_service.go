package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"kernel_school_backend/internal/config"
)

// AIService 把问题原样转发给独立部署的AI中台并透传answer字段。
// 超时、重试都交给调用方的部署环境处理；client留作注入点。
type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{},
	}
}

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

func (s *AIService) Ask(question string) (string, error) {
	jsonData, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/ai/ask", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI core error (status %d): %s", resp.StatusCode, string(body))
	}

	var result askResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	return result.Answer, nil
}
