//go:build integration

package integration_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

func baseURL() string {
	if v := os.Getenv("MINDCARE_TEST_BASE_URL"); strings.TrimSpace(v) != "" {
		return strings.TrimRight(v, "/")
	}
	return "http://127.0.0.1:18080"
}

func TestStudentJourneyIntegration(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	base := baseURL()

	email := fmt.Sprintf("integration_%d@example.edu", time.Now().UnixNano())

	var loginResp struct {
		Token string `json:"token"`
	}
	doPost(t, client, base+"/api/auth/login", "", map[string]string{
		"name":     "Integration Student",
		"email":    email,
		"password": "Secret123!",
		"role":     "student",
	}, &loginResp)
	token := loginResp.Token
	if token == "" {
		t.Fatalf("login did not return token")
	}

	var startResp struct {
		AttemptID string `json:"attempt_id"`
		Questions []struct {
			ID string `json:"id"`
		} `json:"questions"`
	}
	doPost(t, client, base+"/api/assessments/phq9/start", token, map[string]any{}, &startResp)
	if startResp.AttemptID == "" || len(startResp.Questions) != 9 {
		t.Fatalf("unexpected start response: %+v", startResp)
	}

	for _, q := range startResp.Questions {
		doPost(t, client, base+"/api/attempts/"+startResp.AttemptID+"/answer", token, map[string]any{
			"question_id": q.ID,
			"value":       1,
		}, nil)
	}

	var submitResp struct {
		Score    int    `json:"score"`
		Severity string `json:"severity"`
	}
	doPost(t, client, base+"/api/attempts/"+startResp.AttemptID+"/submit", token, map[string]any{}, &submitResp)
	if submitResp.Score != 9 || submitResp.Severity != "mild" {
		t.Fatalf("unexpected submit response: %+v", submitResp)
	}

	var bookResp struct {
		Appointment struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"appointment"`
	}
	doPost(t, client, base+"/api/appointments", token, map[string]any{
		"counselor_id": "c1",
		"date":         "2024-11-10",
		"slot":         "9:00 AM",
		"reason":       "exam stress",
		"modality":     "video",
	}, &bookResp)
	if bookResp.Appointment.ID == "" || bookResp.Appointment.Status != "pending" {
		t.Fatalf("unexpected booking response: %+v", bookResp)
	}

	listURL := base + "/api/appointments"
	req, err := http.NewRequest(http.MethodGet, listURL, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("list appointments failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("list status %d body %s", resp.StatusCode, string(body))
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read list data: %v", err)
	}
	if !strings.Contains(string(data), bookResp.Appointment.ID) {
		t.Fatalf("appointment list did not contain %s; body=%s", bookResp.Appointment.ID, string(data))
	}
}

func doPost(t *testing.T, client *http.Client, url, token string, body any, out any) {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(token) != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("http post %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		t.Fatalf("unexpected status %d for %s: %s", resp.StatusCode, url, string(bodyBytes))
	}
	if out != nil {
		decoder := json.NewDecoder(resp.Body)
		if err := decoder.Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response from %s: %v", url, err)
		}
	}
}
