package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tasknest/tasknest/task"
)

func postJSON(ctx context.Context, client *http.Client, baseURL, path string, payload any, dest any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return readErrorResponse(resp)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	return nil
}

func getJSON(ctx context.Context, client *http.Client, baseURL, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return readErrorResponse(resp)
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return err
	}
	return nil
}

func readErrorResponse(resp *http.Response) error {
	var payload map[string]string
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(&payload); err == nil {
		if message, ok := payload["error"]; ok {
			return fmt.Errorf("tasknest error: %s", message)
		}
	}
	return fmt.Errorf("tasknest error: %s", resp.Status)
}

type createRequest struct {
	Description string `json:"description"`
	ParentID    *int64 `json:"parent_id,omitempty"`
}

type createResponse struct {
	ID int64 `json:"id"`
}

type updateRequest struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type viewRequest struct {
	Filter string `json:"filter"`
}

type taskRow struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	Status      task.Status `json:"status"`
	Depth       int         `json:"depth"`
}

type viewResponse struct {
	Tasks []taskRow `json:"tasks"`
}

type statusResponse struct {
	Total  int                 `json:"total"`
	Counts map[task.Status]int `json:"counts"`
}
