package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"time"
)

func TestMCPServerIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	buildCmd := exec.Command("go", "build", "-o", "chartspec-test", ".")
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("failed to build server: %v", err)
	}
	defer os.Remove("chartspec-test")

	cmd := exec.Command("./chartspec-test", "serve")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		t.Fatalf("failed to get stdin pipe: %v", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		t.Fatalf("failed to get stdout pipe: %v", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		t.Fatalf("failed to get stderr pipe: %v", err)
	}

	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start server: %v", err)
	}
	defer func() {
		stdin.Close()
		cmd.Process.Kill()
		cmd.Wait()
	}()

	// capture stderr for debugging
	go io.Copy(os.Stderr, stderr)

	reader := bufio.NewReader(stdout)

	t.Run("initialize server", func(t *testing.T) {
		req := map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"method":  "initialize",
			"params": map[string]any{
				"protocolVersion": "2024-11-05",
				"capabilities":    map[string]any{},
				"clientInfo": map[string]any{
					"name":    "test-client",
					"version": "1.0.0",
				},
			},
		}

		if err := sendRequest(stdin, req); err != nil {
			t.Fatalf("failed to send initialize: %v", err)
		}

		resp, err := readResponse(reader)
		if err != nil {
			t.Fatalf("failed to read initialize response: %v", err)
		}

		if resp["error"] != nil {
			t.Fatalf("initialize returned error: %v", resp["error"])
		}

		result := resp["result"].(map[string]any)
		serverInfo := result["serverInfo"].(map[string]any)
		if serverInfo["name"] != "chartspec" {
			t.Errorf("unexpected server name: %v", serverInfo["name"])
		}
	})

	t.Run("list tools", func(t *testing.T) {
		req := map[string]any{
			"jsonrpc": "2.0",
			"id":      2,
			"method":  "tools/list",
		}

		if err := sendRequest(stdin, req); err != nil {
			t.Fatalf("failed to send tools/list: %v", err)
		}

		resp, err := readResponse(reader)
		if err != nil {
			t.Fatalf("failed to read tools/list response: %v", err)
		}

		if resp["error"] != nil {
			t.Fatalf("tools/list returned error: %v", resp["error"])
		}

		result := resp["result"].(map[string]any)
		tools := result["tools"].([]any)
		if len(tools) != 3 {
			t.Errorf("expected 3 tools, got %d", len(tools))
		}

		found := map[string]bool{}
		for _, tool := range tools {
			toolMap := tool.(map[string]any)
			found[toolMap["name"].(string)] = true
		}
		for _, name := range []string{"chart_from_csv", "chart_from_records", "chart_from_data"} {
			if !found[name] {
				t.Errorf("%s tool not found", name)
			}
		}
	})

	t.Run("call chart_from_csv", func(t *testing.T) {
		req := map[string]any{
			"jsonrpc": "2.0",
			"id":      3,
			"method":  "tools/call",
			"params": map[string]any{
				"name": "chart_from_csv",
				"arguments": map[string]any{
					"csv":        "Month,Revenue,Expenses\nJan,4200,3800\nFeb,5100,4200\n",
					"chart_type": "bar",
					"title":      "Q1",
				},
			},
		}

		if err := sendRequest(stdin, req); err != nil {
			t.Fatalf("failed to send tools/call: %v", err)
		}

		resp, err := readResponse(reader)
		if err != nil {
			t.Fatalf("failed to read tools/call response: %v", err)
		}

		if resp["error"] != nil {
			t.Fatalf("tools/call returned error: %v", resp["error"])
		}

		result := resp["result"].(map[string]any)
		content := result["content"].([]any)
		if len(content) == 0 {
			t.Fatal("no content in response")
		}

		contentItem := content[0].(map[string]any)
		if contentItem["type"] != "text" {
			t.Errorf("expected text content, got %v", contentItem["type"])
		}

		var spec map[string]any
		if err := json.Unmarshal([]byte(contentItem["text"].(string)), &spec); err != nil {
			t.Fatalf("failed to parse spec JSON: %v", err)
		}

		if spec["chartType"] != "bar" {
			t.Errorf("expected chartType=bar, got %v", spec["chartType"])
		}
		labels := spec["labels"].([]any)
		if len(labels) != 2 || labels[0] != "Jan" || labels[1] != "Feb" {
			t.Errorf("unexpected labels: %v", labels)
		}
		datasets := spec["datasets"].([]any)
		if len(datasets) != 2 {
			t.Errorf("expected 2 datasets, got %d", len(datasets))
		}
	})

	t.Run("call with invalid arguments", func(t *testing.T) {
		req := map[string]any{
			"jsonrpc": "2.0",
			"id":      4,
			"method":  "tools/call",
			"params": map[string]any{
				"name": "chart_from_csv",
				"arguments": map[string]any{
					"csv":        "Month,Revenue,Expenses\nJan,4200,3800\n",
					"chart_type": "pie",
				},
			},
		}

		if err := sendRequest(stdin, req); err != nil {
			t.Fatalf("failed to send tools/call: %v", err)
		}

		resp, err := readResponse(reader)
		if err != nil {
			t.Fatalf("failed to read tools/call response: %v", err)
		}

		result := resp["result"].(map[string]any)
		isError, ok := result["isError"].(bool)
		if !ok || !isError {
			t.Error("expected error result for pie chart with two series")
		}
	})
}

func sendRequest(w io.Writer, req map[string]any) error {
	data, err := json.Marshal(req)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func readResponse(r *bufio.Reader) (map[string]any, error) {
	type result struct {
		data map[string]any
		err  error
	}
	resultChan := make(chan result, 1)

	go func() {
		line, err := r.ReadBytes('\n')
		if err != nil {
			resultChan <- result{nil, err}
			return
		}

		var resp map[string]any
		if err := json.Unmarshal(line, &resp); err != nil {
			resultChan <- result{nil, fmt.Errorf("failed to unmarshal response: %w\n%s", err, string(line))}
			return
		}

		resultChan <- result{resp, nil}
	}()

	select {
	case res := <-resultChan:
		return res.data, res.err
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("timeout waiting for response")
	}
}
