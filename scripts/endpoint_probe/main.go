// Command endpoint_probe exercises a running backend (real or demo gateway)
// endpoint by endpoint and reports how each raw reply normalizes. Used when
// integrating against a new backend deployment to catch response-convention
// drift before it ships inside the app.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/noah-isme/sma-mobile-sdk/internal/normalize"
)

type target struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	// ExpectSuccess marks probes whose normalized result must be success.
	ExpectSuccess bool `json:"expect_success"`
}

type probeConfig struct {
	Targets []target `json:"targets"`
}

type outcome struct {
	Target  target
	Status  int
	Result  normalize.Result
	Err     error
	Elapsed time.Duration
}

func main() {
	var (
		base        string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&base, "base", "http://localhost:8095", "backend base URL")
	flag.StringVar(&targetsPath, "targets", "scripts/endpoint_probe/targets.json", "path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	norm := normalize.New(nil)

	var failures int
	outcomes := make([]outcome, 0, len(targets))
	for _, tgt := range targets {
		out := probe(client, norm, base, tgt)
		if out.Err != nil || (tgt.ExpectSuccess && !out.Result.Success) {
			failures++
		}
		outcomes = append(outcomes, out)
	}

	printReport(outcomes)
	fmt.Printf("Probes failed: %d/%d\n", failures, len(outcomes))
	if failures > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg probeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func probe(client *http.Client, norm *normalize.Normalizer, base string, tgt target) outcome {
	out := outcome{Target: tgt}

	method := strings.ToUpper(strings.TrimSpace(tgt.Method))
	if method == "" {
		method = http.MethodGet
	}
	path := tgt.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	req, err := http.NewRequest(method, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		out.Err = err
		return out
	}

	start := time.Now()
	resp, err := client.Do(req)
	out.Elapsed = time.Since(start)
	if err != nil {
		out.Err = err
		return out
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		out.Err = err
		return out
	}

	out.Status = resp.StatusCode
	out.Result = norm.Normalize(body)
	return out
}

func printReport(outcomes []outcome) {
	fmt.Println("Endpoint Probe Report")
	fmt.Println("=====================")
	for _, out := range outcomes {
		status := "OK"
		if out.Err != nil {
			status = "ERROR"
		} else if out.Target.ExpectSuccess && !out.Result.Success {
			status = "FAIL"
		}
		fmt.Printf("[%s] %s %s (%s)\n", status, out.Target.Method, out.Target.Path, out.Elapsed)
		if out.Err != nil {
			fmt.Printf("  Error: %v\n", out.Err)
			continue
		}
		fmt.Printf("  HTTP %d | success=%t | message=%q\n", out.Status, out.Result.Success, out.Result.Message)
	}
}
