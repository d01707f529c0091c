// Command shadow_compare replays read-only requests against the legacy
// Express backend and the Go API and reports divergent answers.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

type target struct {
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
	// Ignore lists object keys dropped before comparing, such as generated ids.
	Ignore []string `json:"ignore"`
	// Unordered compares top-level arrays as multisets.
	Unordered bool `json:"unordered"`
}

type targetFile struct {
	Targets []target `json:"targets"`
}

type comparison struct {
	Target        target
	LegacyStatus  int
	GoStatus      int
	StatusMatch   bool
	BodyMatch     bool
	Err           error
	GoLatency     time.Duration
	LegacyLatency time.Duration
}

func (c comparison) diverged() bool {
	return c.Err != nil || !c.StatusMatch || !c.BodyMatch
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:3000", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:5000", "Legacy Express API base URL")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "shadow_compare", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	logr, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(2)
	}
	defer logr.Sync() //nolint:errcheck

	targets, err := loadTargets(targetsPath)
	if err != nil {
		logr.Fatal("failed to load targets", zap.String("path", targetsPath), zap.Error(err))
	}

	client := &http.Client{Timeout: timeout}
	breaking, optional := 0, 0
	for _, tgt := range targets {
		comp := compareTarget(client, goBase, legacyBase, tgt)
		report(logr, comp)
		if !comp.diverged() {
			continue
		}
		if tgt.Critical {
			breaking++
		} else {
			optional++
		}
	}

	logr.Info("shadow compare finished", zap.Int("targets", len(targets)), zap.Int("breaking", breaking), zap.Int("optional", optional))
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file targetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

func compareTarget(client *http.Client, goBase, legacyBase string, tgt target) comparison {
	comp := comparison{Target: tgt}

	goStatus, goBody, goLatency, err := fetch(client, goBase, tgt.Path)
	if err != nil {
		comp.Err = fmt.Errorf("go request failed: %w", err)
		return comp
	}
	legacyStatus, legacyBody, legacyLatency, err := fetch(client, legacyBase, tgt.Path)
	if err != nil {
		comp.Err = fmt.Errorf("legacy request failed: %w", err)
		return comp
	}

	comp.GoStatus, comp.LegacyStatus = goStatus, legacyStatus
	comp.GoLatency, comp.LegacyLatency = goLatency, legacyLatency
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = bodiesEqual(goBody, legacyBody, tgt)
	return comp
}

func fetch(client *http.Client, base, path string) (int, []byte, time.Duration, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequest(http.MethodGet, strings.TrimRight(base, "/")+path, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

func bodiesEqual(a, b []byte, tgt target) bool {
	if len(tgt.Ignore) == 0 && !tgt.Unordered && bytes.Equal(bytes.TrimSpace(a), bytes.TrimSpace(b)) {
		return true
	}

	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}

	ignore := make(map[string]struct{}, len(tgt.Ignore))
	for _, key := range tgt.Ignore {
		ignore[key] = struct{}{}
	}
	aj = normalize(aj, ignore)
	bj = normalize(bj, ignore)

	if tgt.Unordered {
		aj = sortArray(aj)
		bj = sortArray(bj)
	}
	return reflect.DeepEqual(aj, bj)
}

// normalize drops ignored keys and folds integral floats so 12 and 12.0 compare equal.
func normalize(v interface{}, ignore map[string]struct{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for key, child := range val {
			if _, skip := ignore[key]; skip {
				delete(val, key)
				continue
			}
			val[key] = normalize(child, ignore)
		}
		return val
	case []interface{}:
		for i, child := range val {
			val[i] = normalize(child, ignore)
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	default:
		return v
	}
}

func sortArray(v interface{}) interface{} {
	items, ok := v.([]interface{})
	if !ok {
		return v
	}
	keys := make([]string, len(items))
	for i, item := range items {
		raw, _ := json.Marshal(item)
		keys[i] = string(raw)
	}
	sort.Sort(byKey{items: items, keys: keys})
	return items
}

type byKey struct {
	items []interface{}
	keys  []string
}

func (b byKey) Len() int           { return len(b.items) }
func (b byKey) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b byKey) Swap(i, j int) {
	b.items[i], b.items[j] = b.items[j], b.items[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

func report(logr *zap.Logger, comp comparison) {
	fields := []zap.Field{
		zap.String("path", comp.Target.Path),
		zap.Bool("critical", comp.Target.Critical),
		zap.Int("go_status", comp.GoStatus),
		zap.Int("legacy_status", comp.LegacyStatus),
		zap.Duration("go_latency", comp.GoLatency),
		zap.Duration("legacy_latency", comp.LegacyLatency),
	}
	switch {
	case comp.Err != nil:
		logr.Error("request failed", append(fields, zap.Error(comp.Err))...)
	case comp.diverged():
		logr.Warn("responses differ", append(fields, zap.Bool("status_match", comp.StatusMatch), zap.Bool("body_match", comp.BodyMatch))...)
	default:
		logr.Info("responses match", fields...)
	}
}
